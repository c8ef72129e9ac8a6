package models

// AnalysisMetadata holds the canonical metadata recovered from one analysis
// document. Fields are pointers so that "absent" stays distinct from "present
// but blank". Fallback extraction only runs when the whole struct is absent.
type AnalysisMetadata struct {
	Court       *string `json:"court,omitempty"`
	Judge       *string `json:"judge,omitempty"`
	CaseNumber  *string `json:"case_number,omitempty"`
	Parties     *string `json:"parties,omitempty"`
	DateISO     *string `json:"date_iso,omitempty"`
	DateNatural *string `json:"date_natural,omitempty"`
}

// IsEmpty reports whether no field was recovered at all.
func (m AnalysisMetadata) IsEmpty() bool {
	return m.Court == nil && m.Judge == nil && m.CaseNumber == nil &&
		m.Parties == nil && m.DateISO == nil && m.DateNatural == nil
}

// DisplayDate returns the natural-text date when present, else the ISO date,
// else the empty string.
func (m AnalysisMetadata) DisplayDate() string {
	if m.DateNatural != nil {
		return *m.DateNatural
	}
	if m.DateISO != nil {
		return *m.DateISO
	}
	return ""
}

// TimelineEntry is one labeled event in a chronological narrative.
type TimelineEntry struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

// LegalSummaryItem is one titled segment of the legal summary narrative.
type LegalSummaryItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TaxonomyItem is one labeled classification value.
type TaxonomyItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AuditItem is one observation inside an audit subsection.
type AuditItem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// AuditSubsection groups audit observations under one heading.
type AuditSubsection struct {
	Heading string      `json:"heading"`
	Items   []AuditItem `json:"items"`
}

// AnalysisSummary is the list-view shape of one analysis document.
type AnalysisSummary struct {
	Slug           string `json:"slug"`
	Filename       string `json:"filename"`
	ProcessedOn    string `json:"processed_on"`
	Outcome        string `json:"outcome"`
	Court          string `json:"court"`
	Judge          string `json:"judge"`
	Date           string `json:"date"`
	CaseNumber     string `json:"case_number"`
	Parties        string `json:"parties"`
	SeverityScore  *int   `json:"severity_score,omitempty"`
	SummarySnippet string `json:"summary_snippet"`
	Source         string `json:"source"`
}

// AnalysisDetail is the full detail-view shape of one analysis document.
type AnalysisDetail struct {
	Slug               string              `json:"slug"`
	Filename           string              `json:"filename"`
	ProcessedOn        string              `json:"processed_on"`
	Outcome            string              `json:"outcome"`
	Metadata           AnalysisMetadata    `json:"metadata"`
	Witnesses          []map[string]string `json:"witnesses"`
	LegalSummary       []LegalSummaryItem  `json:"legal_summary"`
	Taxonomy           []TaxonomyItem      `json:"taxonomy"`
	Timeline           []TimelineEntry     `json:"timeline"`
	SeverityScore      *int                `json:"severity_score,omitempty"`
	ScoreJustification string              `json:"score_justification"`
	AuditSubsections   []AuditSubsection   `json:"audit_subsections"`
	Source             string              `json:"source"`
}

// AnalysisList aggregates a full batch scan for the list view.
type AnalysisList struct {
	Analyses    []AnalysisSummary `json:"analyses"`
	Total       int               `json:"total"`
	AvgSeverity float64           `json:"avg_severity"`
	Outcomes    map[string]int    `json:"outcomes"`
	Skipped     int               `json:"skipped"`
}
