package analysis

import (
	"github.com/224saisrikanth/Judment-analysis/models"
)

// docKind selects the extraction path for one document.
type docKind int

const (
	kindMarkdown docKind = iota
	kindJSON
)

// Legal summary lives under different titles depending on the export
// generation. Markdown reports favor the newer title, JSON exports the older.
var (
	legalTitlesMarkdown = []string{"Judgment at a Glance", "Comprehensive Legal Summary"}
	legalTitlesJSON     = []string{"Comprehensive Legal Summary", "Judgment at a Glance"}

	witnessTitles = []string{
		"Principal Witnesses & Ex.PW Extraction",
		"Witnesses Extracted",
		"Principal Witnesses",
	}
)

const (
	metadataTitle = "Metadata Extraction"
	timelineTitle = "Chronological Event Timeline"
	auditTitle    = "Investigation Quality Audit"
	taxonomyTitle = "Taxonomy & Classification"
)

func firstSection(sections map[string]Section, titles ...string) Section {
	for _, t := range titles {
		if sec, ok := sections[t]; ok && sec.Content != "" {
			return sec
		}
	}
	return Section{}
}

func legalSummaryContent(sections map[string]Section, kind docKind) string {
	titles := legalTitlesMarkdown
	if kind == kindJSON {
		titles = legalTitlesJSON
	}
	return firstSection(sections, titles...).Content
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func snippet(s string) string {
	runes := []rune(s)
	if len(runes) > 200 {
		return string(runes[:200]) + "..."
	}
	return s
}

// extractMetadata runs the table normalizer and, when it recovers nothing,
// the prose fallback over the legal summary and timeline text.
func extractMetadata(sections map[string]Section, legalSummary string) models.AnalysisMetadata {
	rows := ParseTable(sections[metadataTitle].Content)
	var raw map[string]string
	if len(rows) > 0 {
		raw = rows[0]
	}
	meta := NormalizeMetadata(raw)
	if meta.IsEmpty() {
		meta = FallbackMetadata(legalSummary, sections[timelineTitle].Content)
	}
	return meta
}

// assembleSummary composes the list-view record for one parsed document.
func assembleSummary(slug, filename, processedOn, source string, kind docKind, sections map[string]Section) models.AnalysisSummary {
	legalSummary := legalSummaryContent(sections, kind)
	meta := extractMetadata(sections, legalSummary)
	audit := sections[auditTitle]

	return models.AnalysisSummary{
		Slug:           slug,
		Filename:       filename,
		ProcessedOn:    processedOn,
		Outcome:        ClassifyOutcome(filename, legalSummary),
		Court:          deref(meta.Court),
		Judge:          deref(meta.Judge),
		Date:           meta.DisplayDate(),
		CaseNumber:     deref(meta.CaseNumber),
		Parties:        deref(meta.Parties),
		SeverityScore:  ExtractSeverity(audit.Content, audit.SeverityScore),
		SummarySnippet: snippet(legalSummary),
		Source:         source,
	}
}

// assembleDetail composes the full detail record for one parsed document.
func assembleDetail(slug, filename, processedOn, source string, kind docKind, sections map[string]Section) models.AnalysisDetail {
	legalSummary := legalSummaryContent(sections, kind)
	meta := extractMetadata(sections, legalSummary)

	witnesses := ParseTable(firstSection(sections, witnessTitles...).Content)

	var taxonomy []models.TaxonomyItem
	if tc := sections[taxonomyTitle].Content; tc != "" {
		// Taxonomy stays one raw block. Export schemas scatter it across
		// arbitrary sub-headers and the consumer renders it as markdown.
		taxonomy = append(taxonomy, models.TaxonomyItem{Label: "", Value: tc})
	}

	timelineContent := sections[timelineTitle].Content
	var timeline []models.TimelineEntry
	if kind == kindJSON {
		timeline = ParseTimelineJSON(timelineContent)
	} else {
		timeline = ParseTimelineMarkdown(timelineContent)
	}

	audit := sections[auditTitle]

	return models.AnalysisDetail{
		Slug:               slug,
		Filename:           filename,
		ProcessedOn:        processedOn,
		Outcome:            ClassifyOutcome(filename, legalSummary),
		Metadata:           meta,
		Witnesses:          witnesses,
		LegalSummary:       SegmentLegalSummary(legalSummary),
		Taxonomy:           taxonomy,
		Timeline:           timeline,
		SeverityScore:      ExtractSeverity(audit.Content, audit.SeverityScore),
		ScoreJustification: audit.ScoreJustification,
		AuditSubsections:   ParseAuditSubsections(audit.Content),
		Source:             source,
	}
}
