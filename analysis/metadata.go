package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/224saisrikanth/Judment-analysis/models"
)

var (
	parenDateRe = regexp.MustCompile(`^([\d-]+)\s*\((.+)\)`)
	plusDateRe  = regexp.MustCompile(`^(.+?)\s*\+\s*(.+)`)
	isoLabelRe  = regexp.MustCompile(`ISO:\s*([\d-]+)`)
	natLabelRe  = regexp.MustCompile(`(?i)Natural\s*Text:\s*(.*?)(?:<br>|$)`)
)

// NormalizeMetadata maps the varied field labels of a metadata table row onto
// the canonical schema. Key rules run in a fixed order per key; any key
// containing "date" is routed through the date-shape sub-rules, which try the
// paren form "ISO (Natural)", the plus form "ISO + Natural", then embedded
// "ISO:"/"Natural Text:" labels before giving the whole value to one side.
func NormalizeMetadata(raw map[string]string) models.AnalysisMetadata {
	var out models.AnalysisMetadata

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		val := strings.TrimSpace(StripBold(raw[key]))
		lk := strings.ToLower(strings.TrimSpace(StripBold(key)))

		switch {
		case strings.Contains(lk, "full court"):
			out.Court = &val
		case lk == "presiding judges" || strings.Contains(lk, "presiding"):
			out.Judge = &val
		case strings.Contains(lk, "case number") || strings.Contains(lk, "citation"):
			out.CaseNumber = &val
		case strings.Contains(lk, "parties"):
			out.Parties = &val
		case strings.Contains(lk, "date"):
			normalizeDateField(lk, val, &out)
		}
	}

	return out
}

func normalizeDateField(lk, val string, out *models.AnalysisMetadata) {
	setISO := func(s string) { s = strings.TrimSpace(s); out.DateISO = &s }
	setNatural := func(s string) { s = strings.TrimSpace(s); out.DateNatural = &s }

	switch {
	case strings.Contains(lk, "iso") && strings.Contains(lk, "natural"):
		// Combined header like "Date of Judgement (ISO + Natural Text)".
		if m := parenDateRe.FindStringSubmatch(val); m != nil {
			setISO(m[1])
			setNatural(m[2])
		} else if m := plusDateRe.FindStringSubmatch(val); m != nil {
			setISO(m[1])
			setNatural(m[2])
		} else {
			setNatural(val)
		}
	case strings.Contains(lk, "natural"):
		setNatural(val)
	case strings.Contains(lk, "iso"):
		setISO(val)
	default:
		// Generic "Date of Judgement": the value itself may carry
		// "ISO:" / "Natural Text:" sub-fields.
		isoMatch := isoLabelRe.FindStringSubmatch(val)
		natMatch := natLabelRe.FindStringSubmatch(val)
		parenMatch := parenDateRe.FindStringSubmatch(val)
		if isoMatch != nil {
			setISO(isoMatch[1])
		}
		if natMatch != nil {
			setNatural(natMatch[1])
		} else if parenMatch != nil {
			setISO(parenMatch[1])
			setNatural(parenMatch[2])
		} else if isoMatch == nil {
			setNatural(val)
		}
	}
}

var (
	fallbackCourtRe = regexp.MustCompile(`(?i)(?:heard by the|before the|in the court of|presided over by)\s+(.+?)(?:\s+(?:on|in|at)\s+\d|\.\s)`)
	fallbackCaseRe  = regexp.MustCompile(`(?i)((?:Spl\.)?(?:S\.?C\.?|SC|Cr|CC|Crl\.?M\.?A)[\s.]*No\.?\s*[\d/]+\s*(?:of\s*\d{4})?)`)
	fallbackPartyRe = regexp.MustCompile(`(State\s+of\s+\w+)\s+(?:against|vs\.?|versus)\s+(?:the\s+accused,?\s*(?:identified as\s+)?)?([A-Z][a-zA-Z\s.]+?)(?:,|\.\s|\s+a\s+\d)`)
	judgmentDateRe  = regexp.MustCompile(`(?i)\*\*([^*]+)\*\*.*?Judgment`)
)

// FallbackMetadata recovers metadata from narrative prose. It runs only when
// the structured metadata table yielded nothing; each extractor is
// independent and absence simply leaves the field unset.
func FallbackMetadata(legalSummary, timelineContent string) models.AnalysisMetadata {
	var out models.AnalysisMetadata
	if legalSummary == "" {
		return out
	}

	if m := fallbackCourtRe.FindStringSubmatch(legalSummary); m != nil {
		court := strings.TrimRight(strings.TrimSpace(m[1]), ",.")
		out.Court = &court
	}

	if m := fallbackCaseRe.FindStringSubmatch(legalSummary); m != nil {
		num := strings.TrimSpace(m[1])
		out.CaseNumber = &num
	}

	// A bold date directly ahead of the word "Judgment" in the timeline is
	// the judgment date.
	if timelineContent != "" {
		if m := judgmentDateRe.FindStringSubmatch(timelineContent); m != nil {
			date := strings.TrimSpace(m[1])
			out.DateNatural = &date
		}
	}

	if m := fallbackPartyRe.FindStringSubmatch(legalSummary); m != nil {
		parties := strings.TrimSpace(m[1]) + " vs " + strings.TrimSpace(m[2])
		out.Parties = &parties
	}

	return out
}
