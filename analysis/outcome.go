package analysis

import "strings"

var (
	convictedKeywords = []string{"found guilty", "convicted", "guilty of all charges", "conviction"}
	acquittedKeywords = []string{"acquitted", "acquittal", "not guilty"}
)

// ClassifyOutcome derives the case outcome. A recognized filename prefix wins
// outright; otherwise the legal-summary narrative is searched for verdict
// keywords, conviction phrases first.
func ClassifyOutcome(filename, legalSummary string) string {
	upper := strings.ToUpper(filename)
	switch {
	case strings.HasPrefix(upper, "ACQUITTED"):
		return "Acquitted"
	case strings.HasPrefix(upper, "CONVICTED"), strings.HasPrefix(upper, "CONVICTION"):
		return "Convicted"
	}

	if legalSummary != "" {
		lower := strings.ToLower(legalSummary)
		for _, kw := range convictedKeywords {
			if strings.Contains(lower, kw) {
				return "Convicted"
			}
		}
		for _, kw := range acquittedKeywords {
			if strings.Contains(lower, kw) {
				return "Acquitted"
			}
		}
	}
	return "Unknown"
}
