package analysis

import (
	"regexp"
	"strconv"
)

// Severity score priority, first match wins:
//  1. the score under an "Overall Lapse Severity Score" heading; the
//     explicit rollup beats any department sub-score that came first;
//  2. any "Lapse Severity Score: N";
//  3. the last "...Score: N" line in the narrative, where the overall score
//     usually sits when nothing is labeled.
var (
	overallScoreRe = regexp.MustCompile(`(?is)Overall Lapse Severity Score.*?\n\s*\*\*Score:\s*(\d+)`)
	lapseScoreRe   = regexp.MustCompile(`(?i)Lapse Severity Score:\s*(?:\*\*)?(\d+)`)
	anyScoreRe     = regexp.MustCompile(`(?i)(?:^|\n)[^\n]*?Score:\s*(?:\*\*)?(\d+)`)
)

// ExtractSeverity recovers the investigation lapse score from audit
// narrative. The embedded score lifted out of the section's quoted lines
// seeds the result: the first two patterns override it, the last-line
// fallback only fills a hole. Scores are reported as matched, not clamped.
func ExtractSeverity(content string, embedded *int) *int {
	if content == "" {
		return embedded
	}

	if m := overallScoreRe.FindStringSubmatch(content); m != nil {
		n, _ := strconv.Atoi(m[1])
		return &n
	}
	if m := lapseScoreRe.FindStringSubmatch(content); m != nil {
		n, _ := strconv.Atoi(m[1])
		return &n
	}
	if embedded == nil {
		if ms := anyScoreRe.FindAllStringSubmatch(content, -1); ms != nil {
			n, _ := strconv.Atoi(ms[len(ms)-1][1])
			return &n
		}
	}
	return embedded
}
