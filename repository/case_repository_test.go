package repository

import (
	"strings"
	"testing"
)

// The SQL verdict/active fragments must agree with models.Case: the date
// placeholder list carries "not provided", the sentence list does not.
func TestVerdictSQLPlaceholderLists(t *testing.T) {
	const dateList = `lower(date) IN ('not specified', 'not mentioned', 'unknown', 'none', 'not provided')`
	const sentenceList = `lower(sentence_issued) IN ('not specified', 'not mentioned', 'unknown', 'none')`

	for name, sql := range map[string]string{"verdictSQL": verdictSQL, "isActiveSQL": isActiveSQL} {
		if !strings.Contains(sql, dateList) {
			t.Errorf("%s: date placeholder list drifted", name)
		}
		if !strings.Contains(sql, sentenceList) {
			t.Errorf("%s: sentence placeholder list drifted", name)
		}
		if strings.Contains(sql, `sentence_issued) IN ('not specified', 'not mentioned', 'unknown', 'none', 'not provided')`) {
			t.Errorf("%s: sentence list must not include 'not provided'", name)
		}
	}
}
