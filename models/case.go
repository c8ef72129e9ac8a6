package models

import (
	"strings"
	"time"
)

// placeholder phrases that mean "no real value" in extracted fields. The
// upstream extraction pipeline emits these literally. The date field carries
// one extra marker; repository verdict/active SQL fragments mirror both
// lists exactly.
var (
	datePlaceholders = []string{
		"not specified",
		"not mentioned",
		"unknown",
		"none",
		"not provided",
	}
	sentencePlaceholders = []string{
		"not specified",
		"not mentioned",
		"unknown",
		"none",
	}
)

// Case represents one row of the relational case ledger.
type Case struct {
	ID             int64      `json:"id"`
	CorNo          string     `json:"corno"`
	Accused        string     `json:"accused"`
	Complainant    string     `json:"complaintant"`
	Prosecution    string     `json:"prosecution"`
	Court          string     `json:"court"`
	Judge          string     `json:"judge"`
	District       string     `json:"district"`
	Chargesheet    string     `json:"chargesheet"`
	Plea           string     `json:"plea"`
	Defense        string     `json:"defense"`
	SentenceIssued string     `json:"sentence_issued"`
	Date           string     `json:"date"`
	FilingDate     *time.Time `json:"filing_date,omitempty"`
	Summary        string     `json:"summary"`
}

func isPlaceholder(s string, markers []string) bool {
	for _, p := range markers {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// IsActive reports whether the case is still pending. A case is active only
// when neither a usable judgment date nor a usable sentence is recorded; a
// recorded date closes a case even when the verdict text is unusable.
func (c Case) IsActive() bool {
	date := strings.ToLower(strings.TrimSpace(c.Date))
	hasDate := date != "" && !isPlaceholder(date, datePlaceholders)
	if hasDate {
		return false
	}

	sentence := strings.ToLower(c.SentenceIssued)
	hasSentence := sentence != "" && !isPlaceholder(sentence, sentencePlaceholders)
	return !hasSentence
}

// Verdict derives the case outcome from the sentence text first and the
// summary narrative second.
func (c Case) Verdict() string {
	if c.IsActive() {
		return "Pending"
	}

	sentence := strings.ToLower(c.SentenceIssued)
	if sentence != "" && !isPlaceholder(sentence, sentencePlaceholders) {
		switch {
		case strings.Contains(sentence, "acquitte") || strings.Contains(sentence, "not guilty"):
			return "Acquittal"
		case strings.Contains(sentence, "convict") || strings.Contains(sentence, "guilty"):
			return "Conviction"
		case strings.Contains(sentence, "dismiss"):
			return "Dismissed"
		}
	}

	if c.Summary != "" {
		summary := strings.ToLower(c.Summary)
		switch {
		case strings.Contains(summary, "acquittal") || strings.Contains(summary, "acquitted") || strings.Contains(summary, "not guilty"):
			return "Acquittal"
		case strings.Contains(summary, "conviction") || strings.Contains(summary, "convicted") || strings.Contains(summary, "guilty"):
			return "Conviction"
		case strings.Contains(summary, "dismiss"):
			return "Dismissed"
		}
	}

	// Closed (has a date) but no recognizable verdict text.
	return "Decided"
}

// FormattedDate renders the filing date as "09 Oct 2025", falling back to the
// raw date text.
func (c Case) FormattedDate() string {
	if c.FilingDate != nil {
		return c.FilingDate.Format("02 Jan 2006")
	}
	if c.Date != "" {
		return c.Date
	}
	return "N/A"
}
