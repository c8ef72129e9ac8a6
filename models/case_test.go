package models

import (
	"testing"
	"time"
)

func TestCaseIsActive(t *testing.T) {
	tests := []struct {
		name string
		c    Case
		want bool
	}{
		{"no date no sentence", Case{}, true},
		{"placeholder date and sentence", Case{Date: "Not Specified", SentenceIssued: "Not mentioned"}, true},
		{"date closes case", Case{Date: "09-10-2025"}, false},
		{"date closes case despite unusable sentence", Case{Date: "09-10-2025", SentenceIssued: "unknown"}, false},
		{"sentence closes case without date", Case{SentenceIssued: "Accused convicted, 2 years RI"}, false},
		// "not provided" is a date marker only; as sentence text it counts
		// as a recorded sentence, closing the case.
		{"not provided sentence closes case", Case{SentenceIssued: "Not provided"}, false},
		{"not provided date keeps case open", Case{Date: "not provided"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsActive(); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCaseVerdict(t *testing.T) {
	tests := []struct {
		name string
		c    Case
		want string
	}{
		{"pending", Case{}, "Pending"},
		{"sentence acquittal", Case{SentenceIssued: "The accused are acquitted"}, "Acquittal"},
		{"sentence not guilty", Case{SentenceIssued: "Found not guilty on all counts"}, "Acquittal"},
		{"sentence conviction", Case{SentenceIssued: "Convicted under Section 409 IPC"}, "Conviction"},
		{"sentence dismissal", Case{SentenceIssued: "Petition dismissed"}, "Dismissed"},
		{
			name: "summary consulted when sentence unusable",
			c:    Case{Date: "09-10-2025", SentenceIssued: "Not specified", Summary: "The trial ended in an acquittal."},
			want: "Acquittal",
		},
		{
			name: "closed with no verdict text",
			c:    Case{Date: "09-10-2025", Summary: "Final hearing concluded."},
			want: "Decided",
		},
		{
			name: "not provided sentence decides without verdict",
			c:    Case{SentenceIssued: "not provided"},
			want: "Decided",
		},
		{
			// "guilty" alone reads as conviction only after the acquittal
			// phrases are ruled out.
			name: "sentence guilty",
			c:    Case{SentenceIssued: "Held guilty and sentenced to fine"},
			want: "Conviction",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Verdict(); got != tt.want {
				t.Errorf("Verdict() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCaseFormattedDate(t *testing.T) {
	filed := time.Date(2025, time.October, 9, 0, 0, 0, 0, time.UTC)

	c := Case{FilingDate: &filed, Date: "09-10-2025"}
	if got := c.FormattedDate(); got != "09 Oct 2025" {
		t.Errorf("FormattedDate() = %q, want 09 Oct 2025", got)
	}

	c = Case{Date: "09-10-2025"}
	if got := c.FormattedDate(); got != "09-10-2025" {
		t.Errorf("FormattedDate() = %q, want raw date text", got)
	}

	if got := (Case{}).FormattedDate(); got != "N/A" {
		t.Errorf("FormattedDate() = %q, want N/A", got)
	}
}
