package analysis

import (
	"strings"
	"testing"
)

const sampleReport = `# CBI Case Analysis
*Processed on: 2025-10-12 14:30*

Intro text before the first heading is discarded.

## Metadata Extraction

| Field | Value |
|-------|-------|
| Full Court Name | Special Court for CBI Cases |
| Presiding Judges | Hon'ble Sri K. Rao |

---

## Judgment at a Glance

The accused was acquitted of all charges.

---

## Investigation Quality Audit

> **Lapse Severity Score: 6/10**
> **Justification:** Witness statements were recorded late.

### Department Lapses
- **Delayed FIR**: Registered after four days.

---
`

func TestExtractProcessedOn(t *testing.T) {
	if got := ExtractProcessedOn(sampleReport); got != "2025-10-12 14:30" {
		t.Errorf("ExtractProcessedOn = %q, want %q", got, "2025-10-12 14:30")
	}
	if got := ExtractProcessedOn("no stamp here"); got != "" {
		t.Errorf("ExtractProcessedOn = %q, want empty", got)
	}
}

func TestSplitSections(t *testing.T) {
	sections := SplitSections(sampleReport)

	if len(sections) != 3 {
		t.Fatalf("SplitSections returned %d sections, want 3", len(sections))
	}

	glance, ok := sections["Judgment at a Glance"]
	if !ok {
		t.Fatal("missing Judgment at a Glance section")
	}
	if glance.Content != "The accused was acquitted of all charges." {
		t.Errorf("glance content = %q", glance.Content)
	}

	if _, ok := sections["CBI Case Analysis"]; ok {
		t.Error("level-1 heading must not open a section")
	}
}

func TestSplitSectionsLiftsAuditScore(t *testing.T) {
	sections := SplitSections(sampleReport)

	audit, ok := sections["Investigation Quality Audit"]
	if !ok {
		t.Fatal("missing Investigation Quality Audit section")
	}
	if audit.SeverityScore == nil || *audit.SeverityScore != 6 {
		t.Errorf("audit score = %v, want 6", audit.SeverityScore)
	}
	if audit.ScoreJustification != "Witness statements were recorded late." {
		t.Errorf("justification = %q", audit.ScoreJustification)
	}
	// Quoted lines must be stripped from the content the subsection
	// parser will see.
	for _, quoted := range []string{"Lapse Severity Score", "Justification"} {
		if strings.Contains(audit.Content, quoted) {
			t.Errorf("audit content still holds quoted line %q:\n%s", quoted, audit.Content)
		}
	}
	if !strings.Contains(audit.Content, "Delayed FIR") {
		t.Errorf("audit content lost its prose:\n%s", audit.Content)
	}
}

func TestParseTableHorizontal(t *testing.T) {
	content := `
| Name | Role | Exhibit |
|------|------|---------|
| P. Kumar | Investigating Officer | Ex.PW1 |
| S. Devi | Panch witness |
`
	rows := ParseTable(content)
	if len(rows) != 2 {
		t.Fatalf("ParseTable returned %d rows, want 2", len(rows))
	}
	if rows[0]["Name"] != "P. Kumar" || rows[0]["Exhibit"] != "Ex.PW1" {
		t.Errorf("row 0 = %v", rows[0])
	}
	// Short rows are padded to header width.
	if got, ok := rows[1]["Exhibit"]; !ok || got != "" {
		t.Errorf("row 1 Exhibit = %q, %v; want padded empty cell", got, ok)
	}
}

func TestParseTableVertical(t *testing.T) {
	content := `
| Field | Value |
|-------|-------|
| **Full Court Name** | Special Court for CBI Cases |
| Presiding Judges | Hon'ble Sri K. Rao |
`
	rows := ParseTable(content)
	if len(rows) != 1 {
		t.Fatalf("vertical table returned %d rows, want 1 collapsed map", len(rows))
	}
	// Cell values keep their bold markup, so a bold field name carries the
	// markers into the key; NormalizeMetadata strips them later.
	if got := rows[0]["**full court name**"]; got != "Special Court for CBI Cases" {
		t.Errorf("full court name = %q", got)
	}
	if got := rows[0]["presiding judges"]; got != "Hon'ble Sri K. Rao" {
		t.Errorf("presiding judges = %q", got)
	}
}

func TestParseTableTooShort(t *testing.T) {
	if rows := ParseTable("| Only | Header |\n|---|---|"); rows != nil {
		t.Errorf("ParseTable on header-only input = %v, want nil", rows)
	}
	if rows := ParseTable("plain prose, no pipes"); rows != nil {
		t.Errorf("ParseTable on prose = %v, want nil", rows)
	}
}
