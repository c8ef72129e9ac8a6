package analysis

import "testing"

func strVal(t *testing.T, p *string, want, field string) {
	t.Helper()
	if p == nil {
		t.Errorf("%s = absent, want %q", field, want)
		return
	}
	if *p != want {
		t.Errorf("%s = %q, want %q", field, *p, want)
	}
}

func TestNormalizeMetadataBasicFields(t *testing.T) {
	raw := map[string]string{
		"**full court name**": "Special Court for CBI Cases",
		"presiding judges":    "Hon'ble Sri K. Rao",
		"case number":         "SC.No.5 of 2024",
		"parties":             "State of Telangana vs R. Prasad",
	}

	meta := NormalizeMetadata(raw)
	strVal(t, meta.Court, "Special Court for CBI Cases", "Court")
	strVal(t, meta.Judge, "Hon'ble Sri K. Rao", "Judge")
	strVal(t, meta.CaseNumber, "SC.No.5 of 2024", "CaseNumber")
	strVal(t, meta.Parties, "State of Telangana vs R. Prasad", "Parties")
	if meta.DateISO != nil || meta.DateNatural != nil {
		t.Error("dates should be absent")
	}
}

func TestNormalizeMetadataDateShapes(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		val         string
		wantISO     string
		wantNatural string
	}{
		{
			name:        "combined header paren form",
			key:         "date of judgement (iso + natural text)",
			val:         "2025-12-15 (Monday, 15th December 2025)",
			wantISO:     "2025-12-15",
			wantNatural: "Monday, 15th December 2025",
		},
		{
			name:        "combined header plus form",
			key:         "date of judgement (iso + natural text)",
			val:         "2025-12-15 + 15th December 2025",
			wantISO:     "2025-12-15",
			wantNatural: "15th December 2025",
		},
		{
			name:        "generic key with embedded labels",
			key:         "date of judgement",
			val:         "ISO: 2025-12-15<br>Natural Text: 15th day of December, 2025",
			wantISO:     "2025-12-15",
			wantNatural: "15th day of December, 2025",
		},
		{
			name:        "generic key bare value",
			key:         "date of judgement",
			val:         "15th December 2025",
			wantNatural: "15th December 2025",
		},
		{
			name:    "iso-only key",
			key:     "date (iso)",
			val:     "2025-12-15",
			wantISO: "2025-12-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NormalizeMetadata(map[string]string{tt.key: tt.val})
			if tt.wantISO != "" {
				strVal(t, meta.DateISO, tt.wantISO, "DateISO")
			} else if meta.DateISO != nil {
				t.Errorf("DateISO = %q, want absent", *meta.DateISO)
			}
			if tt.wantNatural != "" {
				strVal(t, meta.DateNatural, tt.wantNatural, "DateNatural")
			} else if meta.DateNatural != nil {
				t.Errorf("DateNatural = %q, want absent", *meta.DateNatural)
			}
		})
	}
}

func TestNormalizeMetadataEmpty(t *testing.T) {
	if meta := NormalizeMetadata(nil); !meta.IsEmpty() {
		t.Errorf("NormalizeMetadata(nil) = %+v, want empty", meta)
	}
	if meta := NormalizeMetadata(map[string]string{"unrelated": "x"}); !meta.IsEmpty() {
		t.Errorf("unmapped keys must not populate fields: %+v", meta)
	}
}

func TestFallbackMetadataCourt(t *testing.T) {
	summary := "The case was heard by the Special Court for CBI Cases before Hon'ble Judge X on 15 December 2025."

	meta := FallbackMetadata(summary, "")
	// Court is truncated before the date clause.
	strVal(t, meta.Court, "Special Court for CBI Cases before Hon'ble Judge X", "Court")
}

func TestFallbackMetadataCaseNumberAndParties(t *testing.T) {
	summary := "In SC.No.5 of 2024, the State of Telangana against the accused, identified as Ravi Prasad, a government clerk."

	meta := FallbackMetadata(summary, "")
	strVal(t, meta.CaseNumber, "SC.No.5 of 2024", "CaseNumber")
	strVal(t, meta.Parties, "State of Telangana vs Ravi Prasad", "Parties")
}

func TestFallbackMetadataJudgmentDate(t *testing.T) {
	timeline := "- **15 December 2025**: Judgment pronounced."

	meta := FallbackMetadata("heard by the Sessions Court. ", timeline)
	strVal(t, meta.DateNatural, "15 December 2025", "DateNatural")
}

func TestFallbackMetadataEmptySummary(t *testing.T) {
	if meta := FallbackMetadata("", "- **date**: Judgment"); !meta.IsEmpty() {
		t.Errorf("empty summary must yield empty metadata: %+v", meta)
	}
}
