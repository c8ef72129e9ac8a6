package service

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeRecordsList(t *testing.T) {
	payload := []byte(`[
		{"corno": "COR 5/2024", "accused": "R. Prasad", "district": "Hyderabad"},
		{"corno": "COR 6/2024", "accused": "S. Devi", "district": "Warangal"}
	]`)

	records, err := decodeRecords(payload)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if got := cleanText(records[0].CorNo); got != "COR 5/2024" {
		t.Errorf("corno = %q", got)
	}
	if got := cleanText(records[1].Accused); got != "S. Devi" {
		t.Errorf("accused = %q", got)
	}
}

func TestDecodeRecordsFlatSingle(t *testing.T) {
	payload := []byte(`{"corno": "COR 7/2024", "complaininat": "Bank Manager, SBI"}`)

	records, err := decodeRecords(payload)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	// The legacy misspelled key still carries the complainant.
	if got := cleanText(records[0].ComplainantLegacy); got != "Bank Manager, SBI" {
		t.Errorf("legacy complainant = %q", got)
	}
	if got := cleanText(records[0].Complainant); got != "" {
		t.Errorf("complainant = %q, want empty", got)
	}
}

func TestDecodeRecordsMetadataEnvelope(t *testing.T) {
	payload := []byte(`{
		"metadata": {
			"case_number": "SC.No.5 of 2024",
			"accused_name": "R. Prasad",
			"prosecution_advocate": "Public Prosecutor",
			"date_of_judgment": "09-10-2025"
		},
		"summary": "The accused was convicted."
	}`)

	records, err := decodeRecords(payload)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if got := cleanText(r.CorNo); got != "SC.No.5 of 2024" {
		t.Errorf("corno = %q", got)
	}
	if got := cleanText(r.Prosecution); got != "Public Prosecutor" {
		t.Errorf("prosecution = %q", got)
	}
	if got := cleanText(r.Date); got != "09-10-2025" {
		t.Errorf("date = %q", got)
	}
	if got := cleanText(r.Summary); got != "The accused was convicted." {
		t.Errorf("summary = %q", got)
	}
}

func TestDecodeRecordsErrors(t *testing.T) {
	if _, err := decodeRecords([]byte("   ")); !errors.Is(err, ErrEmptyUpload) {
		t.Errorf("blank payload err = %v, want ErrEmptyUpload", err)
	}
	if _, err := decodeRecords([]byte(`[{"corno": }]`)); err == nil {
		t.Error("malformed list should error")
	}
	if _, err := decodeRecords([]byte(`not json`)); err == nil {
		t.Error("non-JSON payload should error")
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"string", `"  R. Prasad "`, "R. Prasad"},
		{"list joined", `["Sec 409 IPC", "Sec 420 IPC"]`, "Sec 409 IPC, Sec 420 IPC"},
		{"number", `42`, "42"},
		{"null", `null`, ""},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanText(json.RawMessage(tt.raw)); got != tt.want {
				t.Errorf("cleanText(%s) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
