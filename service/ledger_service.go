package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/224saisrikanth/Judment-analysis/analysis"
	"github.com/224saisrikanth/Judment-analysis/models"
	"github.com/224saisrikanth/Judment-analysis/repository"
	"github.com/224saisrikanth/Judment-analysis/storage"
)

// ErrEmptyUpload is returned when an import payload holds no usable records.
var ErrEmptyUpload = errors.New("no records in upload")

// LedgerService handles case record imports into the ledger
type LedgerService struct {
	caseRepo *repository.CaseRepository
	store    storage.Storage
}

// LedgerServiceOption is a functional option for LedgerService
type LedgerServiceOption func(*LedgerService)

// WithLedgerCaseRepository sets the case repository
func WithLedgerCaseRepository(repo *repository.CaseRepository) LedgerServiceOption {
	return func(s *LedgerService) {
		s.caseRepo = repo
	}
}

// WithLedgerStorage sets the storage used to archive uploaded payloads
func WithLedgerStorage(store storage.Storage) LedgerServiceOption {
	return func(s *LedgerService) {
		s.store = store
	}
}

// NewLedgerService creates a new ledger service
func NewLedgerService(opts ...LedgerServiceOption) *LedgerService {
	s := &LedgerService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// rawRecord is one flat case record as the extraction pipeline exports it.
// The "complaininat" key is a long-lived typo in upstream exports.
type rawRecord struct {
	CorNo             json.RawMessage `json:"corno"`
	Accused           json.RawMessage `json:"accused"`
	Complainant       json.RawMessage `json:"complaintant"`
	ComplainantLegacy json.RawMessage `json:"complaininat"`
	Prosecution       json.RawMessage `json:"prosecution"`
	Court             json.RawMessage `json:"court"`
	Judge             json.RawMessage `json:"judge"`
	District          json.RawMessage `json:"district"`
	Chargesheet       json.RawMessage `json:"chargesheet"`
	Plea              json.RawMessage `json:"plea"`
	Defense           json.RawMessage `json:"defense"`
	SentenceIssued    json.RawMessage `json:"sentence_issued"`
	Date              json.RawMessage `json:"date"`
	Summary           json.RawMessage `json:"summary"`
}

// metadataEnvelope is the newer single-case export shape where fields sit
// under a metadata object next to a summary string.
type metadataEnvelope struct {
	Metadata *struct {
		CaseNumber          json.RawMessage `json:"case_number"`
		AccusedName         json.RawMessage `json:"accused_name"`
		Complainant         json.RawMessage `json:"complaintant"`
		ProsecutionAdvocate json.RawMessage `json:"prosecution_advocate"`
		Court               json.RawMessage `json:"court"`
		Judge               json.RawMessage `json:"judge"`
		District            json.RawMessage `json:"district"`
		Charges             json.RawMessage `json:"charges"`
		AccusedPlea         json.RawMessage `json:"accused_plea"`
		DefenseAdvocate     json.RawMessage `json:"defense_advocate"`
		SentenceIssued      json.RawMessage `json:"sentence_issued"`
		DateOfJudgment      json.RawMessage `json:"date_of_judgment"`
	} `json:"metadata"`
	Summary json.RawMessage `json:"summary"`
}

// cleanText flattens a raw JSON value to trimmed text. String lists are
// joined with ", "; anything unrecognized becomes empty.
func cleanText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []interface{}
	if err := json.Unmarshal(raw, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.TrimSpace(strings.Join(parts, ", "))
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err == nil && v != nil {
		return strings.TrimSpace(fmt.Sprint(v))
	}
	return ""
}

// ImportResult reports one completed ledger import.
type ImportResult struct {
	Count   int    `json:"count"`
	BatchID string `json:"batch_id"`
}

// ImportJSON parses an uploaded payload into ledger rows. Accepted shapes:
// a list of flat records, one flat record, or a {metadata, summary} envelope.
// Records with bracketed placeholder case numbers or an out-of-jurisdiction
// district are skipped. The raw payload is archived to storage under a fresh
// batch ID.
func (s *LedgerService) ImportJSON(ctx context.Context, payload []byte) (*ImportResult, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	records, err := decodeRecords(payload)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyUpload
	}

	batchID := uuid.New().String()
	if s.store != nil {
		name := "uploads/" + batchID + ".json"
		if err := s.store.Write(ctx, name, bytes.NewReader(payload)); err != nil {
			// Archiving is best effort, the import still proceeds.
			log.Printf("failed to archive upload %s: %v", batchID, err)
		}
	}

	count := 0
	for _, rec := range records {
		corno := cleanText(rec.CorNo)
		if strings.HasPrefix(corno, "[") && strings.HasSuffix(corno, "]") {
			continue
		}

		complainant := cleanText(rec.Complainant)
		if complainant == "" {
			complainant = cleanText(rec.ComplainantLegacy)
		}

		district, excluded := analysis.CanonicalizeDistrict(cleanText(rec.District))
		if excluded {
			continue
		}

		c := &models.Case{
			CorNo:          corno,
			Accused:        cleanText(rec.Accused),
			Complainant:    complainant,
			Prosecution:    cleanText(rec.Prosecution),
			Court:          cleanText(rec.Court),
			Judge:          cleanText(rec.Judge),
			District:       district,
			Chargesheet:    cleanText(rec.Chargesheet),
			Plea:           cleanText(rec.Plea),
			Defense:        cleanText(rec.Defense),
			SentenceIssued: cleanText(rec.SentenceIssued),
			Date:           cleanText(rec.Date),
			Summary:        cleanText(rec.Summary),
		}
		if filed, ok := analysis.NormalizeDate(c.Date); ok {
			c.FilingDate = &filed
		}

		if err := s.caseRepo.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("failed to insert case %q: %w", corno, err)
		}
		count++
	}

	return &ImportResult{Count: count, BatchID: batchID}, nil
}

// decodeRecords normalizes every accepted payload shape to flat records.
func decodeRecords(payload []byte) ([]rawRecord, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, ErrEmptyUpload
	}

	if trimmed[0] == '[' {
		var records []rawRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("invalid JSON payload: %w", err)
		}
		return records, nil
	}

	var envelope metadataEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("invalid JSON payload: %w", err)
	}
	if envelope.Metadata != nil {
		m := envelope.Metadata
		return []rawRecord{{
			CorNo:          m.CaseNumber,
			Accused:        m.AccusedName,
			Complainant:    m.Complainant,
			Prosecution:    m.ProsecutionAdvocate,
			Court:          m.Court,
			Judge:          m.Judge,
			District:       m.District,
			Chargesheet:    m.Charges,
			Plea:           m.AccusedPlea,
			Defense:        m.DefenseAdvocate,
			SentenceIssued: m.SentenceIssued,
			Date:           m.DateOfJudgment,
			Summary:        envelope.Summary,
		}}, nil
	}

	var record rawRecord
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, fmt.Errorf("invalid JSON payload: %w", err)
	}
	return []rawRecord{record}, nil
}
