package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/224saisrikanth/Judment-analysis/models"
)

// verdictSQL derives a case verdict in SQL so that aggregation queries agree
// exactly with models.Case.Verdict. Keep the two in sync.
const verdictSQL = `
	CASE
		WHEN (date IS NULL OR date = '' OR lower(date) IN ('not specified', 'not mentioned', 'unknown', 'none', 'not provided'))
			AND (sentence_issued IS NULL OR sentence_issued = '' OR lower(sentence_issued) IN ('not specified', 'not mentioned', 'unknown', 'none'))
		THEN 'Pending'
		WHEN (lower(sentence_issued) LIKE '%acquitte%' OR lower(sentence_issued) LIKE '%not guilty%') THEN 'Acquittal'
		WHEN (lower(sentence_issued) LIKE '%convict%' OR lower(sentence_issued) LIKE '%guilty%') THEN 'Conviction'
		WHEN lower(sentence_issued) LIKE '%dismiss%' THEN 'Dismissed'
		WHEN (lower(summary) LIKE '%acquittal%' OR lower(summary) LIKE '%acquitted%' OR lower(summary) LIKE '%not guilty%') THEN 'Acquittal'
		WHEN (lower(summary) LIKE '%conviction%' OR lower(summary) LIKE '%convicted%' OR lower(summary) LIKE '%guilty%') THEN 'Conviction'
		WHEN lower(summary) LIKE '%dismiss%' THEN 'Dismissed'
		ELSE 'Decided'
	END`

// isActiveSQL mirrors models.Case.IsActive as a 1/0 expression.
const isActiveSQL = `
	CASE
		WHEN (date IS NULL OR date = '' OR lower(date) IN ('not specified', 'not mentioned', 'unknown', 'none', 'not provided'))
			AND (sentence_issued IS NULL OR sentence_issued = '' OR lower(sentence_issued) IN ('not specified', 'not mentioned', 'unknown', 'none'))
		THEN 1
		ELSE 0
	END`

const caseColumns = `id, corno, accused, complaintant, prosecution, court, judge, district,
		chargesheet, plea, defense, sentence_issued, date, filing_date, summary`

// CaseDimension names a filterable case column. Only these three are ever
// interpolated into SQL.
type CaseDimension string

const (
	ByDistrict CaseDimension = "district"
	ByCourt    CaseDimension = "court"
	ByJudge    CaseDimension = "judge"
)

func (d CaseDimension) column() (string, error) {
	switch d {
	case ByDistrict, ByCourt, ByJudge:
		return string(d), nil
	}
	return "", fmt.Errorf("unknown case dimension: %q", d)
}

// CaseFilter narrows a record listing. Zero values mean "no filter".
type CaseFilter struct {
	Judge     string
	District  string
	Court     string
	Search    string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

// GroupCount is one group's total/active pair from an aggregation query.
type GroupCount struct {
	Name   string
	Total  int
	Active int
}

// DistrictVolumeRow is one district's row from the global volume query.
type DistrictVolumeRow struct {
	District    string
	Volume      int
	ActiveRatio float64
	Convictions int
	Acquittals  int
	Pending     int
	Other       int
}

// CaseRepository handles database operations for the case ledger
type CaseRepository struct {
	db *pgxpool.Pool
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{db: db}
}

// Create inserts a new case row
func (r *CaseRepository) Create(ctx context.Context, c *models.Case) error {
	query := `
		INSERT INTO cases (
			corno, accused, complaintant, prosecution, court, judge, district,
			chargesheet, plea, defense, sentence_issued, date, filing_date, summary
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING id`

	return r.db.QueryRow(
		ctx, query,
		c.CorNo,
		c.Accused,
		c.Complainant,
		c.Prosecution,
		c.Court,
		c.Judge,
		c.District,
		c.Chargesheet,
		c.Plea,
		c.Defense,
		c.SentenceIssued,
		c.Date,
		c.FilingDate,
		c.Summary,
	).Scan(&c.ID)
}

func scanCase(row interface{ Scan(dest ...any) error }) (*models.Case, error) {
	c := &models.Case{}
	err := row.Scan(
		&c.ID,
		&c.CorNo,
		&c.Accused,
		&c.Complainant,
		&c.Prosecution,
		&c.Court,
		&c.Judge,
		&c.District,
		&c.Chargesheet,
		&c.Plea,
		&c.Defense,
		&c.SentenceIssued,
		&c.Date,
		&c.FilingDate,
		&c.Summary,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByCorNo retrieves a case by its COR number
func (r *CaseRepository) GetByCorNo(ctx context.Context, corno string) (*models.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE corno = $1 LIMIT 1`
	return scanCase(r.db.QueryRow(ctx, query, corno))
}

// GetByID retrieves a case by ID
func (r *CaseRepository) GetByID(ctx context.Context, id int64) (*models.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE id = $1`
	return scanCase(r.db.QueryRow(ctx, query, id))
}

// Delete deletes a case by ID
func (r *CaseRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cases WHERE id = $1`, id)
	return err
}

// List retrieves a filtered page of cases plus the unpaginated match count.
func (r *CaseRepository) List(ctx context.Context, filter CaseFilter) ([]models.Case, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Judge != "" {
		where += fmt.Sprintf(" AND judge = $%d", argIndex)
		args = append(args, filter.Judge)
		argIndex++
	}
	if filter.District != "" {
		where += fmt.Sprintf(" AND district = $%d", argIndex)
		args = append(args, filter.District)
		argIndex++
	}
	if filter.Court != "" {
		where += fmt.Sprintf(" AND court = $%d", argIndex)
		args = append(args, filter.Court)
		argIndex++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (accused ILIKE $%d OR corno ILIKE $%d OR summary ILIKE $%d)", argIndex, argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.StartDate != "" {
		where += fmt.Sprintf(" AND filing_date >= $%d", argIndex)
		args = append(args, filter.StartDate)
		argIndex++
	}
	if filter.EndDate != "" {
		where += fmt.Sprintf(" AND filing_date <= $%d", argIndex)
		args = append(args, filter.EndDate)
		argIndex++
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM cases"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + caseColumns + " FROM cases" + where + " ORDER BY filing_date DESC NULLS LAST, id DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var cases []models.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, 0, err
		}
		cases = append(cases, *c)
	}
	return cases, total, rows.Err()
}

// verdictScope restricts a query to one derived verdict; empty means all.
func verdictScope(verdict string, args []interface{}) (string, []interface{}) {
	if verdict == "" {
		return "1=1", args
	}
	args = append(args, verdict)
	return fmt.Sprintf("(%s) = $%d", verdictSQL, len(args)), args
}

// GlobalCounts returns total and active case counts, optionally scoped to
// one derived verdict.
func (r *CaseRepository) GlobalCounts(ctx context.Context, verdict string) (total, active int, err error) {
	scope, args := verdictScope(verdict, nil)

	if err = r.db.QueryRow(ctx, "SELECT COUNT(*) FROM cases WHERE "+scope, args...).Scan(&total); err != nil {
		return 0, 0, err
	}
	query := fmt.Sprintf("SELECT COUNT(*) FROM cases WHERE (%s) = 1 AND %s", isActiveSQL, scope)
	if err = r.db.QueryRow(ctx, query, args...).Scan(&active); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

// VerdictCounts tallies cases by derived verdict, optionally scoped to one
// filterable dimension value.
func (r *CaseRepository) VerdictCounts(ctx context.Context, dim CaseDimension, value string, activeOnly bool) (map[string]int, error) {
	query := fmt.Sprintf("SELECT %s AS v, COUNT(*) AS c FROM cases WHERE 1=1", verdictSQL)
	var args []interface{}

	if value != "" {
		col, err := dim.column()
		if err != nil {
			return nil, err
		}
		args = append(args, value)
		query += fmt.Sprintf(" AND %s = $%d", col, len(args))
	}
	if activeOnly {
		query += fmt.Sprintf(" AND (%s) = 0", isActiveSQL)
	}
	query += " GROUP BY v"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var v string
		var c int
		if err := rows.Scan(&v, &c); err != nil {
			return nil, err
		}
		counts[v] = c
	}
	return counts, rows.Err()
}

// GlobalVerdictCounts tallies cases by derived verdict over the whole ledger,
// optionally scoped to one verdict.
func (r *CaseRepository) GlobalVerdictCounts(ctx context.Context, verdict string) (map[string]int, error) {
	scope, args := verdictScope(verdict, nil)
	query := fmt.Sprintf("SELECT %s AS v, COUNT(*) AS c FROM cases WHERE %s GROUP BY v", verdictSQL, scope)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var v string
		var c int
		if err := rows.Scan(&v, &c); err != nil {
			return nil, err
		}
		counts[v] = c
	}
	return counts, rows.Err()
}

// DimensionCounts returns total/active counts for one dimension value.
func (r *CaseRepository) DimensionCounts(ctx context.Context, dim CaseDimension, value string) (total, active int, err error) {
	col, err := dim.column()
	if err != nil {
		return 0, 0, err
	}
	query := fmt.Sprintf("SELECT COUNT(*), COALESCE(SUM(%s), 0) FROM cases WHERE %s = $1", isActiveSQL, col)
	if err = r.db.QueryRow(ctx, query, value).Scan(&total, &active); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

// GroupCounts aggregates total/active counts grouped by one dimension,
// scoped to a value of another dimension.
func (r *CaseRepository) GroupCounts(ctx context.Context, groupBy, scopeDim CaseDimension, scopeValue string) ([]GroupCount, error) {
	groupCol, err := groupBy.column()
	if err != nil {
		return nil, err
	}
	scopeCol, err := scopeDim.column()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"SELECT COALESCE(%s, ''), COUNT(*), COALESCE(SUM(%s), 0) FROM cases WHERE %s = $1 GROUP BY 1",
		groupCol, isActiveSQL, scopeCol,
	)
	rows, err := r.db.Query(ctx, query, scopeValue)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []GroupCount
	for rows.Next() {
		var g GroupCount
		if err := rows.Scan(&g.Name, &g.Total, &g.Active); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// DistinctCount counts distinct values of one dimension within a scope.
func (r *CaseRepository) DistinctCount(ctx context.Context, countDim, scopeDim CaseDimension, scopeValue string) (int, error) {
	countCol, err := countDim.column()
	if err != nil {
		return 0, err
	}
	scopeCol, err := scopeDim.column()
	if err != nil {
		return 0, err
	}

	var n int
	query := fmt.Sprintf("SELECT COUNT(DISTINCT %s) FROM cases WHERE %s = $1", countCol, scopeCol)
	if err := r.db.QueryRow(ctx, query, scopeValue).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DistrictVolumes aggregates the per-district caseload for the global
// dashboard, optionally scoped to one derived verdict.
func (r *CaseRepository) DistrictVolumes(ctx context.Context, verdict string) ([]DistrictVolumeRow, error) {
	scope, args := verdictScope(verdict, nil)
	query := fmt.Sprintf(`
		SELECT
			COALESCE(district, '') AS district,
			COUNT(*) AS vol,
			AVG(%[1]s) AS active_ratio,
			SUM(CASE WHEN (%[2]s) = 'Conviction' THEN 1 ELSE 0 END) AS convictions,
			SUM(CASE WHEN (%[2]s) = 'Acquittal' THEN 1 ELSE 0 END) AS acquittals,
			SUM(CASE WHEN (%[2]s) = 'Pending' THEN 1 ELSE 0 END) AS pending,
			SUM(CASE WHEN (%[2]s) IN ('Dismissed', 'Decided') THEN 1 ELSE 0 END) AS other
		FROM cases
		WHERE %[3]s
		GROUP BY district
		ORDER BY vol DESC`, isActiveSQL, verdictSQL, scope)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var volumes []DistrictVolumeRow
	for rows.Next() {
		var v DistrictVolumeRow
		if err := rows.Scan(&v.District, &v.Volume, &v.ActiveRatio, &v.Convictions, &v.Acquittals, &v.Pending, &v.Other); err != nil {
			return nil, err
		}
		volumes = append(volumes, v)
	}
	return volumes, rows.Err()
}

// Recent returns the most recently filed cases, optionally scoped to one
// dimension value or one derived verdict.
func (r *CaseRepository) Recent(ctx context.Context, dim CaseDimension, value, verdict string, limit int) ([]models.Case, error) {
	query := "SELECT " + caseColumns + " FROM cases WHERE 1=1"
	var args []interface{}

	if value != "" {
		col, err := dim.column()
		if err != nil {
			return nil, err
		}
		args = append(args, value)
		query += fmt.Sprintf(" AND %s = $%d", col, len(args))
	}
	if verdict != "" {
		args = append(args, verdict)
		query += fmt.Sprintf(" AND (%s) = $%d", verdictSQL, len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY filing_date DESC NULLS LAST, id DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []models.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, *c)
	}
	return cases, rows.Err()
}

// PrimaryLocation returns the district and court a judge most often sits in.
func (r *CaseRepository) PrimaryLocation(ctx context.Context, judge string) (district, court string, err error) {
	query := `
		SELECT COALESCE(district, ''), COALESCE(court, '')
		FROM cases
		WHERE judge = $1
		GROUP BY district, court
		ORDER BY COUNT(*) DESC
		LIMIT 1`

	err = r.db.QueryRow(ctx, query, judge).Scan(&district, &court)
	return district, court, err
}

// FirstJudgeForCourt returns any judge recorded against a court.
func (r *CaseRepository) FirstJudgeForCourt(ctx context.Context, court string) (string, error) {
	var judge string
	err := r.db.QueryRow(ctx, `SELECT COALESCE(judge, '') FROM cases WHERE court = $1 LIMIT 1`, court).Scan(&judge)
	if err != nil {
		return "", err
	}
	return judge, nil
}

// DistinctCourts lists distinct court names, optionally scoped to a district.
func (r *CaseRepository) DistinctCourts(ctx context.Context, district string) ([]string, error) {
	query := `SELECT DISTINCT court FROM cases`
	var args []interface{}
	if district != "" {
		query += ` WHERE district = $1`
		args = append(args, district)
	}
	query += ` ORDER BY court`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courts []string
	for rows.Next() {
		var court string
		if err := rows.Scan(&court); err != nil {
			return nil, err
		}
		courts = append(courts, court)
	}
	return courts, rows.Err()
}

// Count returns the total number of ledger rows.
func (r *CaseRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cases`).Scan(&n)
	return n, err
}
