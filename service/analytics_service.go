package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/224saisrikanth/Judment-analysis/models"
	"github.com/224saisrikanth/Judment-analysis/repository"
)

// AnalyticsService handles dashboard aggregation over the case ledger
type AnalyticsService struct {
	caseRepo *repository.CaseRepository
}

// AnalyticsServiceOption is a functional option for AnalyticsService
type AnalyticsServiceOption func(*AnalyticsService)

// WithAnalyticsCaseRepository sets the case repository
func WithAnalyticsCaseRepository(repo *repository.CaseRepository) AnalyticsServiceOption {
	return func(s *AnalyticsService) {
		s.caseRepo = repo
	}
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(opts ...AnalyticsServiceOption) *AnalyticsService {
	s := &AnalyticsService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// verdictForAnalysisType maps the dashboard filter selector to a derived
// verdict scope; anything unrecognized means "all outcomes".
func verdictForAnalysisType(analysisType string) string {
	switch analysisType {
	case "Convictions Only":
		return "Conviction"
	case "Acquittals Only":
		return "Acquittal"
	}
	return ""
}

// GetPaginatedRecords fetches one page of filtered case records.
func (s *AnalyticsService) GetPaginatedRecords(ctx context.Context, filter repository.CaseFilter, page, pageSize int) (*models.RecordPage, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}

	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	cases, total, err := s.caseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.RecordPage{
		Cases:      cases,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

// GetCaseByCorNo fetches a single case by its COR number.
func (s *AnalyticsService) GetCaseByCorNo(ctx context.Context, corno string) (*models.Case, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}
	return s.caseRepo.GetByCorNo(ctx, corno)
}

// GetCourts lists distinct court names, optionally scoped to a district.
func (s *AnalyticsService) GetCourts(ctx context.Context, district string) ([]string, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}
	return s.caseRepo.DistinctCourts(ctx, district)
}

// GetGlobalStats builds the top-level dashboard aggregate, optionally scoped
// by the outcome selector.
func (s *AnalyticsService) GetGlobalStats(ctx context.Context, analysisType string) (*models.GlobalStats, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	verdict := verdictForAnalysisType(analysisType)

	total, active, err := s.caseRepo.GlobalCounts(ctx, verdict)
	if err != nil {
		return nil, err
	}

	verdictCounts, err := s.caseRepo.GlobalVerdictCounts(ctx, verdict)
	if err != nil {
		return nil, err
	}

	decided := 0
	for v, c := range verdictCounts {
		if v != "Pending" {
			decided += c
		}
	}
	if decided == 0 {
		decided = 1
	}

	volumes, err := s.caseRepo.DistrictVolumes(ctx, verdict)
	if err != nil {
		return nil, err
	}

	districtVolumes := make([]models.DistrictVolume, 0, len(volumes))
	maxVol := 0
	for _, row := range volumes {
		if row.Volume > maxVol {
			maxVol = row.Volume
		}
		status := "neutral"
		if row.ActiveRatio > 0.5 {
			status = "lagging"
		} else if row.ActiveRatio < 0.2 {
			status = "efficient"
		}
		name := row.District
		if name == "" {
			name = "Unknown"
		}
		districtVolumes = append(districtVolumes, models.DistrictVolume{
			Name:        name,
			Volume:      row.Volume,
			Status:      status,
			ActiveRatio: int(row.ActiveRatio * 100),
			Convictions: row.Convictions,
			Acquittals:  row.Acquittals,
			Pending:     row.Pending,
			Other:       row.Other,
		})
	}

	recent, err := s.caseRepo.Recent(ctx, "", "", verdict, 10)
	if err != nil {
		return nil, err
	}

	return &models.GlobalStats{
		ActiveCases:       active,
		TotalCases:        total,
		ConvictionRate:    verdictCounts["Conviction"] * 100 / decided,
		AcquittalRate:     verdictCounts["Acquittal"] * 100 / decided,
		ConvictionCount:   verdictCounts["Conviction"],
		AcquittalCount:    verdictCounts["Acquittal"],
		PendingCount:      verdictCounts["Pending"],
		DismissedCount:    verdictCounts["Dismissed"],
		OtherDecidedCount: verdictCounts["Decided"],
		DistrictVolumes:   districtVolumes,
		MaxDistrictVolume: maxVol,
		RecentVerdicts:    recent,
		VerdictDistribution: []int{
			verdictCounts["Conviction"],
			verdictCounts["Acquittal"],
			verdictCounts["Pending"],
			verdictCounts["Dismissed"] + verdictCounts["Decided"],
		},
	}, nil
}

func clearanceStatus(clearance int) string {
	if clearance > 80 {
		return "Optimal"
	}
	return "Lagging"
}

// GetDistrictStats builds the per-district dashboard aggregate.
func (s *AnalyticsService) GetDistrictStats(ctx context.Context, district string) (*models.DistrictStats, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	total, active, err := s.caseRepo.DimensionCounts(ctx, repository.ByDistrict, district)
	if err != nil {
		return nil, err
	}

	// Success rate counts convictions among closed cases only.
	closedVerdicts, err := s.caseRepo.VerdictCounts(ctx, repository.ByDistrict, district, true)
	if err != nil {
		return nil, err
	}
	totalClosed := 0
	for _, c := range closedVerdicts {
		totalClosed += c
	}
	if totalClosed == 0 {
		totalClosed = 1
	}
	successRate := closedVerdicts["Conviction"] * 100 / totalClosed

	courtGroups, err := s.caseRepo.GroupCounts(ctx, repository.ByCourt, repository.ByDistrict, district)
	if err != nil {
		return nil, err
	}
	courtBreakdown := make([]models.CourtBreakdown, 0, len(courtGroups))
	for _, g := range courtGroups {
		judge, err := s.caseRepo.FirstJudgeForCourt(ctx, g.Name)
		if err != nil || judge == "" {
			judge = "N/A"
		}
		clearance := 0
		if g.Total > 0 {
			clearance = (g.Total - g.Active) * 100 / g.Total
		}
		name := g.Name
		if name == "" {
			name = "Unknown"
		}
		courtBreakdown = append(courtBreakdown, models.CourtBreakdown{
			Name:           name,
			Total:          g.Total,
			Active:         g.Active,
			PresidingJudge: judge,
			Clearance:      clearance,
			Status:         clearanceStatus(clearance),
		})
	}

	judgeGroups, err := s.caseRepo.GroupCounts(ctx, repository.ByJudge, repository.ByDistrict, district)
	if err != nil {
		return nil, err
	}
	judgeBreakdown := make([]models.JudgeBreakdown, 0, len(judgeGroups))
	for _, g := range judgeGroups {
		clearance := 0
		if g.Total > 0 {
			clearance = (g.Total - g.Active) * 100 / g.Total
		}
		name := g.Name
		if name == "" {
			name = "Unknown"
		}
		judgeBreakdown = append(judgeBreakdown, models.JudgeBreakdown{
			Name:      name,
			Total:     g.Total,
			Active:    g.Active,
			Clearance: clearance,
			Status:    clearanceStatus(clearance),
		})
	}

	totalJudges, err := s.caseRepo.DistinctCount(ctx, repository.ByJudge, repository.ByDistrict, district)
	if err != nil {
		return nil, err
	}
	totalCourts, err := s.caseRepo.DistinctCount(ctx, repository.ByCourt, repository.ByDistrict, district)
	if err != nil {
		return nil, err
	}

	recent, err := s.caseRepo.Recent(ctx, repository.ByDistrict, district, "", 5)
	if err != nil {
		return nil, err
	}

	return &models.DistrictStats{
		Name:           district,
		TotalCases:     total,
		ActiveCases:    active,
		SuccessRate:    successRate,
		CourtBreakdown: courtBreakdown,
		JudgeBreakdown: judgeBreakdown,
		RecentCases:    recent,
		TotalJudges:    totalJudges,
		TotalCourts:    totalCourts,
	}, nil
}

// GetCourtStats builds the per-court dashboard aggregate.
func (s *AnalyticsService) GetCourtStats(ctx context.Context, court string) (*models.CourtStats, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	total, active, err := s.caseRepo.DimensionCounts(ctx, repository.ByCourt, court)
	if err != nil {
		return nil, err
	}

	clearance := 0
	if total > 0 {
		clearance = (total - active) * 100 / total
	}

	judgeGroups, err := s.caseRepo.GroupCounts(ctx, repository.ByJudge, repository.ByCourt, court)
	if err != nil {
		return nil, err
	}
	judges := make([]models.CourtJudge, 0, len(judgeGroups))
	for _, g := range judgeGroups {
		retention := 0
		if g.Total > 0 {
			retention = g.Active * 100 / g.Total
		}
		status := "Efficient"
		if retention > 20 {
			status = "Active"
		}
		name := g.Name
		if name == "" {
			name = "Unknown"
		}
		judges = append(judges, models.CourtJudge{
			Name:      name,
			Active:    g.Active,
			Total:     g.Total,
			Retention: retention,
			Status:    status,
		})
	}

	return &models.CourtStats{
		Name:          court,
		TotalCases:    total,
		ActiveCases:   active,
		ClearanceRate: clearance,
		Judges:        judges,
	}, nil
}

// GetJudgeStats builds the per-judge dashboard aggregate.
func (s *AnalyticsService) GetJudgeStats(ctx context.Context, judge string) (*models.JudgeStats, error) {
	if s.caseRepo == nil {
		return nil, errors.New("case repository not set")
	}

	total, active, err := s.caseRepo.DimensionCounts(ctx, repository.ByJudge, judge)
	if err != nil {
		return nil, err
	}

	district, court, err := s.caseRepo.PrimaryLocation(ctx, judge)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		district, court = "N/A", "N/A"
	}

	verdicts, err := s.caseRepo.VerdictCounts(ctx, repository.ByJudge, judge, false)
	if err != nil {
		return nil, err
	}

	recent, err := s.caseRepo.Recent(ctx, repository.ByJudge, judge, "", 10)
	if err != nil {
		return nil, err
	}

	return &models.JudgeStats{
		Name:             judge,
		TotalCases:       total,
		ActiveCases:      active,
		ClosedCases:      total - active,
		District:         district,
		Court:            court,
		VerdictBreakdown: verdicts,
		RecentCases:      recent,
	}, nil
}
