package models

// DistrictVolume is one district's slice of the global caseload.
type DistrictVolume struct {
	Name        string `json:"name"`
	Volume      int    `json:"volume"`
	Status      string `json:"status"`
	ActiveRatio int    `json:"active_ratio"`
	Convictions int    `json:"convictions"`
	Acquittals  int    `json:"acquittals"`
	Pending     int    `json:"pending"`
	Other       int    `json:"other"`
}

// GlobalStats is the top-level dashboard aggregate.
type GlobalStats struct {
	ActiveCases         int              `json:"active_cases"`
	TotalCases          int              `json:"total_cases"`
	ConvictionRate      int              `json:"conviction_rate"`
	AcquittalRate       int              `json:"acquittal_rate"`
	ConvictionCount     int              `json:"conviction_count"`
	AcquittalCount      int              `json:"acquittal_count"`
	PendingCount        int              `json:"pending_count"`
	DismissedCount      int              `json:"dismissed_count"`
	OtherDecidedCount   int              `json:"other_decided_count"`
	DistrictVolumes     []DistrictVolume `json:"district_volumes"`
	MaxDistrictVolume   int              `json:"max_district_volume"`
	RecentVerdicts      []Case           `json:"recent_verdicts"`
	VerdictDistribution []int            `json:"verdict_distribution"`
}

// CourtBreakdown is one court's load inside a district dashboard.
type CourtBreakdown struct {
	Name           string `json:"name"`
	Total          int    `json:"total"`
	Active         int    `json:"active"`
	PresidingJudge string `json:"presiding_judge"`
	Clearance      int    `json:"clearance"`
	Status         string `json:"status"`
}

// JudgeBreakdown is one judge's load inside a district or court dashboard.
type JudgeBreakdown struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Active    int    `json:"active"`
	Clearance int    `json:"clearance"`
	Status    string `json:"status"`
}

// DistrictStats is the per-district dashboard aggregate.
type DistrictStats struct {
	Name           string           `json:"name"`
	TotalCases     int              `json:"total_cases"`
	ActiveCases    int              `json:"active_cases"`
	SuccessRate    int              `json:"success_rate"`
	CourtBreakdown []CourtBreakdown `json:"court_breakdown"`
	JudgeBreakdown []JudgeBreakdown `json:"judge_breakdown"`
	RecentCases    []Case           `json:"recent_cases"`
	TotalJudges    int              `json:"total_judges"`
	TotalCourts    int              `json:"total_courts"`
}

// CourtJudge is one judge's retention figures inside a court dashboard.
type CourtJudge struct {
	Name      string `json:"name"`
	Active    int    `json:"active"`
	Total     int    `json:"total"`
	Retention int    `json:"retention"`
	Status    string `json:"status"`
}

// CourtStats is the per-court dashboard aggregate.
type CourtStats struct {
	Name           string       `json:"name"`
	TotalCases     int          `json:"total_cases"`
	ActiveCases    int          `json:"active_cases"`
	ClearanceRate  int          `json:"clearance_rate"`
	OverturnedRate int          `json:"overturned_rate"`
	Judges         []CourtJudge `json:"judges"`
}

// JudgeStats is the per-judge dashboard aggregate.
type JudgeStats struct {
	Name             string         `json:"name"`
	TotalCases       int            `json:"total_cases"`
	ActiveCases      int            `json:"active_cases"`
	ClosedCases      int            `json:"closed_cases"`
	District         string         `json:"district"`
	Court            string         `json:"court"`
	VerdictBreakdown map[string]int `json:"verdict_breakdown"`
	RecentCases      []Case         `json:"recent_cases"`
}

// RecordPage is one page of filtered case records.
type RecordPage struct {
	Cases      []Case `json:"cases"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}
