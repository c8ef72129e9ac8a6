package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/224saisrikanth/Judment-analysis/repository"
	"github.com/224saisrikanth/Judment-analysis/service"
)

// Uploaded payloads are read fully into memory; cap them.
const maxUploadBytes = 20 << 20

// CaseHandler handles HTTP requests for the case ledger and dashboards
type CaseHandler struct {
	analyticsService *service.AnalyticsService
	ledgerService    *service.LedgerService
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(analyticsService *service.AnalyticsService, ledgerService *service.LedgerService) *CaseHandler {
	return &CaseHandler{
		analyticsService: analyticsService,
		ledgerService:    ledgerService,
	}
}

// ListRecords handles GET /api/records
func (h *CaseHandler) ListRecords(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	filter := repository.CaseFilter{
		Judge:     c.Query("judge"),
		District:  c.Query("district"),
		Court:     c.Query("court"),
		Search:    c.Query("search"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	result, err := h.analyticsService.GetPaginatedRecords(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	filterDescription := "All Case Records"
	switch {
	case filter.Judge != "":
		filterDescription = fmt.Sprintf("Cases for Judge %s", filter.Judge)
	case filter.District != "":
		filterDescription = fmt.Sprintf("Cases in %s", filter.District)
	case filter.Court != "":
		filterDescription = fmt.Sprintf("Cases in %s", filter.Court)
	case filter.Search != "":
		filterDescription = fmt.Sprintf("Search results for '%s'", filter.Search)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"cases":              result.Cases,
			"total_count":        result.TotalCount,
			"page":               result.Page,
			"page_size":          result.PageSize,
			"total_pages":        result.TotalPages,
			"filter_description": filterDescription,
		},
	})
}

// GetCase handles GET /api/case/*corno. COR numbers contain slashes, so the
// route uses a wildcard segment.
func (h *CaseHandler) GetCase(c *gin.Context) {
	corno := strings.TrimPrefix(c.Param("corno"), "/")
	if corno == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "COR number is required",
			},
		})
		return
	}

	caseRecord, err := h.analyticsService.GetCaseByCorNo(c.Request.Context(), corno)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Case not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FETCH_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"case":    caseRecord,
			"verdict": caseRecord.Verdict(),
			"active":  caseRecord.IsActive(),
		},
	})
}

// GetCourts handles GET /api/courts
func (h *CaseHandler) GetCourts(c *gin.Context) {
	courts, err := h.analyticsService.GetCourts(c.Request.Context(), c.Query("district"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FETCH_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"courts": courts},
	})
}

// GlobalStats handles GET /api/stats/global
func (h *CaseHandler) GlobalStats(c *gin.Context) {
	analysisType := c.DefaultQuery("analysis_type", "All Outcomes")

	stats, err := h.analyticsService.GetGlobalStats(c.Request.Context(), analysisType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STATS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// DistrictStats handles GET /api/stats/district/:name
func (h *CaseHandler) DistrictStats(c *gin.Context) {
	stats, err := h.analyticsService.GetDistrictStats(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STATS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// CourtStats handles GET /api/stats/court/:name
func (h *CaseHandler) CourtStats(c *gin.Context) {
	stats, err := h.analyticsService.GetCourtStats(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STATS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// JudgeStats handles GET /api/stats/judge/:name
func (h *CaseHandler) JudgeStats(c *gin.Context) {
	stats, err := h.analyticsService.GetJudgeStats(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STATS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// Upload handles POST /api/upload. Accepts either a multipart file field
// named "file" or a raw JSON body.
func (h *CaseHandler) Upload(c *gin.Context) {
	var payload []byte

	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_FILE",
					"message": err.Error(),
				},
			})
			return
		}
		defer f.Close()
		payload, err = io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_FILE",
					"message": err.Error(),
				},
			})
			return
		}
	} else {
		var err error
		payload, err = io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_REQUEST",
					"message": err.Error(),
				},
			})
			return
		}
	}

	result, err := h.ledgerService.ImportJSON(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"message":  fmt.Sprintf("Successfully loaded %d new records.", result.Count),
			"count":    result.Count,
			"batch_id": result.BatchID,
		},
	})
}
