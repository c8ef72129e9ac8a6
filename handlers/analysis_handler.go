package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/224saisrikanth/Judment-analysis/analysis"
)

// AnalysisHandler handles HTTP requests for analysis documents
type AnalysisHandler struct {
	loader *analysis.Loader
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(loader *analysis.Loader) *AnalysisHandler {
	return &AnalysisHandler{loader: loader}
}

// ListAnalyses handles GET /api/analyses
func (h *AnalysisHandler) ListAnalyses(c *gin.Context) {
	list, err := h.loader.List(c.Request.Context())
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

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    list,
	})
}

// GetAnalysis handles GET /api/analysis/:slug
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	detail, err := h.loader.Detail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, analysis.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Analysis not found",
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
		"data":    detail,
	})
}
