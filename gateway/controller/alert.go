package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/airpulse-io/airpulse/routing"
)

const defaultAlertLimit = 50

// ListAlerts returns the most recent persisted alerts, optionally filtered
// by ?area= and capped by ?limit=.
func (ctrl *Controller) ListAlerts(c *gin.Context) {
	area := c.Query("area")
	if area != "" {
		area = routing.NormalizeSegment(area)
	}

	limit := defaultAlertLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	records, err := ctrl.Repository.AlertRecordRepo.List(c.Request.Context(), area, limit)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(c.Request.Context(), err, "Error listing alerts, area=%q", area)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list alerts"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetLatestAlertByArea returns the most recent persisted alert for one area.
func (ctrl *Controller) GetLatestAlertByArea(c *gin.Context) {
	area := routing.NormalizeSegment(c.Param("area"))

	record, err := ctrl.Repository.AlertRecordRepo.LatestByArea(c.Request.Context(), area)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no alerts for area"})
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(c.Request.Context(), err, "Error fetching latest alert for area %s", area)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch alert"})
		return
	}

	c.JSON(http.StatusOK, record)
}
