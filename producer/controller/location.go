package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/airpulse-io/airpulse/entity"
)

// GetMeasurementsByPosition returns measurements for one position, searching
// a single city when ?city= is given and all configured cities otherwise.
func (ctrl *Controller) GetMeasurementsByPosition(c *gin.Context) {
	position := c.Param("position")
	city := c.Query("city")

	var measurements []entity.Measurement
	if city != "" {
		found, err := ctrl.measurementsForCityAndPosition(c, city, position)
		if err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(c.Request.Context(), err, "Error fetching measurements for position %s", position)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch measurements"})
			return
		}
		measurements = found
	} else {
		// Per-city failures are isolated: one city failing must not empty
		// the response for the others.
		for _, configuredCity := range ctrl.Config.EnvConfig.PulseEco.Cities {
			found, err := ctrl.measurementsForCityAndPosition(c, configuredCity, position)
			if err != nil {
				ctrl.Infra.Logger.WarningWithContextf(c.Request.Context(), "Failed to fetch data for city %s: %v", configuredCity, err)
				continue
			}
			measurements = append(measurements, found...)
		}
	}

	c.JSON(http.StatusOK, measurements)
}

// GetMeasurementsByCityAndPosition returns measurements for one city and
// position.
func (ctrl *Controller) GetMeasurementsByCityAndPosition(c *gin.Context) {
	city := c.Param("city")
	position := c.Param("position")

	measurements, err := ctrl.measurementsForCityAndPosition(c, city, position)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(c.Request.Context(), err, "Error fetching measurements for city %s position %s", city, position)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch measurements"})
		return
	}

	c.JSON(http.StatusOK, measurements)
}

// GetPositionsForCity lists the distinct sensor positions currently reporting
// in a city.
func (ctrl *Controller) GetPositionsForCity(c *gin.Context) {
	city := c.Param("city")

	rawList, err := ctrl.currentData(c.Request.Context(), city)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(c.Request.Context(), err, "Error fetching positions for city %s", city)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch positions"})
		return
	}

	seen := make(map[string]bool)
	positions := make([]string, 0, len(rawList))
	for _, raw := range rawList {
		if raw.Position == "" || seen[raw.Position] {
			continue
		}
		seen[raw.Position] = true
		positions = append(positions, raw.Position)
	}

	c.JSON(http.StatusOK, positions)
}

func (ctrl *Controller) measurementsForCityAndPosition(c *gin.Context, city, position string) ([]entity.Measurement, error) {
	rawList, err := ctrl.currentData(c.Request.Context(), city)
	if err != nil {
		return nil, err
	}

	measurements := make([]entity.Measurement, 0)
	for _, raw := range rawList {
		if !strings.EqualFold(raw.Position, position) {
			continue
		}
		measurements = append(measurements, ctrl.Normalizer.Normalize(city, raw))
	}
	return measurements, nil
}
