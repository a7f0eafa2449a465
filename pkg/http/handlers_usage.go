package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"homewatt.xyz/home-energy-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func (rs *RestfulServer) DashboardStats(c *gin.Context) {
	stats, err := rs.Home.Usage.DashboardStats(currentUserID(c), time.Now())
	if err != nil {
		// display robustness over strictness: the dashboard shows zeros
		c.JSON(http.StatusOK, models.DashboardStats{Alerts: []models.AlertView{}})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (rs *RestfulServer) UsageHistory(c *gin.Context) {
	history, err := rs.Home.Usage.UsageHistory(currentUserID(c), time.Now())
	if err != nil {
		c.JSON(http.StatusOK, []models.MonthlyUsage{})
		return
	}
	c.JSON(http.StatusOK, history)
}

func (rs *RestfulServer) RoomUsage(c *gin.Context) {
	usage, err := rs.Home.Usage.RoomUsage(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusOK, []models.RoomUsageView{})
		return
	}
	c.JSON(http.StatusOK, usage)
}

func (rs *RestfulServer) EnergyReadings(c *gin.Context) {
	readings, err := rs.Home.Usage.LatestReadings(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusOK, []models.ApplianceReading{})
		return
	}
	c.JSON(http.StatusOK, readings)
}

type AddUsageLogRequest struct {
	ApplianceID    int       `json:"appliance_id"`
	EnergyConsumed float64   `json:"energy_consumed"`
	DurationHours  float64   `json:"duration_hours"`
	Timestamp      time.Time `json:"timestamp"`
}

var addUsageLogRequestSchema = z.Struct(z.Shape{
	"ApplianceID":    z.Int().Required(),
	"EnergyConsumed": z.Float64().Required(),
	"DurationHours":  z.Float64(),
	"Timestamp":      z.Time(),
})

func (rs *RestfulServer) AddUsageLog(c *gin.Context) {
	var req AddUsageLogRequest
	if err := addUsageLogRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "appliance_id and energy_consumed are required"})
		return
	}

	if req.ApplianceID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "appliance_id and energy_consumed are required"})
		return
	}

	var duration *float64
	if req.DurationHours > 0 {
		duration = &req.DurationHours
	}

	log, err := rs.Home.Usage.LogUsage(currentUserID(c), &models.UsageInput{
		ApplianceID:    uint(req.ApplianceID),
		EnergyConsumed: req.EnergyConsumed,
		DurationHours:  duration,
		Timestamp:      req.Timestamp,
	})
	if err != nil {
		respondResult(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "usage logged",
		"log_id":  log.ID,
	})
}

func (rs *RestfulServer) DeleteUsageLog(c *gin.Context) {
	logID, ok := paramID(c, "log_id")
	if !ok {
		return
	}

	err := rs.Home.Usage.DeleteUsageLog(currentUserID(c), logID)
	respondResult(c, err, "log entry deleted")
}
