package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"homewatt.xyz/home-energy-service/pkg/common"
	"homewatt.xyz/home-energy-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type AlertEntry struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Alerts returns the ten most recent alerts in the shape the dashboard
// alert widget consumes.
func (rs *RestfulServer) Alerts(c *gin.Context) {
	alerts, err := rs.Home.Alert.UserAlerts(currentUserID(c), 10)
	if err != nil {
		c.JSON(http.StatusOK, []AlertEntry{})
		return
	}

	c.JSON(http.StatusOK, common.Mapper(alerts, func(alert models.ThresholdAlert) AlertEntry {
		entryType := "danger"
		if alert.Level == models.AlertLevelWarning {
			entryType = "warning"
		}
		return AlertEntry{
			Type:      entryType,
			Message:   fmt.Sprintf("Energy usage reached %s level (%g kWh)", alert.Level, alert.CurrentKwh),
			Timestamp: alert.AlertDate.Format("2006-01-02 15:04:05"),
		}
	}))
}

func (rs *RestfulServer) GetThresholds(c *gin.Context) {
	thresholds, err := rs.Home.Alert.GetThresholds(currentUserID(c))
	if err != nil {
		respondResult(c, err, "")
		return
	}
	c.JSON(http.StatusOK, thresholds)
}

type UpdateThresholdsRequest struct {
	WarningKwh  float64 `json:"warning_kwh"`
	CriticalKwh float64 `json:"critical_kwh"`
}

var updateThresholdsRequestSchema = z.Struct(z.Shape{
	"WarningKwh":  z.Float64().Required(),
	"CriticalKwh": z.Float64().Required(),
})

func (rs *RestfulServer) UpdateThresholds(c *gin.Context) {
	var req UpdateThresholdsRequest
	if err := updateThresholdsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "warning_kwh and critical_kwh are required"})
		return
	}

	err := rs.Home.Alert.UpdateThresholds(currentUserID(c), req.WarningKwh, req.CriticalKwh)
	respondResult(c, err, "thresholds updated")
}

func (rs *RestfulServer) SimulateData(c *gin.Context) {
	userID := currentUserID(c)

	if !rs.CheckLimiter(fmt.Sprintf("user:%d", userID)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	count, err := rs.Home.Simulator.SimulateUsage(userID, time.Now())
	if err != nil {
		respondResult(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "simulation data generated successfully",
		"log_count": count,
	})
}

func (rs *RestfulServer) SimulateAlerts(c *gin.Context) {
	userID := currentUserID(c)

	if !rs.CheckLimiter(fmt.Sprintf("user:%d", userID)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	evaluation, err := rs.Home.Alert.EvaluateThresholds(userID, time.Now())
	if err != nil {
		respondResult(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"message":            fmt.Sprintf("generated %d alerts", len(evaluation.Alerts)),
		"current_usage":      evaluation.CurrentUsage,
		"warning_threshold":  evaluation.WarningThreshold,
		"critical_threshold": evaluation.CriticalThreshold,
		"alerts":             evaluation.Alerts,
	})
}
