package home

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"homewatt.xyz/home-energy-service/pkg/common"
	"homewatt.xyz/home-energy-service/pkg/models"
	_ "homewatt.xyz/home-energy-service/pkg/testing"
)

func countAlerts(t *testing.T, h *Home, userID uint) int64 {
	var count int64
	err := h.Db.Conn.Model(&models.ThresholdAlert{}).Where("user_id = ?", userID).Count(&count).Error
	require.NoError(t, err)
	return count
}

func TestThresholdDefaultsPersisted(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, homeObj, _ := GetMockHomeWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	user := seedUser(t, homeObj)

	thresholds, err := homeObj.Alert.GetThresholds(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultWarningKwh, thresholds.WarningKwh)
	assert.Equal(t, models.DefaultCriticalKwh, thresholds.CriticalKwh)

	// the defaults were written, not just computed
	var count int64
	err = homeObj.Db.Conn.Model(&models.ThresholdLevel{}).Where("user_id = ?", user.ID).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpdateThresholds(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, homeObj, _ := GetMockHomeWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	user := seedUser(t, homeObj)

	err := homeObj.Alert.UpdateThresholds(user.ID, 20, 25)
	require.NoError(t, err)

	thresholds, err := homeObj.Alert.GetThresholds(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, thresholds.WarningKwh)
	assert.Equal(t, 25.0, thresholds.CriticalKwh)

	err = homeObj.Alert.UpdateThresholds(user.ID, -1, 25)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEvaluateBelowWarning(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, homeObj, _ := GetMockHomeWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	user := seedUser(t, homeObj)
	_, appliance := seedRoomWithAppliance(t, homeObj, user.ID)

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	seedUsageLog(t, homeObj, appliance.ID, 5.0, now.Add(-time.Hour))

	evaluation, err := homeObj.Alert.EvaluateThresholds(user.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 5.0, evaluation.CurrentUsage)
	assert.Len(t, evaluation.Alerts, 0)
	assert.Equal(t, int64(0), countAlerts(t, homeObj, user.ID))
}

func TestEvaluateCriticalSkipsWarning(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, homeObj, _ := GetMockHomeWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	user := seedUser(t, homeObj)
	_, appliance := seedRoomWithAppliance(t, homeObj, user.ID)

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	seedUsageLog(t, homeObj, appliance.ID, 40.0, now.Add(-time.Hour))

	evaluation, err := homeObj.Alert.EvaluateThresholds(user.ID, now)
	require.NoError(t, err)
	require.Len(t, evaluation.Alerts, 1)
	assert.Equal(t, models.AlertLevelCritical, evaluation.Alerts[0].Level)
	assert.Equal(t, 40.0, evaluation.Alerts[0].CurrentKwh)

	// crossing the critical line produces a single Critical row, no Warning
	assert.Equal(t, int64(1), countAlerts(t, homeObj, user.ID))
}

func TestEvaluateIdempotentWithinMonth(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, homeObj, _ := GetMockHomeWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	user := seedUser(t, homeObj)
	_, appliance := seedRoomWithAppliance(t, homeObj, user.ID)

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	seedUsageLog(t, homeObj, appliance.ID, 32.0, now.Add(-2*time.Hour))

	_, err := homeObj.Alert.EvaluateThresholds(user.ID, now)
	require.NoError(t, err)
	_, err = homeObj.Alert.EvaluateThresholds(user.ID, now.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, int64(1), countAlerts(t, homeObj, user.ID))
}

func TestEvaluateWarningEscalatesToCritical(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, homeObj, _ := GetMockHomeWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	user := seedUser(t, homeObj)
	_, appliance := seedRoomWithAppliance(t, homeObj, user.ID)

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	seedUsageLog(t, homeObj, appliance.ID, 31.0, now.Add(-3*time.Hour))

	evaluation, err := homeObj.Alert.EvaluateThresholds(user.ID, now)
	require.NoError(t, err)
	require.Len(t, evaluation.Alerts, 1)
	assert.Equal(t, models.AlertLevelWarning, evaluation.Alerts[0].Level)

	// more usage tips the same month over the critical line
	seedUsageLog(t, homeObj, appliance.ID, 10.0, now.Add(-time.Hour))

	evaluation, err = homeObj.Alert.EvaluateThresholds(user.ID, now.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, evaluation.Alerts, 1)
	assert.Equal(t, models.AlertLevelCritical, evaluation.Alerts[0].Level)

	// the earlier Warning row was replaced, not accumulated
	assert.Equal(t, int64(1), countAlerts(t, homeObj, user.ID))

	alerts, err := homeObj.Alert.UserAlerts(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertLevelCritical, alerts[0].Level)
}

func TestEvaluateLogs(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	ctrl, homeObj, _ := GetMockHomeWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	user := seedUser(t, homeObj)
	_, appliance := seedRoomWithAppliance(t, homeObj, user.ID)

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	seedUsageLog(t, homeObj, appliance.ID, 50.0, now.Add(-time.Hour))

	_, err := homeObj.Alert.EvaluateThresholds(user.ID, now)
	require.NoError(t, err)

	foundSaved := false
	for _, entry := range ParseLogs(&buf) {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if m["msg"] == "Alert saved" {
			foundSaved = true
			assert.Equal(t, common.LoggerNameHomeCore, m["logger"])
			assert.Equal(t, common.LoggerCategoryAlert, m[common.LoggerFieldHomeCategory])
		}
	}
	assert.True(t, foundSaved)
}
