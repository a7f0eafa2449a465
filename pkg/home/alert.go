package home

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"homewatt.xyz/home-energy-service/pkg/common"
	"homewatt.xyz/home-energy-service/pkg/models"
)

func (h *Home) getThresholds(userID uint) (*models.ThresholdLevel, error) {
	return getOrCreateThresholds(h.Db.Conn, userID)
}

// getOrCreateThresholds reads the singleton row via first-match; if the
// user has none yet, the defaults are persisted and returned.
func getOrCreateThresholds(conn *gorm.DB, userID uint) (*models.ThresholdLevel, error) {
	var thresholds models.ThresholdLevel
	err := conn.First(&thresholds, "user_id = ?", userID).Error
	if err == nil {
		return &thresholds, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	thresholds = models.ThresholdLevel{
		UserID:      userID,
		WarningKwh:  models.DefaultWarningKwh,
		CriticalKwh: models.DefaultCriticalKwh,
	}
	if err := conn.Create(&thresholds).Error; err != nil {
		return nil, err
	}
	return &thresholds, nil
}

func (h *Home) updateThresholds(userID uint, warningKwh, criticalKwh float64) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryAlert),
	)

	if warningKwh <= 0 || criticalKwh <= 0 {
		return validationErr("thresholds must be positive")
	}

	var thresholds models.ThresholdLevel
	err := h.Db.Conn.First(&thresholds, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		thresholds = models.ThresholdLevel{
			UserID:      userID,
			WarningKwh:  warningKwh,
			CriticalKwh: criticalKwh,
		}
		err = h.Db.Conn.Create(&thresholds).Error
	} else if err == nil {
		err = h.Db.Conn.Model(&thresholds).Updates(map[string]any{
			"warning_kwh":  warningKwh,
			"critical_kwh": criticalKwh,
		}).Error
	}
	if err != nil {
		return err
	}

	logger.Info("Thresholds updated", zap.Uint("user_id", userID), zap.Reflect("thresholds", thresholds))

	return nil
}

// evaluateThresholds sums the current billing window and writes at most one
// alert row for the run. Critical wins over Warning; on Critical any
// in-window Warning row is removed too, so a month carries at most one
// alert row. The whole run is one transaction: a failing step leaves prior
// alert state untouched.
func (h *Home) evaluateThresholds(userID uint, now time.Time) (*models.Evaluation, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryAlert),
	)

	windowStart := monthStart(now)
	var evaluation models.Evaluation

	err := h.Db.Conn.Transaction(func(tx *gorm.DB) error {
		applianceIDs, err := userApplianceIDs(tx, userID)
		if err != nil {
			return err
		}

		total, err := sumEnergy(tx, applianceIDs, windowStart, now)
		if err != nil {
			return err
		}

		thresholds, err := getOrCreateThresholds(tx, userID)
		if err != nil {
			return err
		}

		evaluation = models.Evaluation{
			CurrentUsage:      round2(total),
			WarningThreshold:  thresholds.WarningKwh,
			CriticalThreshold: thresholds.CriticalKwh,
			Alerts:            []models.ThresholdAlert{},
		}

		var level models.AlertLevel
		replaceLevels := []models.AlertLevel{}

		switch {
		case total >= thresholds.CriticalKwh:
			level = models.AlertLevelCritical
			replaceLevels = []models.AlertLevel{models.AlertLevelWarning, models.AlertLevelCritical}
		case total >= thresholds.WarningKwh:
			level = models.AlertLevelWarning
			replaceLevels = []models.AlertLevel{models.AlertLevelWarning}
		default:
			return nil
		}

		err = tx.Where(
			"user_id = ? AND level IN ? AND alert_date >= ? AND alert_date <= ?",
			userID, replaceLevels, windowStart, now,
		).Delete(&models.ThresholdAlert{}).Error
		if err != nil {
			return err
		}

		alert := models.ThresholdAlert{
			UserID:     userID,
			Level:      level,
			AlertDate:  now,
			CurrentKwh: round2(total),
		}

		logger.Info("Alert found", zap.Reflect("alert", alert))

		if err := tx.Create(&alert).Error; err != nil {
			return err
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))

		evaluation.Alerts = append(evaluation.Alerts, alert)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &evaluation, nil
}

func (h *Home) userAlerts(userID uint, limit int) ([]models.ThresholdAlert, error) {
	var alerts []models.ThresholdAlert
	query := h.Db.Conn.
		Where("user_id = ?", userID).
		Order("alert_date desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&alerts).Error
	return alerts, err
}

type IAlertImpl struct {
	home *Home
}

func (ia *IAlertImpl) GetThresholds(userID uint) (*models.ThresholdLevel, error) {
	return ia.home.getThresholds(userID)
}

func (ia *IAlertImpl) UpdateThresholds(userID uint, warningKwh, criticalKwh float64) error {
	return ia.home.updateThresholds(userID, warningKwh, criticalKwh)
}

func (ia *IAlertImpl) EvaluateThresholds(userID uint, now time.Time) (*models.Evaluation, error) {
	return ia.home.evaluateThresholds(userID, now)
}

func (ia *IAlertImpl) UserAlerts(userID uint, limit int) ([]models.ThresholdAlert, error) {
	return ia.home.userAlerts(userID, limit)
}

func (h *Home) GetIAlert() IAlert {
	return &IAlertImpl{home: h}
}
