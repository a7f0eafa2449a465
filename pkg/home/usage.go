package home

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"homewatt.xyz/home-energy-service/pkg/common"
	"homewatt.xyz/home-energy-service/pkg/models"
)

const timestampLayout = "2006-01-02 15:04:05"

func dayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// userApplianceIDs lists the ids of every appliance the user owns
// transitively via rooms.
func userApplianceIDs(conn *gorm.DB, userID uint) ([]uint, error) {
	var ids []uint
	err := conn.Model(&models.Appliance{}).
		Joins("JOIN rooms ON rooms.id = appliances.room_id").
		Where("rooms.user_id = ?", userID).
		Pluck("appliances.id", &ids).Error
	return ids, err
}

// sumEnergy totals energy_consumed over [from, to]; rows are never null
// valued here, COALESCE covers the empty window.
func sumEnergy(conn *gorm.DB, applianceIDs []uint, from, to time.Time) (float64, error) {
	if len(applianceIDs) == 0 {
		return 0, nil
	}
	var total float64
	err := conn.Model(&models.UsageLog{}).
		Select("COALESCE(SUM(energy_consumed), 0)").
		Where("appliance_id IN ? AND timestamp >= ? AND timestamp <= ?", applianceIDs, from, to).
		Scan(&total).Error
	return total, err
}

func latestLog(conn *gorm.DB, applianceID uint) (*models.UsageLog, error) {
	var log models.UsageLog
	err := conn.
		Where("appliance_id = ?", applianceID).
		Order("timestamp desc").
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (h *Home) logUsage(userID uint, input *models.UsageInput) (*models.UsageLog, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryUsage),
	)

	if input.EnergyConsumed <= 0 {
		return nil, validationErr("energy_consumed must be positive")
	}

	appliance, err := h.getAppliance(userID, input.ApplianceID)
	if err != nil {
		return nil, err
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	log := models.UsageLog{
		ApplianceID:    appliance.ID,
		EnergyConsumed: input.EnergyConsumed,
		DurationHours:  input.DurationHours,
		Timestamp:      timestamp,
	}
	if err := h.Db.Conn.Create(&log).Error; err != nil {
		return nil, err
	}

	logger.Info("Usage logged", zap.Uint("user_id", userID), zap.Reflect("log", log))

	return &log, nil
}

func (h *Home) deleteUsageLog(userID, logID uint) error {
	var log models.UsageLog
	err := h.Db.Conn.
		Select("usage_logs.*").
		Joins("JOIN appliances ON appliances.id = usage_logs.appliance_id").
		Joins("JOIN rooms ON rooms.id = appliances.room_id").
		Where("usage_logs.id = ? AND rooms.user_id = ?", logID, userID).
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return h.Db.Conn.Delete(&log).Error
}

func (h *Home) dashboardStats(userID uint, now time.Time) (*models.DashboardStats, error) {
	applianceIDs, err := userApplianceIDs(h.Db.Conn, userID)
	if err != nil {
		return nil, err
	}

	daily, err := sumEnergy(h.Db.Conn, applianceIDs, dayStart(now), now)
	if err != nil {
		return nil, err
	}

	monthly, err := sumEnergy(h.Db.Conn, applianceIDs, monthStart(now), now)
	if err != nil {
		return nil, err
	}

	alerts, err := h.userAlerts(userID, 0)
	if err != nil {
		return nil, err
	}

	views := common.Mapper(alerts, func(alert models.ThresholdAlert) models.AlertView {
		return models.AlertView{
			Level:   string(alert.Level),
			Date:    alert.AlertDate.Format("2006-01-02"),
			Message: "Energy usage exceeded " + string(alert.Level) + " threshold",
		}
	})

	return &models.DashboardStats{
		CurrentUsage: round2(daily),
		MonthlyUsage: round2(monthly),
		Alerts:       views,
	}, nil
}

// usageHistory reports one entry per calendar month from January to now's
// month of the current year; months with no logs appear with zero.
func (h *Home) usageHistory(userID uint, now time.Time) ([]models.MonthlyUsage, error) {
	applianceIDs, err := userApplianceIDs(h.Db.Conn, userID)
	if err != nil {
		return nil, err
	}

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	var logs []models.UsageLog
	if len(applianceIDs) > 0 {
		err = h.Db.Conn.
			Where("appliance_id IN ? AND timestamp >= ? AND timestamp <= ?", applianceIDs, yearStart, now).
			Order("timestamp asc").
			Find(&logs).Error
		if err != nil {
			return nil, err
		}
	}

	byMonth := common.Reducer(logs, func(acc map[time.Month]float64, log models.UsageLog) map[time.Month]float64 {
		acc[log.Timestamp.Month()] += log.EnergyConsumed
		return acc
	}, map[time.Month]float64{})

	history := make([]models.MonthlyUsage, 0, int(now.Month()))
	for month := time.January; month <= now.Month(); month++ {
		first := time.Date(now.Year(), month, 1, 0, 0, 0, 0, now.Location())
		history = append(history, models.MonthlyUsage{
			Month:          first.Format("Jan 2006"),
			EnergyConsumed: round2(byMonth[month]),
			Timestamp:      first.Format(timestampLayout),
		})
	}
	return history, nil
}

func (h *Home) applianceUsageView(appliance models.Appliance) (models.ApplianceUsageView, error) {
	view := models.ApplianceUsageView{
		ApplianceID:        appliance.ID,
		ApplianceName:      appliance.Name,
		Quantity:           appliance.Quantity,
		MinPowerRatingWatt: appliance.MinPowerRatingWatt,
		MaxPowerRatingWatt: appliance.MaxPowerRatingWatt,
		Status:             "Inactive",
	}

	latest, err := latestLog(h.Db.Conn, appliance.ID)
	if err != nil {
		return view, err
	}
	if latest != nil {
		view.Status = "Active"
		view.CurrentUsage = latest.EnergyConsumed
	}
	return view, nil
}

func (h *Home) roomUsage(userID uint) ([]models.RoomUsageView, error) {
	rooms, err := h.listRooms(userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.RoomUsageView, 0, len(rooms))
	for _, room := range rooms {
		var appliances []models.Appliance
		err := h.Db.Conn.Where("room_id = ?", room.ID).Order("id asc").Find(&appliances).Error
		if err != nil {
			return nil, err
		}

		// capacity estimate from ratings, not a ledger-based figure
		totalPower := common.Reducer(appliances, func(acc float64, a models.Appliance) float64 {
			quantity := a.Quantity
			if quantity < 1 {
				quantity = 1
			}
			return acc + (a.MinPowerRatingWatt+a.MaxPowerRatingWatt)/2*float64(quantity)
		}, 0.0)

		views := make([]models.ApplianceUsageView, 0, len(appliances))
		for _, appliance := range appliances {
			view, err := h.applianceUsageView(appliance)
			if err != nil {
				return nil, err
			}
			views = append(views, view)
		}

		result = append(result, models.RoomUsageView{
			RoomID:     room.ID,
			RoomName:   room.Name,
			TotalPower: totalPower,
			Appliances: views,
		})
	}
	return result, nil
}

func (h *Home) latestReadings(userID uint) ([]models.ApplianceReading, error) {
	var appliances []models.Appliance
	err := h.Db.Conn.
		Select("appliances.*").
		Joins("JOIN rooms ON rooms.id = appliances.room_id").
		Where("rooms.user_id = ?", userID).
		Order("appliances.id asc").
		Find(&appliances).Error
	if err != nil {
		return nil, err
	}

	readings := make([]models.ApplianceReading, 0, len(appliances))
	for _, appliance := range appliances {
		reading := models.ApplianceReading{
			ApplianceName: appliance.Name,
			Status:        "Inactive",
			Timestamp:     "N/A",
		}

		latest, err := latestLog(h.Db.Conn, appliance.ID)
		if err != nil {
			return nil, err
		}
		if latest != nil {
			reading.Status = "Active"
			reading.CurrentPower = latest.EnergyConsumed
			reading.Timestamp = latest.Timestamp.Format(timestampLayout)
		}
		readings = append(readings, reading)
	}
	return readings, nil
}

type IUsageImpl struct {
	home *Home
}

func (iu *IUsageImpl) LogUsage(userID uint, input *models.UsageInput) (*models.UsageLog, error) {
	return iu.home.logUsage(userID, input)
}

func (iu *IUsageImpl) DeleteUsageLog(userID, logID uint) error {
	return iu.home.deleteUsageLog(userID, logID)
}

func (iu *IUsageImpl) DashboardStats(userID uint, now time.Time) (*models.DashboardStats, error) {
	return iu.home.dashboardStats(userID, now)
}

func (iu *IUsageImpl) UsageHistory(userID uint, now time.Time) ([]models.MonthlyUsage, error) {
	return iu.home.usageHistory(userID, now)
}

func (iu *IUsageImpl) RoomUsage(userID uint) ([]models.RoomUsageView, error) {
	return iu.home.roomUsage(userID)
}

func (iu *IUsageImpl) LatestReadings(userID uint) ([]models.ApplianceReading, error) {
	return iu.home.latestReadings(userID)
}

func (h *Home) GetIUsage() IUsage {
	return &IUsageImpl{home: h}
}
