package home

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"homewatt.xyz/home-energy-service/pkg/common"
	"homewatt.xyz/home-energy-service/pkg/models"
)

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

type usageBand struct {
	minFactor float64
	maxFactor float64
	hourFrom  int
	hourTo    int
	duration  float64
}

// Morning/afternoon/evening bands scaled by each appliance's max rating,
// mirroring typical household load shape.
var usageBands = []usageBand{
	{minFactor: 0.5, maxFactor: 1.5, hourFrom: 7, hourTo: 9, duration: 2.0},
	{minFactor: 0.3, maxFactor: 0.8, hourFrom: 12, hourTo: 14, duration: 2.0},
	{minFactor: 0.7, maxFactor: 2.0, hourFrom: 18, hourTo: 22, duration: 4.0},
}

func uniform(min, max float64) float64 {
	return min + rnd.Float64()*(max-min)
}

// simulateUsage populates the trailing 7-day window with three banded
// random readings per appliance per day and reports how many rows were
// written. Demo data only.
func (h *Home) simulateUsage(userID uint, now time.Time) (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategorySimulator),
	)

	rooms, err := h.listRooms(userID)
	if err != nil {
		return 0, err
	}
	if len(rooms) == 0 {
		return 0, validationErr("please add at least one room first")
	}

	count := 0
	err = h.Db.Conn.Transaction(func(tx *gorm.DB) error {
		for _, room := range rooms {
			var appliances []models.Appliance
			if err := tx.Where("room_id = ?", room.ID).Find(&appliances).Error; err != nil {
				return err
			}

			for _, appliance := range appliances {
				for day := 0; day < 7; day++ {
					date := now.AddDate(0, 0, -day)

					for _, band := range usageBands {
						energy := uniform(band.minFactor, band.maxFactor) * appliance.MaxPowerRatingWatt / 1000
						timestamp := time.Date(
							date.Year(), date.Month(), date.Day(),
							band.hourFrom+rnd.Intn(band.hourTo-band.hourFrom+1),
							rnd.Intn(60), 0, 0, date.Location(),
						)

						duration := band.duration
						log := models.UsageLog{
							ApplianceID:    appliance.ID,
							EnergyConsumed: energy,
							DurationHours:  &duration,
							Timestamp:      timestamp,
						}
						if err := tx.Create(&log).Error; err != nil {
							return err
						}
						count++
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Simulated usage generated", zap.Uint("user_id", userID), zap.Int("log_count", count))

	return count, nil
}

type ISimulatorImpl struct {
	home *Home
}

func (is *ISimulatorImpl) SimulateUsage(userID uint, now time.Time) (int, error) {
	return is.home.simulateUsage(userID, now)
}

func (h *Home) GetISimulator() ISimulator {
	return &ISimulatorImpl{home: h}
}
