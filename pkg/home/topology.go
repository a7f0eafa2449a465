package home

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"homewatt.xyz/home-energy-service/pkg/common"
	"homewatt.xyz/home-energy-service/pkg/models"
)

func (h *Home) createRoom(userID uint, name string) (*models.Room, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryTopology),
	)

	if name == "" {
		return nil, validationErr("room name is required")
	}

	// unique-per-user enforced at write time, not by constraint
	var existing models.Room
	err := h.Db.Conn.First(&existing, "user_id = ? AND name = ?", userID, name).Error
	if err == nil {
		return nil, validationErr("a room with this name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room := models.Room{
		Name:   name,
		UserID: userID,
	}
	if err := h.Db.Conn.Create(&room).Error; err != nil {
		return nil, err
	}

	logger.Info("Room created", zap.Uint("user_id", userID), zap.Reflect("room", room))

	return &room, nil
}

func (h *Home) listRooms(userID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := h.Db.Conn.Where("user_id = ?", userID).Order("id asc").Find(&rooms).Error
	return rooms, err
}

func (h *Home) getRoom(userID, roomID uint) (*models.Room, error) {
	var room models.Room
	err := h.Db.Conn.First(&room, "id = ? AND user_id = ?", roomID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (h *Home) renameRoom(userID, roomID uint, name string) error {
	if name == "" {
		return validationErr("room name is required")
	}

	room, err := h.getRoom(userID, roomID)
	if err != nil {
		return err
	}

	return h.Db.Conn.Model(room).Update("name", name).Error
}

// deleteRoom removes the room, its appliances and their usage logs,
// children first, inside one transaction.
func (h *Home) deleteRoom(userID, roomID uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryTopology),
	)

	err := h.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		err := tx.First(&room, "id = ? AND user_id = ?", roomID, userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var applianceIDs []uint
		err = tx.Model(&models.Appliance{}).Where("room_id = ?", room.ID).Pluck("id", &applianceIDs).Error
		if err != nil {
			return err
		}

		if len(applianceIDs) > 0 {
			if err := tx.Where("appliance_id IN ?", applianceIDs).Delete(&models.UsageLog{}).Error; err != nil {
				return err
			}
			if err := tx.Where("room_id = ?", room.ID).Delete(&models.Appliance{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&room).Error
	})
	if err != nil {
		return err
	}

	logger.Info("Room deleted", zap.Uint("user_id", userID), zap.Uint("room_id", roomID))

	return nil
}

func (h *Home) createAppliance(userID uint, input *models.ApplianceInput) (*models.Appliance, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryTopology),
	)

	if input.Name == "" || input.RoomID == 0 || input.MaxPowerRatingWatt == 0 {
		return nil, validationErr("missing required fields")
	}

	if _, err := h.getRoom(userID, input.RoomID); err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	appliance := models.Appliance{
		Name:               input.Name,
		Quantity:           quantity,
		MinPowerRatingWatt: input.MinPowerRatingWatt,
		MaxPowerRatingWatt: input.MaxPowerRatingWatt,
		RoomID:             input.RoomID,
	}
	if err := h.Db.Conn.Create(&appliance).Error; err != nil {
		return nil, err
	}

	logger.Info("Appliance created", zap.Uint("user_id", userID), zap.Reflect("appliance", appliance))

	return &appliance, nil
}

func (h *Home) getAppliance(userID, applianceID uint) (*models.Appliance, error) {
	var appliance models.Appliance
	err := h.Db.Conn.
		Select("appliances.*").
		Joins("JOIN rooms ON rooms.id = appliances.room_id").
		Where("appliances.id = ? AND rooms.user_id = ?", applianceID, userID).
		First(&appliance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appliance, nil
}

func (h *Home) updateAppliance(userID, applianceID uint, input *models.ApplianceUpdate) error {
	appliance, err := h.getAppliance(userID, applianceID)
	if err != nil {
		return err
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Quantity != nil {
		updates["quantity"] = *input.Quantity
	}
	if input.MinPowerRatingWatt != nil {
		updates["min_power_rating_watt"] = *input.MinPowerRatingWatt
	}
	if input.MaxPowerRatingWatt != nil {
		updates["max_power_rating_watt"] = *input.MaxPowerRatingWatt
	}
	if len(updates) == 0 {
		return nil
	}

	return h.Db.Conn.Model(appliance).Updates(updates).Error
}

func (h *Home) deleteAppliance(userID, applianceID uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryTopology),
	)

	appliance, err := h.getAppliance(userID, applianceID)
	if err != nil {
		return err
	}

	err = h.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("appliance_id = ?", appliance.ID).Delete(&models.UsageLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(appliance).Error
	})
	if err != nil {
		return err
	}

	logger.Info("Appliance deleted", zap.Uint("user_id", userID), zap.Uint("appliance_id", applianceID))

	return nil
}

type ITopologyImpl struct {
	home *Home
}

func (it *ITopologyImpl) CreateRoom(userID uint, name string) (*models.Room, error) {
	return it.home.createRoom(userID, name)
}

func (it *ITopologyImpl) ListRooms(userID uint) ([]models.Room, error) {
	return it.home.listRooms(userID)
}

func (it *ITopologyImpl) GetRoom(userID, roomID uint) (*models.Room, error) {
	return it.home.getRoom(userID, roomID)
}

func (it *ITopologyImpl) RenameRoom(userID, roomID uint, name string) error {
	return it.home.renameRoom(userID, roomID, name)
}

func (it *ITopologyImpl) DeleteRoom(userID, roomID uint) error {
	return it.home.deleteRoom(userID, roomID)
}

func (it *ITopologyImpl) CreateAppliance(userID uint, input *models.ApplianceInput) (*models.Appliance, error) {
	return it.home.createAppliance(userID, input)
}

func (it *ITopologyImpl) GetAppliance(userID, applianceID uint) (*models.Appliance, error) {
	return it.home.getAppliance(userID, applianceID)
}

func (it *ITopologyImpl) UpdateAppliance(userID, applianceID uint, input *models.ApplianceUpdate) error {
	return it.home.updateAppliance(userID, applianceID, input)
}

func (it *ITopologyImpl) DeleteAppliance(userID, applianceID uint) error {
	return it.home.deleteAppliance(userID, applianceID)
}

func (h *Home) GetITopology() ITopology {
	return &ITopologyImpl{home: h}
}
