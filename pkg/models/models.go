package models

import "time"

type AlertLevel string

const (
	AlertLevelWarning  AlertLevel = "Warning"
	AlertLevelCritical AlertLevel = "Critical"
)

// Fallback thresholds persisted on first evaluation when a user has
// not configured their own.
const (
	DefaultWarningKwh  float64 = 30
	DefaultCriticalKwh float64 = 35
)

type User struct {
	ID                 uint   `gorm:"primaryKey" json:"user_id"`
	FirstName          string `gorm:"size:50" json:"first_name"`
	LastName           string `gorm:"size:50" json:"last_name"`
	Email              string `gorm:"size:120;uniqueIndex" json:"email"`
	PasswordHash       string `gorm:"size:100" json:"-"`
	CountryCode        string `gorm:"size:10" json:"country_code,omitempty"`
	PhoneNumber        string `gorm:"size:20" json:"phone_number,omitempty"`
	SecurityQuestion   string `gorm:"size:200" json:"-"`
	SecurityAnswerHash string `gorm:"size:100" json:"-"`

	Rooms           []Room           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ThresholdLevels []ThresholdLevel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ThresholdAlerts []ThresholdAlert `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type Room struct {
	ID     uint   `gorm:"primaryKey" json:"room_id"`
	Name   string `gorm:"size:50" json:"room_name"`
	UserID uint   `gorm:"index" json:"-"`

	Appliances []Appliance `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
}

type Appliance struct {
	ID                 uint    `gorm:"primaryKey" json:"appliance_id"`
	Name               string  `gorm:"size:50" json:"appliance_name"`
	Quantity           int     `gorm:"default:1" json:"quantity"`
	MinPowerRatingWatt float64 `gorm:"default:0" json:"min_power_rating_watt"`
	MaxPowerRatingWatt float64 `json:"max_power_rating_watt"`
	RoomID             uint    `gorm:"index" json:"-"`

	UsageLogs []UsageLog `gorm:"foreignKey:ApplianceID;constraint:OnDelete:CASCADE" json:"-"`
}

// UsageLog rows are immutable after creation except for deletion.
type UsageLog struct {
	ID             uint      `gorm:"primaryKey" json:"log_id"`
	ApplianceID    uint      `gorm:"index" json:"appliance_id"`
	EnergyConsumed float64   `json:"energy_consumed"`
	DurationHours  *float64  `json:"duration_hours,omitempty"`
	Timestamp      time.Time `gorm:"index" json:"timestamp"`
}

type ThresholdLevel struct {
	ID          uint    `gorm:"primaryKey" json:"level_id"`
	UserID      uint    `gorm:"index" json:"-"`
	WarningKwh  float64 `json:"warning_kwh"`
	CriticalKwh float64 `json:"critical_kwh"`
}

type ThresholdAlert struct {
	ID         uint       `gorm:"primaryKey" json:"alert_id"`
	UserID     uint       `gorm:"index" json:"-"`
	Level      AlertLevel `gorm:"type:varchar(20);check:level IN ('Warning','Critical')" json:"level"`
	AlertDate  time.Time  `json:"alert_date"`
	CurrentKwh float64    `json:"current_kwh"`
}
