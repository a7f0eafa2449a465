package models

import "time"

// Service-layer inputs and read models. These never hit the database
// directly; gorm tags stay on the persisted structs in models.go.

type RegisterInput struct {
	Email            string
	Password         string
	FirstName        string
	LastName         string
	CountryCode      string
	PhoneNumber      string
	SecurityQuestion string
	SecurityAnswer   string
}

type ApplianceInput struct {
	RoomID             uint
	Name               string
	Quantity           int
	MinPowerRatingWatt float64
	MaxPowerRatingWatt float64
}

// ApplianceUpdate carries partial edits; nil fields are left untouched.
type ApplianceUpdate struct {
	Name               *string
	Quantity           *int
	MinPowerRatingWatt *float64
	MaxPowerRatingWatt *float64
}

type UsageInput struct {
	ApplianceID    uint
	EnergyConsumed float64
	DurationHours  *float64
	Timestamp      time.Time
}

type AlertView struct {
	Level   string `json:"level"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type DashboardStats struct {
	CurrentUsage float64     `json:"current_usage"`
	MonthlyUsage float64     `json:"monthly_usage"`
	Alerts       []AlertView `json:"alerts"`
}

type MonthlyUsage struct {
	Month          string  `json:"month"`
	EnergyConsumed float64 `json:"energy_consumed"`
	Timestamp      string  `json:"timestamp"`
}

type ApplianceReading struct {
	ApplianceName string  `json:"appliance_name"`
	CurrentPower  float64 `json:"current_power"`
	Status        string  `json:"status"`
	Timestamp     string  `json:"timestamp"`
}

type ApplianceUsageView struct {
	ApplianceID        uint    `json:"appliance_id"`
	ApplianceName      string  `json:"appliance_name"`
	Quantity           int     `json:"quantity"`
	MinPowerRatingWatt float64 `json:"min_power_rating_watt"`
	MaxPowerRatingWatt float64 `json:"max_power_rating_watt"`
	CurrentUsage       float64 `json:"current_usage"`
	Status             string  `json:"status"`
}

type RoomUsageView struct {
	RoomID     uint                 `json:"room_id"`
	RoomName   string               `json:"room_name"`
	TotalPower float64              `json:"total_power"`
	Appliances []ApplianceUsageView `json:"appliances"`
}

type Evaluation struct {
	CurrentUsage      float64          `json:"current_usage"`
	WarningThreshold  float64          `json:"warning_threshold"`
	CriticalThreshold float64          `json:"critical_threshold"`
	Alerts            []ThresholdAlert `json:"alerts"`
}
