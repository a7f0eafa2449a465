package home

import (
	"errors"
	"fmt"
	"time"

	"homewatt.xyz/home-energy-service/pkg/db"
	"homewatt.xyz/home-energy-service/pkg/models"
)

var (
	// ErrNotFound covers both absent resources and resources owned by
	// another user; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrValidation = errors.New("invalid input")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

type IAccount interface {
	Register(input *models.RegisterInput) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUser(userID uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	SecurityQuestion(email string) (string, error)
	VerifySecurityAnswer(email, answer string) (string, error)
	ResetPassword(token, newPassword string) error
}

type ITopology interface {
	CreateRoom(userID uint, name string) (*models.Room, error)
	ListRooms(userID uint) ([]models.Room, error)
	GetRoom(userID, roomID uint) (*models.Room, error)
	RenameRoom(userID, roomID uint, name string) error
	DeleteRoom(userID, roomID uint) error
	CreateAppliance(userID uint, input *models.ApplianceInput) (*models.Appliance, error)
	GetAppliance(userID, applianceID uint) (*models.Appliance, error)
	UpdateAppliance(userID, applianceID uint, input *models.ApplianceUpdate) error
	DeleteAppliance(userID, applianceID uint) error
}

type IUsage interface {
	LogUsage(userID uint, input *models.UsageInput) (*models.UsageLog, error)
	DeleteUsageLog(userID, logID uint) error
	DashboardStats(userID uint, now time.Time) (*models.DashboardStats, error)
	UsageHistory(userID uint, now time.Time) ([]models.MonthlyUsage, error)
	RoomUsage(userID uint) ([]models.RoomUsageView, error)
	LatestReadings(userID uint) ([]models.ApplianceReading, error)
}

type IAlert interface {
	GetThresholds(userID uint) (*models.ThresholdLevel, error)
	UpdateThresholds(userID uint, warningKwh, criticalKwh float64) error
	EvaluateThresholds(userID uint, now time.Time) (*models.Evaluation, error)
	UserAlerts(userID uint, limit int) ([]models.ThresholdAlert, error)
}

type ISimulator interface {
	SimulateUsage(userID uint, now time.Time) (int, error)
}

type Home struct {
	Db          db.DB
	ResetTokens *ResetTokenStore

	Account   IAccount
	Topology  ITopology
	Usage     IUsage
	Alert     IAlert
	Simulator ISimulator
}

type ServiceOpts struct {
	Account   IAccount
	Topology  ITopology
	Usage     IUsage
	Alert     IAlert
	Simulator ISimulator
}

func (h *Home) WithServices(opts ServiceOpts) *Home {
	if opts.Account != nil {
		h.Account = opts.Account
	}
	if opts.Topology != nil {
		h.Topology = opts.Topology
	}
	if opts.Usage != nil {
		h.Usage = opts.Usage
	}
	if opts.Alert != nil {
		h.Alert = opts.Alert
	}
	if opts.Simulator != nil {
		h.Simulator = opts.Simulator
	}
	return h
}
