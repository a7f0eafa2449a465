package home

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"homewatt.xyz/home-energy-service/pkg/db"
	"homewatt.xyz/home-energy-service/pkg/home/mocks"
	"homewatt.xyz/home-energy-service/pkg/models"
)

type UseMocks struct {
	Account   bool
	Topology  bool
	Usage     bool
	Alert     bool
	Simulator bool
}

type HomeMocks struct {
	Account   *mocks.MockIAccount
	Topology  *mocks.MockITopology
	Usage     *mocks.MockIUsage
	Alert     *mocks.MockIAlert
	Simulator *mocks.MockISimulator
}

func GetMockHomeWithMemorySqliteDialector(t *testing.T, use UseMocks) (
	*gomock.Controller,
	*Home,
	*HomeMocks,
) {
	ctrl := gomock.NewController(t)

	homeMocks := &HomeMocks{
		Account:   mocks.NewMockIAccount(ctrl),
		Topology:  mocks.NewMockITopology(ctrl),
		Usage:     mocks.NewMockIUsage(ctrl),
		Alert:     mocks.NewMockIAlert(ctrl),
		Simulator: mocks.NewMockISimulator(ctrl),
	}

	dbInstance, err := db.New(db.UseMemorySqliteDialector())
	require.NoError(t, err)

	homeInstance := &Home{
		Db:          *dbInstance,
		ResetTokens: NewResetTokenStore(DefaultResetTokenTTL),
	}

	accountService := homeInstance.GetIAccount()
	if use.Account {
		accountService = homeMocks.Account
	}

	topologyService := homeInstance.GetITopology()
	if use.Topology {
		topologyService = homeMocks.Topology
	}

	usageService := homeInstance.GetIUsage()
	if use.Usage {
		usageService = homeMocks.Usage
	}

	alertService := homeInstance.GetIAlert()
	if use.Alert {
		alertService = homeMocks.Alert
	}

	simulatorService := homeInstance.GetISimulator()
	if use.Simulator {
		simulatorService = homeMocks.Simulator
	}

	homeInstance.WithServices(ServiceOpts{
		Account:   accountService,
		Topology:  topologyService,
		Usage:     usageService,
		Alert:     alertService,
		Simulator: simulatorService,
	})

	return ctrl, homeInstance, homeMocks
}

// the memory sqlite db is shared within the process, so every test works
// with its own uuid-suffixed user
func seedUser(t *testing.T, h *Home) *models.User {
	user, err := h.Account.Register(&models.RegisterInput{
		Email:            fmt.Sprintf("%s@example.com", uuid.NewString()),
		Password:         "hunter2hunter2",
		FirstName:        "Test",
		LastName:         "User",
		SecurityQuestion: "favorite color?",
		SecurityAnswer:   "blue",
	})
	require.NoError(t, err)
	return user
}

func seedRoomWithAppliance(t *testing.T, h *Home, userID uint) (*models.Room, *models.Appliance) {
	room, err := h.Topology.CreateRoom(userID, "Room-"+uuid.NewString())
	require.NoError(t, err)

	appliance, err := h.Topology.CreateAppliance(userID, &models.ApplianceInput{
		RoomID:             room.ID,
		Name:               "Fridge",
		Quantity:           1,
		MinPowerRatingWatt: 100,
		MaxPowerRatingWatt: 200,
	})
	require.NoError(t, err)

	return room, appliance
}

func seedUsageLog(t *testing.T, h *Home, applianceID uint, energy float64, timestamp time.Time) *models.UsageLog {
	log := &models.UsageLog{
		ApplianceID:    applianceID,
		EnergyConsumed: energy,
		Timestamp:      timestamp,
	}
	require.NoError(t, h.Db.Conn.Create(log).Error)
	return log
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
