package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"homewatt.xyz/home-energy-service/pkg/home/mocks"
	_ "homewatt.xyz/home-energy-service/pkg/testing"

	"homewatt.xyz/home-energy-service/pkg/common"
	"homewatt.xyz/home-energy-service/pkg/db"
	"homewatt.xyz/home-energy-service/pkg/home"
	"homewatt.xyz/home-energy-service/pkg/models"
)

func setupTestServer(t *testing.T) *RestfulServer {
	database, err := db.New(db.UseMemorySqliteDialector())
	require.NoError(t, err)

	homeObj := home.Home{
		Db:          *database,
		ResetTokens: home.NewResetTokenStore(home.DefaultResetTokenTTL),
	}
	homeObj.WithServices(home.ServiceOpts{
		Account:   homeObj.GetIAccount(),
		Topology:  homeObj.GetITopology(),
		Usage:     homeObj.GetIUsage(),
		Alert:     homeObj.GetIAlert(),
		Simulator: homeObj.GetISimulator(),
	})

	rs := &RestfulServer{
		Server: gin.Default(),
		Home:   &homeObj,
		Auth:   NewTokenAuth("test-secret", time.Hour),
		// default we use no limiter, if need, later assign rs.RateLimiterStore = home.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

func doJSON(rs *RestfulServer, method, path string, payload any, cookie string) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}

	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func registerTestUser(t *testing.T, rs *RestfulServer, email string) string {
	w := doJSON(rs, "POST", "/register", gin.H{
		"email":             email,
		"password":          "secret123",
		"first_name":        "Alex",
		"last_name":         "Doe",
		"security_question": "First pet?",
		"security_answer":   "Rex",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie.Value
		}
	}
	t.Fatal("expected session cookie after register")
	return ""
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegisterAndLogin(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	email := uuid.NewString() + "@example.com"

	cookie := registerTestUser(t, rs, email)
	assert.NotEmpty(t, cookie)

	// duplicate email is rejected
	w := doJSON(rs, "POST", "/register", gin.H{
		"email":             email,
		"password":          "other",
		"first_name":        "Alex",
		"last_name":         "Doe",
		"security_question": "First pet?",
		"security_answer":   "Rex",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// login with the right password works
	w = doJSON(rs, "POST", "/login", gin.H{"email": email, "password": "secret123"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// and with the wrong one does not
	w = doJSON(rs, "POST", "/login", gin.H{"email": email, "password": "nope"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApiRequiresAuth(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	w := doJSON(rs, "GET", "/api/rooms", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(rs, "GET", "/api/rooms", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := registerTestUser(t, rs, uuid.NewString()+"@example.com")
	w = doJSON(rs, "GET", "/api/rooms", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoomApplianceUsageLifecycle(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := registerTestUser(t, rs, uuid.NewString()+"@example.com")

	// add a room
	roomName := "Kitchen-" + uuid.NewString()
	w := doJSON(rs, "POST", "/api/add-room", gin.H{"room_name": roomName}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var addRoomResp struct {
		Room RoomView `json:"room"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addRoomResp))
	roomID := addRoomResp.Room.RoomID
	require.NotZero(t, roomID)

	// the same name again is rejected
	w = doJSON(rs, "POST", "/api/add-room", gin.H{"room_name": roomName}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// add an appliance to it
	w = doJSON(rs, "POST", "/api/add-appliance", gin.H{
		"appliance_name":        "Fridge",
		"room_id":               roomID,
		"quantity":              1,
		"min_power_rating_watt": 100,
		"max_power_rating_watt": 200,
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var addApplianceResp struct {
		ApplianceID uint `json:"appliance_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addApplianceResp))
	require.NotZero(t, addApplianceResp.ApplianceID)

	// log usage against it
	w = doJSON(rs, "POST", "/api/add-usage-log", gin.H{
		"appliance_id":    addApplianceResp.ApplianceID,
		"energy_consumed": 2.5,
		"duration_hours":  1.5,
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// the dashboard now reports the usage
	w = doJSON(rs, "GET", "/api/dashboard-stats", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2.5, stats.MonthlyUsage)

	// energy readings show the appliance as active
	w = doJSON(rs, "GET", "/api/energy-readings", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var readings []models.ApplianceReading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &readings))
	require.Len(t, readings, 1)
	assert.Equal(t, "Active", readings[0].Status)

	// deleting the room cascades to appliances and logs
	w = doJSON(rs, "DELETE", fmt.Sprintf("/api/delete-room/%d", roomID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	err := rs.Home.Db.Conn.Model(&models.Appliance{}).Where("room_id = ?", roomID).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestThresholdsAndSimulateAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := registerTestUser(t, rs, uuid.NewString()+"@example.com")

	// defaults come back on the first read
	w := doJSON(rs, "GET", "/api/thresholds", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var thresholds models.ThresholdLevel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &thresholds))
	assert.Equal(t, models.DefaultWarningKwh, thresholds.WarningKwh)

	// lower them so one log crosses the critical line
	w = doJSON(rs, "POST", "/api/update-thresholds", gin.H{"warning_kwh": 1.0, "critical_kwh": 2.0}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, "POST", "/api/add-room", gin.H{"room_name": "Den-" + uuid.NewString()}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var addRoomResp struct {
		Room RoomView `json:"room"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addRoomResp))

	w = doJSON(rs, "POST", "/api/add-appliance", gin.H{
		"appliance_name":        "Heater",
		"room_id":               addRoomResp.Room.RoomID,
		"max_power_rating_watt": 1500,
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var addApplianceResp struct {
		ApplianceID uint `json:"appliance_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addApplianceResp))

	w = doJSON(rs, "POST", "/api/add-usage-log", gin.H{
		"appliance_id":    addApplianceResp.ApplianceID,
		"energy_consumed": 5.0,
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "POST", "/api/simulate-alerts", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var evalResp struct {
		CurrentUsage float64                 `json:"current_usage"`
		Alerts       []models.ThresholdAlert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &evalResp))
	assert.Equal(t, 5.0, evalResp.CurrentUsage)
	require.Len(t, evalResp.Alerts, 1)
	assert.Equal(t, models.AlertLevelCritical, evalResp.Alerts[0].Level)

	// the alert widget picks it up
	w = doJSON(rs, "GET", "/api/alerts", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []AlertEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "danger", entries[0].Type)
	assert.Equal(t, "Energy usage reached Critical level (5 kWh)", entries[0].Message)
}

func TestSimulateData(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := registerTestUser(t, rs, uuid.NewString()+"@example.com")

	// without a room the simulator refuses
	w := doJSON(rs, "POST", "/api/simulate-data", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, "POST", "/api/add-room", gin.H{"room_name": "Loft-" + uuid.NewString()}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var addRoomResp struct {
		Room RoomView `json:"room"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addRoomResp))

	w = doJSON(rs, "POST", "/api/add-appliance", gin.H{
		"appliance_name":        "TV",
		"room_id":               addRoomResp.Room.RoomID,
		"max_power_rating_watt": 120,
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "POST", "/api/simulate-data", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var simResp struct {
		LogCount int `json:"log_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &simResp))
	assert.Equal(t, 21, simResp.LogCount) // 1 appliance x 7 days x 3 bands
}

func TestPasswordResetFlowOverHTTP(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	email := uuid.NewString() + "@example.com"
	registerTestUser(t, rs, email)

	w := doJSON(rs, "POST", "/forgot-password", gin.H{"email": email}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var forgotResp struct {
		SecurityQuestion string `json:"security_question"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &forgotResp))
	assert.Equal(t, "First pet?", forgotResp.SecurityQuestion)

	// wrong answer is rejected
	w = doJSON(rs, "POST", "/verify-security", gin.H{"email": email, "security_answer": "Milo"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, "POST", "/verify-security", gin.H{"email": email, "security_answer": "Rex"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var verifyResp struct {
		ResetToken string `json:"reset_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verifyResp))
	require.NotEmpty(t, verifyResp.ResetToken)

	// mismatched confirmation is rejected before the token is spent
	w = doJSON(rs, "POST", "/reset-password", gin.H{
		"reset_token":      verifyResp.ResetToken,
		"new_password":     "brandnew1",
		"confirm_password": "different",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, "POST", "/reset-password", gin.H{
		"reset_token":      verifyResp.ResetToken,
		"new_password":     "brandnew1",
		"confirm_password": "brandnew1",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, "POST", "/login", gin.H{"email": email, "password": "brandnew1"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "POST", "/login", gin.H{"email": email, "password": "secret123"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardStatsDegradesOnError(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := registerTestUser(t, rs, uuid.NewString()+"@example.com")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIUsage := mocks.NewMockIUsage(ctrl)
	rs.Home.Usage = mockIUsage
	mockIUsage.EXPECT().
		DashboardStats(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	w := doJSON(rs, "GET", "/api/dashboard-stats", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 0.0, stats.CurrentUsage)
	assert.Len(t, stats.Alerts, 0)
}

func setupTestServerWithLimiter(t *testing.T, limiter *home.RateLimiterStore) *RestfulServer {
	rs := setupTestServer(t)
	rs.RateLimiterStore = limiter
	return rs
}

func TestLoginWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(t, home.NewRateLimiterStore(1, 2))
	email := uuid.NewString() + "@example.com"

	// burst of 2 allowed from the same client IP, then throttled
	w := doJSON(rs, "POST", "/login", gin.H{"email": email, "password": "x"}, "")
	assert.NotEqual(t, http.StatusTooManyRequests, w.Code)

	w = doJSON(rs, "POST", "/login", gin.H{"email": email, "password": "x"}, "")
	assert.NotEqual(t, http.StatusTooManyRequests, w.Code)

	w = doJSON(rs, "POST", "/login", gin.H{"email": email, "password": "x"}, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
