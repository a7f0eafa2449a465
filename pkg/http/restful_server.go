package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"homewatt.xyz/home-energy-service/pkg/home"
)

const ctxKeyUserID = "user_id"

type RestfulServer struct {
	Server           *gin.Engine
	Home             *home.Home
	Auth             *TokenAuth
	RateLimiterStore *home.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(key string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(key)
	}
}

func (rs *RestfulServer) CheckLimiter(key string) bool {
	limiter := rs.GetLimiter(key)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.POST("/register", rs.Register)
	rs.Server.POST("/login", rs.Login)
	rs.Server.POST("/logout", rs.Logout)
	rs.Server.POST("/forgot-password", rs.ForgotPassword)
	rs.Server.POST("/verify-security", rs.VerifySecurity)
	rs.Server.POST("/reset-password", rs.ResetPassword)

	api := rs.Server.Group("/api", rs.RequireAuth)
	{
		api.GET("/dashboard-stats", rs.DashboardStats)
		api.GET("/usage-history", rs.UsageHistory)
		api.GET("/energy-readings", rs.EnergyReadings)
		api.GET("/alerts", rs.Alerts)

		api.GET("/rooms", rs.ListRooms)
		api.POST("/add-room", rs.AddRoom)
		api.GET("/room-usage", rs.RoomUsage)
		api.GET("/room-usage/:room_id", rs.GetRoom)
		api.POST("/edit-room/:room_id", rs.EditRoom)
		api.DELETE("/delete-room/:room_id", rs.DeleteRoom)

		api.GET("/appliance/:appliance_id", rs.GetAppliance)
		api.POST("/add-appliance", rs.AddAppliance)
		api.POST("/edit-appliance/:appliance_id", rs.EditAppliance)
		api.DELETE("/delete-appliance/:appliance_id", rs.DeleteAppliance)

		api.POST("/add-usage-log", rs.AddUsageLog)
		api.DELETE("/delete-usage-log/:log_id", rs.DeleteUsageLog)

		api.GET("/thresholds", rs.GetThresholds)
		api.POST("/update-thresholds", rs.UpdateThresholds)

		api.POST("/simulate-data", rs.SimulateData)
		api.POST("/simulate-alerts", rs.SimulateAlerts)
	}
}

// RequireAuth parses the session cookie and stores the authenticated user
// id in the request context; handlers never consult ambient session state.
func (rs *RestfulServer) RequireAuth(c *gin.Context) {
	tokenString, err := c.Cookie(SessionCookieName)
	if err != nil || tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	userID, err := rs.Auth.Parse(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	c.Set(ctxKeyUserID, userID)
	c.Next()
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(ctxKeyUserID)
}

func (rs *RestfulServer) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(rs.Auth.TTL().Seconds())
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", false, true)
}

func (rs *RestfulServer) clearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// respondResult maps service errors to the mutating-endpoint envelope:
// validation 400, not-found/not-owned 404, everything else 500.
func respondResult(c *gin.Context, err error, okMessage string) {
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": okMessage})
		return
	}

	status := http.StatusInternalServerError
	if errors.Is(err, home.ErrValidation) {
		status = http.StatusBadRequest
	} else if errors.Is(err, home.ErrNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"success": false, "message": err.Error()})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
