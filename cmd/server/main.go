package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"homewatt.xyz/home-energy-service/pkg/common"
	"homewatt.xyz/home-energy-service/pkg/db"
	"homewatt.xyz/home-energy-service/pkg/home"
	homeHttp "homewatt.xyz/home-energy-service/pkg/http"
)

const sessionTTL = 24 * time.Hour

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	homeDbType := os.Getenv(common.EnvKeyHomeDBType)
	switch homeDbType {
	case "file":
		dbInstance, err = db.New(db.UseSqliteDialector())
	case "memory":
		dbInstance, err = db.New(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown HOME_DB_TYPE: " + homeDbType)
	}
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHomeHttpHostPort))

	jwtSecret := os.Getenv(common.EnvKeyHomeJwtSecret)
	if jwtSecret == "" {
		log.Fatal("HOME_JWT_SECRET not set in .env")
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyHomeDefaultRate), 64); err != nil {
		log.Fatal("Invalid HOME_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyHomeDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid HOME_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	homeCore := home.Home{
		Db:          *dbInstance,
		ResetTokens: home.NewResetTokenStore(home.DefaultResetTokenTTL),
	}
	homeCore.WithServices(home.ServiceOpts{
		Account:   homeCore.GetIAccount(),
		Topology:  homeCore.GetITopology(),
		Usage:     homeCore.GetIUsage(),
		Alert:     homeCore.GetIAlert(),
		Simulator: homeCore.GetISimulator(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &homeHttp.RestfulServer{
		Server:           gin.Default(),
		Home:             &homeCore,
		Auth:             homeHttp.NewTokenAuth(jwtSecret, sessionTTL),
		RateLimiterStore: home.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
