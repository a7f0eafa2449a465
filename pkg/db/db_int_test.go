package db

import (
	"os"
	"path/filepath"
	"testing"

	"homewatt.xyz/home-energy-service/pkg/common"
	constant "homewatt.xyz/home-energy-service/pkg/common"
)

func TestWithEnvPath(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(constant.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	testPath := filepath.Join(wd, "test.db")

	originalDBPath, hadOriginal := os.LookupEnv(constant.EnvKeyHomeDbPath)

	if err := os.Setenv(constant.EnvKeyHomeDbPath, testPath); err != nil {
		t.Fatalf("Failed to set HOME_DB_PATH: %v", err)
	}

	defer func() {
		if hadOriginal {
			_ = os.Setenv(constant.EnvKeyHomeDbPath, originalDBPath)
		} else {
			_ = os.Unsetenv(constant.EnvKeyHomeDbPath)
		}
		_ = os.Remove(testPath)
	}()

	instance, err := New(UseSqliteDialector())
	if err != nil {
		t.Fatalf("Expected no error opening database, got: %v", err)
	}
	if instance == nil || instance.Conn == nil {
		t.Fatal("Expected non-nil DB connection")
	}

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}
}
