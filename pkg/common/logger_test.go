package common

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "homewatt.xyz/home-energy-service/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestNamedLoggerCategory(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLoggerWith(LoggerNameHomeCore, zap.String(LoggerFieldHomeCategory, LoggerCategoryUsage))
	logger.Info("Usage recorded")

	logOutput := buf.String()
	if !strings.Contains(logOutput, LoggerNameHomeCore) {
		t.Errorf("expected log output to carry logger name, got: %s", logOutput)
	}
	if !strings.Contains(logOutput, LoggerCategoryUsage) {
		t.Errorf("expected log output to carry category field, got: %s", logOutput)
	}
}
