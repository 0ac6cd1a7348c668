package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("RUNNER_TEST_VALUE", "")
	if got := envOr("RUNNER_TEST_VALUE", "fallback"); got != "fallback" {
		t.Errorf("envOr() = %q, expected fallback", got)
	}

	t.Setenv("RUNNER_TEST_VALUE", "set")
	if got := envOr("RUNNER_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("envOr() = %q, expected set", got)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	flagLogLevel = "DEBUG"
	t.Cleanup(func() { flagLogLevel = "info" })

	path := filepath.Join(t.TempDir(), "logs", "runner.log")
	logger, closer, err := newLogger(path)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, expected debug", logger.GetLevel())
	}

	logger.Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("log file should not be empty")
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })

	if _, _, err := newLogger(""); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoadGameConfigPreset(t *testing.T) {
	t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })

	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := loadGameConfig(); err == nil {
		t.Error("expected error for a missing explicit config")
	}

	flagConfig = ""
	flagDifficulty = "fixed"
	cfg, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() error = %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	flagDifficulty = "impossible"
	if _, err := loadGameConfig(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
