package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Christian123002/Bitcoin-Tracker/config"
	"github.com/Christian123002/Bitcoin-Tracker/logger"
)

func TestNewRejectsInvalidLevel(t *testing.T) {
	_, err := logger.New(config.LogConfig{Level: "loud"})
	require.Error(t, err)
}

func TestNewConsoleLogger(t *testing.T) {
	log, err := logger.New(config.LogConfig{Level: "info", Environment: "dev"})
	require.NoError(t, err)
	log.Info("boot")
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tracker.log")

	log, err := logger.New(config.LogConfig{
		Level:      "debug",
		Format:     "json",
		OutputFile: path,
	})
	require.NoError(t, err)

	log.Info("recorded")
	_ = log.Sync()

	_, err = os.Stat(path)
	require.NoError(t, err, "log file should exist after first write")
}
