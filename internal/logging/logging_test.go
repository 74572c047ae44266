package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToWarn(t *testing.T) {
	logger, cleanup, err := New(config.LogConfig{Level: "nonsense"})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bank.log")

	logger, cleanup, err := New(config.LogConfig{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	logger.WithField("account", "AC001").Debug("transaction recorded")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"account":"AC001"`)
	assert.Contains(t, string(data), `"msg":"transaction recorded"`)
}
