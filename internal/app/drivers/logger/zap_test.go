package logger

import (
	"testing"

	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	t.Run("Level From Config", func(t *testing.T) {
		driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "warn"}}
		internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

		log, err := NewZapLogger(driverConfig, internalConfig)
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zap.InfoLevel))
		assert.True(t, log.Core().Enabled(zap.WarnLevel))
	})

	t.Run("Unknown Level Falls Back To Info", func(t *testing.T) {
		driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "verbose"}}
		internalConfig := &config.InternalConfig{}

		log, err := NewZapLogger(driverConfig, internalConfig)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zap.InfoLevel))
		assert.False(t, log.Core().Enabled(zap.DebugLevel))
	})
}
