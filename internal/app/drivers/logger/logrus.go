package logger

import (
	"os"

	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the sandbox access logger.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("sandbox_access.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.Info("Failed to log to file, using default stderr")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{})
	}
	return logger
}
