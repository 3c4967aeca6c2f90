package logger

import (
	"io"
	"os"

	"brm-service/internal/app/config"
	"brm-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the package level logrus logger used for process
// lifecycle messages.
func InitLogger(internalConfig *config.InternalConfig) {
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logrus.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("logrus.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logrus.SetOutput(io.MultiWriter(os.Stderr, file))
		} else {
			logrus.Info("Failed to log to file, using default stderr")
		}
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// NewCLILogger writes diagnostics to stderr so command output on stdout stays
// machine readable.
func NewCLILogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
