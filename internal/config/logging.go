package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logrus logger from cfg.
func SetupLogging(cfg Config) {
	logrus.SetOutput(os.Stdout)
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithField("level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
