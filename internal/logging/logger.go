package logging

import (
	"fmt"
	"io"
	"langtrainer/internal/config"

	"github.com/sirupsen/logrus"
)

// New builds a logrus logger writing to out from the log section of the config.
func New(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()

	logger.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)

	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger, nil
}
