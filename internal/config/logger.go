package config

import (
	"fmt"

	"github.com/HerbHall/salesdesk/internal/version"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Values accepted for logging.format.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

func (c LoggingConfig) level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return lvl, fmt.Errorf("logging.level: %w", err)
	}
	return lvl, nil
}

func (c LoggingConfig) validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.Format {
	case LogFormatJSON, LogFormatConsole, "":
		return nil
	}
	return fmt.Errorf("logging.format: %q must be %q or %q", c.Format, LogFormatJSON, LogFormatConsole)
}

// NewLogger builds the process logger from the logging section. Every entry
// carries the service name and build version. opts apply after the built-in
// options, so callers can replace the core.
func NewLogger(c LoggingConfig, opts ...zap.Option) (*zap.Logger, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	lvl, _ := c.level()

	var zc zap.Config
	if c.Format == LogFormatConsole {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "time"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zc.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(
		zap.String("service", "salesdesk"),
		zap.String("version", version.Short()),
	), nil
}
