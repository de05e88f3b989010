package logger

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// New builds a JSON production logger at the given level ("debug", "info", ...).
func New(service, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.With(zap.String("service", service)), nil
}

// Gorm adapts a zap logger for GORM. Slow queries and errors are logged at warn.
func Gorm(l *zap.Logger) logger.Interface {
	std, err := zap.NewStdLogAt(l.Named("gorm"), zap.WarnLevel)
	if err != nil {
		std = zap.NewStdLog(l.Named("gorm"))
	}
	return logger.New(std, logger.Config{
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
