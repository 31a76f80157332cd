package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tcayer/quire/internal/config"
)

// buildLogger turns the log config into a zap logger. Without a file
// the logger is a nop; stderr belongs to the terminal UI.
func buildLogger(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("log file %s: %w", cfg.File, err)
	}
	return logger, nil
}
