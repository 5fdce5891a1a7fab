// SPDX-License-Identifier: MIT
//
// File: logger.go
// Role: New constructs the shared *zap.SugaredLogger.

package obslog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production-configured *zap.SugaredLogger at the given
// level ("debug", "info", "warn", "error"). An empty level defaults to
// "info".
func New(level string) (*zap.SugaredLogger, error) {
	if level == "" {
		level = "info"
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("obslog: invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("obslog: building logger: %w", err)
	}
	return logger.Sugar(), nil
}
