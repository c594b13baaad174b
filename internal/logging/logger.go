// Package logging provides zap logger helpers.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/LaurenceW01/harris-county-fws-scraper/internal/config"
)

// New builds a zap.Logger from the logging config. Development mode gets
// colored console output; production mode gets JSON. When a log file is
// configured, output additionally goes to a size-rotated file.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.TimeKey = "ts"
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.DisableStacktrace = false
		zcfg.EncoderConfig.TimeKey = "ts"
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	if cfg.File == "" {
		return logger, nil
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	// File output is always JSON with plain level names; color codes
	// belong on terminals only.
	fileEncoderCfg := zcfg.EncoderConfig
	fileEncoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(fileEncoderCfg),
		zapcore.AddSync(rotator),
		zcfg.Level,
	)
	return logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	})), nil
}
