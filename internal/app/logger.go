package app

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/flameshq/flames/config"
)

// newLogger builds the process logger. With file output enabled, a rotated
// json sink is tee'd with the console core.
func newLogger(cfg config.LogConfig, debug bool) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	if debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	// stdout carries command output
	zapConfig.OutputPaths = []string{"stderr"}

	if !cfg.FileEnable {
		return zapConfig.Build(zap.AddCaller())
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    64,
		MaxBackups: 7,
		MaxAge:     7,
		Compress:   false,
	}
	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(lumberJackLogger),
			zapConfig.Level,
		),
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(os.Stderr),
			zapConfig.Level,
		),
	)
	return zap.New(core, zap.AddCaller()), nil
}
