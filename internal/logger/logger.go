// Package logger builds the application's zap logger
package logger

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"mdl/internal/config"
)

// InitLogger initializes the logger. With log.filename set, JSON lines go to a
// rotating file; otherwise console lines go to stderr so they stay out of the
// interactive output on stdout.
func InitLogger(cfg *config.Config, stderr io.Writer) (*zap.Logger, error) {
	level := logLevel(cfg.Log.Level)

	if cfg.Log.Filename == "" {
		encoding := zap.NewDevelopmentEncoderConfig()
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoding), zapcore.AddSync(stderr), level)
		return zap.New(core), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.Filename), 0755); err != nil {
		return nil, err
	}
	rotating := &lumberjack.Logger{
		Filename:   cfg.Log.Filename,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}

	encoding := zap.NewProductionEncoderConfig()
	encoding.TimeKey = "time"
	encoding.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoding), zapcore.AddSync(rotating), level)
	return zap.New(core, zap.AddCaller()), nil
}

// logLevel maps a configured level name onto zap, falling back to warn
func logLevel(name string) zapcore.Level {
	if name == "" {
		return zapcore.WarnLevel
	}
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}
