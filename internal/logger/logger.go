package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global logger with the given log level.
// Entries at error level and above are also appended to errorLogPath,
// which is rotated by size. An empty errorLogPath disables the file.
func Initialize(level string, errorLogPath string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(lvl)),
	}

	if errorLogPath != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   errorLogPath,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     90, // days
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(fileWriter),
			zap.NewAtomicLevelAt(zapcore.ErrorLevel),
		))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	Log = logger.Sugar()
	return nil
}
