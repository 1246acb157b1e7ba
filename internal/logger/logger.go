// Package logger provides the process-wide structured logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

// Init initializes the global sugared logger at the given level. When a
// logFile is supplied output goes there instead of stderr; the interactive
// dashboard relies on this to keep log lines off the terminal it draws on.
func Init(level, logFile string) error {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	if logFile != "" {
		cfg.OutputPaths = []string{logFile}
		cfg.ErrorOutputPaths = []string{logFile}
	}

	z, err := cfg.Build()
	if err != nil {
		return err
	}
	log = z.Sugar()
	return nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// L returns the global sugared logger, initializing it at info level if
// Init has not been called.
func L() *zap.SugaredLogger {
	if log == nil {
		_ = Init("info", "")
	}
	return log
}
