// loggerconfig.go
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogOutputJSON          = "json"
	LogOutputHumanReadable = "pretty"
)

// BuildLogger creates and returns a new zap logger instance configured for the
// requested level and output format. JSON output is meant for log shipping,
// "pretty" output for reading in a terminal. The function panics if the logger
// cannot be initialized, since no session can be built without one.
func BuildLogger(logLevel LogLevel, logOutputFormat string) Logger {

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogLevel := convertToZapLevel(logLevel)

	if logOutputFormat == LogOutputHumanReadable {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(zapLogLevel),
		Development:       false,
		Encoding:          "json",
		DisableCaller:     true,
		DisableStacktrace: true,
		Sampling:          nil,
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			"stdout",
		},
		ErrorOutputPaths: []string{
			"stderr", // Zap's internal errors only
		},
	}

	if logOutputFormat == LogOutputHumanReadable {
		config.Encoding = "console"
	}

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to build logger: %v", err))
	}

	return &defaultLogger{
		logger:   logger,
		logLevel: logLevel,
	}
}

// convertToZapLevel converts the custom LogLevel to a zapcore.Level
func convertToZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelDebug:
		return zap.DebugLevel
	case LogLevelInfo:
		return zap.InfoLevel
	case LogLevelWarn:
		return zap.WarnLevel
	case LogLevelError:
		return zap.ErrorLevel
	case LogLevelPanic:
		return zap.PanicLevel
	case LogLevelFatal:
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}
