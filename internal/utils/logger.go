package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelEnvironmentVariable selects the logger level, for example "debug".
const LogLevelEnvironmentVariable = "PTREE_LOG_LEVEL"

const invalidLogLevelFormat = "invalid log level %q: %w"

// NewApplicationLogger constructs a zap logger configured for human-readable console output.
// An empty levelName keeps the production default of info.
func NewApplicationLogger(levelName string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if trimmedLevel := strings.TrimSpace(levelName); trimmedLevel != "" {
		parsedLevel, parseError := zapcore.ParseLevel(trimmedLevel)
		if parseError != nil {
			return nil, fmt.Errorf(invalidLogLevelFormat, levelName, parseError)
		}
		config.Level = zap.NewAtomicLevelAt(parsedLevel)
	}
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.LevelKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	return config.Build()
}
