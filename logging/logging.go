package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// levelNames is indexed by log level
var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// LogLevelToString translates a log level enum to a string representation.
// Unknown levels are reported as TRACE.
func LogLevelToString(level int) string {
	if level < TraceLevel || level > FatalLevel {
		return levelNames[TraceLevel]
	}
	return levelNames[level]
}

// ParseLevel translates a case-insensitive level name, as produced by LogLevelToString,
// to a log level enum. "WARNING" is accepted for WarnLevel. Unknown names default to InfoLevel.
func ParseLevel(name string) int {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "WARNING" {
		return WarnLevel
	}
	for level, levelName := range levelNames {
		if name == levelName {
			return level
		}
	}
	return InfoLevel
}

// ToZapLevel translates a log level enum to a zap level. zap has no trace level,
// so TraceLevel maps to debug.
func ToZapLevel(level int) zapcore.Level {
	switch level {
	case TraceLevel, DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// CreateLogger builds a production zap logger which emits messages at or above the given level
func CreateLogger(level int) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(ToZapLevel(level))
	if level <= DebugLevel {
		config.Development = true
	}
	return config.Build()
}
