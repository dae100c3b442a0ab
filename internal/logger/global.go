package logger

import (
	"os"
	"strings"
)

var (
	// Global logger instance
	globalLogger *Logger
)

func init() {
	globalLogger = NewDefault()
	configureFromEnv()
}

// configureFromEnv configures the global logger from environment variables
func configureFromEnv() {
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if level := ParseLevel(levelStr); level != -1 {
			globalLogger.SetLevel(level)
		}
	}

	if formatStr := os.Getenv("LOG_FORMAT"); formatStr != "" {
		if format := ParseFormat(formatStr); format != -1 {
			globalLogger.SetFormat(format)
		}
	}
}

// ParseLevel parses a log level string, returning -1 when unknown
func ParseLevel(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return -1
	}
}

// ParseFormat parses a log format string, returning -1 when unknown
func ParseFormat(format string) LogFormat {
	switch strings.ToLower(format) {
	case "json":
		return JSONFormat
	case "text":
		return TextFormat
	default:
		return -1
	}
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	return globalLogger
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	globalLogger = logger
}

// Debug logs a debug message using the global logger
func Debug(message string, fields ...map[string]interface{}) {
	globalLogger.Debug(message, fields...)
}

// Info logs an info message using the global logger
func Info(message string, fields ...map[string]interface{}) {
	globalLogger.Info(message, fields...)
}

// Warn logs a warning message using the global logger
func Warn(message string, fields ...map[string]interface{}) {
	globalLogger.Warn(message, fields...)
}

// Error logs an error message using the global logger
func Error(message string, err error, fields ...map[string]interface{}) {
	globalLogger.Error(message, err, fields...)
}

// Fatal logs a fatal message using the global logger and exits
func Fatal(message string, err error, fields ...map[string]interface{}) {
	globalLogger.Fatal(message, err, fields...)
}
