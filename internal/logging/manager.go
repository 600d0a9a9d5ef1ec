package logging

import (
	"fmt"

	"github.com/rishav-del/ai-career-path-simulator/internal/config"
)

// Global logger instance
var globalLogger *MultiLogger

// InitializeLogging initializes the global logging system from configuration
func InitializeLogging(cfg *config.Config) error {
	logger := NewMultiLogger()
	logger.SetLevel(ParseLogLevel(cfg.Logging.Level))

	if len(cfg.Logging.Adapters) == 0 {
		if err := logger.AddAdapter(NewStdoutAdapter("stdout", cfg.Logging.Format)); err != nil {
			return err
		}
		globalLogger = logger
		return nil
	}

	for _, ac := range cfg.Logging.Adapters {
		if !ac.Enabled {
			continue
		}

		adapter, err := createAdapter(ac.Name, ac.Type, cfg.Logging.Format, ac.Options)
		if err != nil {
			return fmt.Errorf("failed to create adapter %s: %w", ac.Name, err)
		}

		if err := logger.AddAdapter(adapter); err != nil {
			return fmt.Errorf("failed to add adapter %s: %w", ac.Name, err)
		}
	}

	globalLogger = logger
	return nil
}

func createAdapter(name, adapterType, defaultFormat string, options map[string]interface{}) (LogAdapter, error) {
	format := defaultFormat
	if f, ok := options["format"].(string); ok && f != "" {
		format = f
	}

	switch adapterType {
	case "stdout", "console":
		return NewStdoutAdapter(name, format), nil
	case "file":
		path, _ := options["path"].(string)
		if path == "" {
			path = "logs/server.log"
		}
		return NewFileAdapter(name, format, path)
	default:
		return nil, fmt.Errorf("unsupported adapter type: %s", adapterType)
	}
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	if globalLogger == nil {
		logger := NewMultiLogger()
		logger.AddAdapter(NewStdoutAdapter("fallback_stdout", "json"))
		globalLogger = logger
	}
	return globalLogger
}

// CloseLogging closes the global logging system
func CloseLogging() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}

// LogWithRequestID creates a logger with request ID context
func LogWithRequestID(requestID string) Logger {
	return GetGlobalLogger().WithField("request_id", requestID)
}
