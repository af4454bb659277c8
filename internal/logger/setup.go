package logger

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// AddFlags registers the persistent logging flags on cmd.
func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", string(InfoLevel), "Log level (debug, info, warn, error, disabled)")
	cmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	cmd.PersistentFlags().Bool("log-source", false, "Include caller file and line in logs")
}

// SetupLogger builds a stderr logger from the given flag values.
func SetupLogger(logLevel string, logJSON, logSource bool) Logger {
	return NewLogger(flagConfig(logLevel, logJSON, logSource))
}

// flagConfig maps flag values onto a Config. Unknown levels fall back to info.
func flagConfig(logLevel string, logJSON, logSource bool) *Config {
	level := LogLevel(logLevel)
	switch level {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel, DisabledLevel:
	default:
		level = InfoLevel
	}
	return &Config{
		Level:      level,
		Output:     os.Stderr,
		JSON:       logJSON,
		AddSource:  logSource,
		TimeFormat: "15:04:05",
	}
}

// GetLoggerConfig reads the logging flags registered by AddFlags.
func GetLoggerConfig(cmd *cobra.Command) (string, bool, bool, error) {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return "", false, false, fmt.Errorf("failed to get log-level flag: %w", err)
	}

	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return "", false, false, fmt.Errorf("failed to get log-json flag: %w", err)
	}

	logSource, err := cmd.Flags().GetBool("log-source")
	if err != nil {
		return "", false, false, fmt.Errorf("failed to get log-source flag: %w", err)
	}

	return logLevel, logJSON, logSource, nil
}
