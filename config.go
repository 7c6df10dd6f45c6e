package stdagent

import (
	"fmt"
	"strings"
)

const (
	// LogFormatConsole writes human-readable diagnostic lines.
	LogFormatConsole = "console"
	// LogFormatJSON writes one JSON object per diagnostic line.
	LogFormatJSON = "json"
)

// Config describes how an agent process reports diagnostics.
type Config struct {
	LogLevel  string `json:"log_level,omitempty"  mapstructure:"log_level"`
	LogFormat string `json:"log_format,omitempty" mapstructure:"log_format"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: LogFormatConsole,
	}
}

// Validate reports unknown log formats.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "", LogFormatConsole, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
}
