package stdagent

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// AgentField is the log field holding the agent name.
const AgentField = "agent"

// NewLogger builds the diagnostics logger for one agent. Every line is
// tagged with the agent name: as a "[name]" message prefix in console
// format, or as the agent field in JSON format.
func NewLogger(w io.Writer, agentName string, cfg Config) (zerolog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return zerolog.Nop(), err
	}

	level := zerolog.InfoLevel

	if s := strings.TrimSpace(cfg.LogLevel); s != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(s))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
		}

		level = parsed
	}

	out := w
	if !strings.EqualFold(strings.TrimSpace(cfg.LogFormat), LogFormatJSON) {
		out = zerolog.ConsoleWriter{
			Out:           w,
			NoColor:       true,
			TimeFormat:    time.RFC3339,
			FieldsExclude: []string{AgentField},
			FormatMessage: func(i any) string {
				if i == nil {
					return "[" + agentName + "]"
				}

				return fmt.Sprintf("[%s] %v", agentName, i)
			},
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str(AgentField, agentName).
		Logger(), nil
}
