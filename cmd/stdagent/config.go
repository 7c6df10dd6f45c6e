package main

import (
	"fmt"
	"strings"

	"github.com/metalagman/stdagent"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix     = "STDAGENT"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// loadConfig merges the persistent flags with STDAGENT_* environment variables.
// Changed flags win over the environment.
func loadConfig(cmd *cobra.Command) (stdagent.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := stdagent.DefaultConfig()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)

	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("log_level", flags.Lookup(flagLogLevel)); err != nil {
		return def, fmt.Errorf("bind %s: %w", flagLogLevel, err)
	}

	if err := v.BindPFlag("log_format", flags.Lookup(flagLogFormat)); err != nil {
		return def, fmt.Errorf("bind %s: %w", flagLogFormat, err)
	}

	var cfg stdagent.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return def, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
