package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	// Dir holds the choreography files. Empty means the embedded defaults.
	Dir      string
	Tick     time.Duration
	LogLevel slog.Level
}

// loadConfig layers flags over CHOREO_* env vars over .choreo.yaml over
// defaults.
func loadConfig(cmd *cobra.Command) (*config, error) {
	v := viper.New()
	v.SetDefault("dir", "")
	v.SetDefault("tick", "16ms")
	v.SetDefault("log_level", "info")
	v.SetConfigName(".choreo") // .yaml is implicit
	v.SetEnvPrefix("CHOREO")
	v.AutomaticEnv()

	if override := os.Getenv("CHOREO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}

	tick := v.GetDuration("tick")
	if tick <= 0 {
		return nil, fmt.Errorf("tick must be > 0, got %q", v.GetString("tick"))
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}

	return &config{
		Dir:      v.GetString("dir"),
		Tick:     tick,
		LogLevel: level,
	}, nil
}

// bindFlags maps config keys to their kebab-case flags.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range map[string]string{"dir": "dir", "tick": "tick", "log_level": "log-level"} {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *config) logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
