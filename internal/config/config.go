package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sandeepkv93/noozes/internal/model"
)

type RuntimeConfig struct {
	DefaultMode          string `env:"NOOZES_DEFAULT_MODE"`
	DefaultTime          string `env:"NOOZES_DEFAULT_TIME"`
	ClockFormat          string `env:"NOOZES_CLOCK_FORMAT"`
	DesktopNotifications bool   `env:"NOOZES_DESKTOP_NOTIFICATIONS"`
	ShareURL             string `env:"NOOZES_SHARE_URL"`
	Host                 string `env:"NOOZES_HOST"`
	Port                 int    `env:"NOOZES_PORT"`
	LogLevel             string `env:"NOOZES_LOG_LEVEL"`
	LogFormat            string `env:"NOOZES_LOG_FORMAT"`
	LogFile              string `env:"NOOZES_LOG_FILE"`
	AlarmBuffer          int    `env:"NOOZES_ALARM_BUFFER"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DefaultMode:          string(model.ModeWakeup),
		DefaultTime:          "07:00",
		ClockFormat:          string(model.Clock12h),
		DesktopNotifications: false,
		Host:                 "0.0.0.0",
		Port:                 8080,
		LogLevel:             "info",
		LogFormat:            "text",
		AlarmBuffer:          8,
	}
}

// RuntimeConfigFromEnv overlays NOOZES_* variables on base. Unset variables
// keep the base value.
func RuntimeConfigFromEnv(base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	if err := env.Parse(&cfg); err != nil {
		return base, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.DefaultMode = strings.ToLower(strings.TrimSpace(cfg.DefaultMode))
	cfg.ClockFormat = strings.ToLower(strings.TrimSpace(cfg.ClockFormat))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	return cfg, nil
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables that are already set, then parses and validates.
func Load(envFile string) (RuntimeConfig, error) {
	if path := strings.TrimSpace(envFile); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return RuntimeConfig{}, fmt.Errorf("config: load %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return RuntimeConfig{}, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}
	cfg, err := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if err != nil {
		return RuntimeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

func (c RuntimeConfig) Validate() error {
	if _, err := model.ParseMode(c.DefaultMode); err != nil {
		return fmt.Errorf("config: NOOZES_DEFAULT_MODE: %w", err)
	}
	if _, _, err := model.ParseTimeOfDay(c.DefaultTime); err != nil {
		return fmt.Errorf("config: NOOZES_DEFAULT_TIME: %w", err)
	}
	if _, err := model.ParseClockFormat(c.ClockFormat); err != nil {
		return fmt.Errorf("config: NOOZES_CLOCK_FORMAT: %w", err)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: NOOZES_PORT out of range: %d", c.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: NOOZES_LOG_LEVEL unknown: %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: NOOZES_LOG_FORMAT unknown: %q", c.LogFormat)
	}
	if c.AlarmBuffer <= 0 {
		return fmt.Errorf("config: NOOZES_ALARM_BUFFER must be > 0, got %d", c.AlarmBuffer)
	}
	return nil
}

// Mode is the validated default mode; it falls back to wakeup.
func (c RuntimeConfig) Mode() model.Mode {
	m, err := model.ParseMode(c.DefaultMode)
	if err != nil {
		return model.ModeWakeup
	}
	return m
}

func (c RuntimeConfig) Clock() model.ClockFormat {
	f, err := model.ParseClockFormat(c.ClockFormat)
	if err != nil {
		return model.Clock12h
	}
	return f
}

func (c RuntimeConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
