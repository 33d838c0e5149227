package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env                 string `mapstructure:"ENV"`
	LogLevel            string `mapstructure:"LOG_LEVEL"`
	DefaultScheduleDate string `mapstructure:"DEFAULT_SCHEDULE_DATE"`
	ChatReplyDelayMS    int    `mapstructure:"CHAT_REPLY_DELAY_MS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEFAULT_SCHEDULE_DATE", "2026-01-24")
	v.SetDefault("CHAT_REPLY_DELAY_MS", 800)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("DEFAULT_SCHEDULE_DATE")
	v.BindEnv("CHAT_REPLY_DELAY_MS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ScheduleDate parses DEFAULT_SCHEDULE_DATE as a UTC calendar day.
func (c *Config) ScheduleDate() (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", c.DefaultScheduleDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("DEFAULT_SCHEDULE_DATE: %w", err)
	}
	return d, nil
}

// ChatReplyDelay returns the configured cosmetic delay before assistant
// replies.
func (c *Config) ChatReplyDelay() time.Duration {
	return time.Duration(c.ChatReplyDelayMS) * time.Millisecond
}

// Validate checks that the configuration is usable before anything is
// wired up with it.
func (c *Config) Validate() error {
	switch c.Env {
	case "development", "production":
	default:
		return fmt.Errorf("ENV must be \"development\" or \"production\", got %q", c.Env)
	}
	if _, err := c.ScheduleDate(); err != nil {
		return err
	}
	if c.ChatReplyDelayMS < 0 {
		return fmt.Errorf("CHAT_REPLY_DELAY_MS must not be negative, got %d", c.ChatReplyDelayMS)
	}
	return nil
}
