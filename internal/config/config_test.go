package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("DEFAULT_SCHEDULE_DATE")
	os.Unsetenv("CHAT_REPLY_DELAY_MS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.DefaultScheduleDate != "2026-01-24" {
		t.Errorf("expected default schedule date 2026-01-24, got %s", cfg.DefaultScheduleDate)
	}
	if cfg.ChatReplyDelayMS != 800 {
		t.Errorf("expected default reply delay 800, got %d", cfg.ChatReplyDelayMS)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	os.Setenv("ENV", "production")
	os.Setenv("DEFAULT_SCHEDULE_DATE", "2026-02-01")
	os.Setenv("CHAT_REPLY_DELAY_MS", "0")
	defer func() {
		os.Unsetenv("ENV")
		os.Unsetenv("DEFAULT_SCHEDULE_DATE")
		os.Unsetenv("CHAT_REPLY_DELAY_MS")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("expected env production, got %s", cfg.Env)
	}
	if cfg.ChatReplyDelayMS != 0 {
		t.Errorf("expected reply delay 0, got %d", cfg.ChatReplyDelayMS)
	}

	d, err := cfg.ScheduleDate()
	if err != nil {
		t.Fatalf("ScheduleDate: %v", err)
	}
	want := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("expected schedule date %v, got %v", want, d)
	}
}

func TestLoad_RejectsBadScheduleDate(t *testing.T) {
	os.Setenv("DEFAULT_SCHEDULE_DATE", "24/01/2026")
	defer os.Unsetenv("DEFAULT_SCHEDULE_DATE")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed schedule date")
	}
}

func TestValidate_RejectsUnknownEnv(t *testing.T) {
	c := &Config{Env: "staging", DefaultScheduleDate: "2026-01-24"}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for unknown env")
	}
}

func TestValidate_RejectsNegativeDelay(t *testing.T) {
	c := &Config{Env: "development", DefaultScheduleDate: "2026-01-24", ChatReplyDelayMS: -1}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for negative delay")
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_ChatReplyDelay(t *testing.T) {
	c := &Config{ChatReplyDelayMS: 800}
	if got := c.ChatReplyDelay(); got != 800*time.Millisecond {
		t.Errorf("expected 800ms, got %v", got)
	}
}
