package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.OutputDir != "reports" {
		t.Errorf("expected default output dir 'reports', got %q", cfg.OutputDir)
	}
	if cfg.RequestDelayMS != 500 {
		t.Errorf("expected default request delay 500ms, got %d", cfg.RequestDelayMS)
	}
	if cfg.TicketNumber != "" {
		t.Errorf("expected no default ticket number, got %q", cfg.TicketNumber)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "reports" {
		t.Errorf("expected default output dir, got %q", cfg.OutputDir)
	}
	if cfg.RequestDelayMS != 500 {
		t.Errorf("expected default request delay, got %d", cfg.RequestDelayMS)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("LOTTERY_TICKET_NUMBER", "12345")
	t.Setenv("LOTTERY_WEBHOOK_URL", "https://discord.com/api/webhooks/1/abc")
	t.Setenv("LOTTERY_REQUEST_DELAY_MS", "250")
	t.Setenv("LOTTERY_STAKE", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TicketNumber != "12345" {
		t.Errorf("expected ticket number from env, got %q", cfg.TicketNumber)
	}
	if cfg.WebhookURL != "https://discord.com/api/webhooks/1/abc" {
		t.Errorf("expected webhook url from env, got %q", cfg.WebhookURL)
	}
	if cfg.RequestDelayMS != 250 {
		t.Errorf("expected request delay from env, got %d", cfg.RequestDelayMS)
	}
	if cfg.Stake != 12 {
		t.Errorf("expected stake from env, got %v", cfg.Stake)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "ticket_number: \"67890\"\noutput_dir: /tmp/lottery-reports\nmax_consecutive_no_data: 3\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("LOTTERY_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TicketNumber != "67890" {
		t.Errorf("expected ticket number from file, got %q", cfg.TicketNumber)
	}
	if cfg.OutputDir != "/tmp/lottery-reports" {
		t.Errorf("expected output dir from file, got %q", cfg.OutputDir)
	}
	if cfg.MaxConsecutiveNoData != 3 {
		t.Errorf("expected max consecutive no-data from file, got %d", cfg.MaxConsecutiveNoData)
	}
	// Untouched fields keep their defaults.
	if cfg.RequestDelayMS != 500 {
		t.Errorf("expected default request delay, got %d", cfg.RequestDelayMS)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ticket_number: \"67890\"\n"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("LOTTERY_CONFIG", path)
	t.Setenv("LOTTERY_TICKET_NUMBER", "12345")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TicketNumber != "12345" {
		t.Errorf("expected env to win over file, got %q", cfg.TicketNumber)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("LOTTERY_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestRequestDelay(t *testing.T) {
	cfg := &Config{RequestDelayMS: 250}
	if got := cfg.RequestDelay(); got != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", got)
	}

	cfg = &Config{RequestDelayMS: -1}
	if cfg.RequestDelay() >= 0 {
		t.Error("expected negative delay to stay negative")
	}
}

func TestValidateCheck(t *testing.T) {
	cfg := &Config{TicketNumber: "12345", WebhookURL: "https://discord.com/api/webhooks/1/abc"}
	if err := cfg.ValidateCheck(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	if err := (&Config{WebhookURL: "x"}).ValidateCheck(); err == nil {
		t.Error("expected error for missing ticket number")
	}
	if err := (&Config{TicketNumber: "12345"}).ValidateCheck(); err == nil {
		t.Error("expected error for missing webhook url")
	}
}

func TestValidateAnalyze(t *testing.T) {
	cfg := &Config{TicketNumber: "12345", OutputDir: "reports"}
	if err := cfg.ValidateAnalyze(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	if err := (&Config{OutputDir: "reports"}).ValidateAnalyze(); err == nil {
		t.Error("expected error for missing ticket number")
	}
	if err := (&Config{TicketNumber: "12345"}).ValidateAnalyze(); err == nil {
		t.Error("expected error for missing output dir")
	}
}
