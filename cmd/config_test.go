package cmd

import "testing"

func TestConfigEnvOverrides(t *testing.T) {
	t.Setenv("FPL_PROFILE_FILE", "family.json")
	t.Setenv("FPL_CURRENCY", "EUR")
	t.Setenv("FPL_HORIZON", "12")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.ProfileFile != "family.json" {
		t.Errorf("ProfileFile = %q, want %q", cfg.ProfileFile, "family.json")
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, want %q", cfg.Currency, "EUR")
	}
	if cfg.Horizon != 12 {
		t.Errorf("Horizon = %d, want 12", cfg.Horizon)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := defaultConfig()
	if cfg.ProfileFile != "profile.json" || cfg.Currency != "USD" || cfg.Horizon != 30 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
