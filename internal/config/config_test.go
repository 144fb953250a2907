package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "parchment" {
		t.Fatalf("Theme = %q, want parchment", cfg.Theme)
	}
	if cfg.Seed != 0 {
		t.Fatalf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.MaxTableWidth != 90 {
		t.Fatalf("MaxTableWidth = %d, want 90", cfg.MaxTableWidth)
	}
	if cfg.DebugLog != "" {
		t.Fatalf("DebugLog = %q, want empty", cfg.DebugLog)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RFI_THEME", "mono")
	t.Setenv("RFI_SEED", "42")
	t.Setenv("RFI_MAX_TABLE_WIDTH", "120")
	t.Setenv("RFI_DEBUG_LOG", "/tmp/rfi.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "mono" || cfg.Seed != 42 || cfg.MaxTableWidth != 120 || cfg.DebugLog != "/tmp/rfi.log" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadClampsTableWidth(t *testing.T) {
	t.Setenv("RFI_MAX_TABLE_WIDTH", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxTableWidth != 20 {
		t.Fatalf("MaxTableWidth = %d, want clamped to 20", cfg.MaxTableWidth)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("RFI_SEED", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a non-integer seed")
	}
}
