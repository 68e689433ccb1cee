package segment

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.GroupThreshold != 0.7 {
		t.Errorf("GroupThreshold = %f, want 0.7", cfg.GroupThreshold)
	}
	if cfg.ContinuationThreshold != 0.6 {
		t.Errorf("ContinuationThreshold = %f, want 0.6", cfg.ContinuationThreshold)
	}
	if cfg.ReferenceKeySeed != 120991 {
		t.Errorf("ReferenceKeySeed = %d, want 120991", cfg.ReferenceKeySeed)
	}
	if cfg.DefaultProviderFacility() != "ABC DoctorName - ABC Facility Name" {
		t.Errorf("DefaultProviderFacility() = %q", cfg.DefaultProviderFacility())
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segmenter.yaml")
	content := "group_threshold: 0.8\nreference_key_seed: 500\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.GroupThreshold != 0.8 {
		t.Errorf("GroupThreshold = %f, want override 0.8", cfg.GroupThreshold)
	}
	if cfg.ReferenceKeySeed != 500 {
		t.Errorf("ReferenceKeySeed = %d, want override 500", cfg.ReferenceKeySeed)
	}
	// Untouched fields keep their defaults.
	if cfg.ContinuationThreshold != 0.6 {
		t.Errorf("ContinuationThreshold = %f, want default 0.6", cfg.ContinuationThreshold)
	}
	if cfg.HeaderScanLines != 15 {
		t.Errorf("HeaderScanLines = %d, want default 15", cfg.HeaderScanLines)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
