package common

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Database.Path != "segmenter.db" {
		t.Errorf("db path = %q", cfg.Database.Path)
	}
	if cfg.Database.DialTimeout != 3*time.Second {
		t.Errorf("dial timeout = %v", cfg.Database.DialTimeout)
	}
	if cfg.Export.OutputDir != "." {
		t.Errorf("output dir = %q", cfg.Export.OutputDir)
	}
	if len(cfg.Watch.Roots) != 0 {
		t.Errorf("watch roots = %v, want empty", cfg.Watch.Roots)
	}
	if !cfg.Watch.InitialScan {
		t.Error("initial scan should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SEGMENTER_DB", "/var/lib/segmenter/jobs.db")
	t.Setenv("SEGMENTER_DB_TIMEOUT", "10s")
	t.Setenv("SEGMENTER_WATCH_DIRS", "/inbound, /archive ,")
	t.Setenv("SEGMENTER_WATCH_INITIAL_SCAN", "false")

	cfg := LoadConfig()

	if cfg.Database.Path != "/var/lib/segmenter/jobs.db" {
		t.Errorf("db path = %q", cfg.Database.Path)
	}
	if cfg.Database.DialTimeout != 10*time.Second {
		t.Errorf("dial timeout = %v", cfg.Database.DialTimeout)
	}
	if want := []string{"/inbound", "/archive"}; !reflect.DeepEqual(cfg.Watch.Roots, want) {
		t.Errorf("watch roots = %v, want %v", cfg.Watch.Roots, want)
	}
	if cfg.Watch.InitialScan {
		t.Error("initial scan should be disabled")
	}
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("SEGMENTER_DB_TIMEOUT", "soon")
	t.Setenv("SEGMENTER_WATCH_INITIAL_SCAN", "maybe")

	cfg := LoadConfig()

	if cfg.Database.DialTimeout != 3*time.Second {
		t.Errorf("dial timeout = %v, want default", cfg.Database.DialTimeout)
	}
	if !cfg.Watch.InitialScan {
		t.Error("initial scan should fall back to default")
	}
}

func TestValidateRejectsEmptyDBPath(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty database path")
	}
}
