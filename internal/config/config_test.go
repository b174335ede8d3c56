package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Units != "metric" {
		t.Errorf("Units = %q", cfg.Units)
	}
	if cfg.Viewer.MinZoom != 0.1 {
		t.Errorf("Viewer.MinZoom = %v", cfg.Viewer.MinZoom)
	}
	if cfg.Viewer.MaxZoom != 10.0 {
		t.Errorf("Viewer.MaxZoom = %v", cfg.Viewer.MaxZoom)
	}
	if cfg.Viewer.ZoomStep != 1.25 {
		t.Errorf("Viewer.ZoomStep = %v", cfg.Viewer.ZoomStep)
	}
	if !cfg.Viewer.AutoReload {
		t.Error("Viewer.AutoReload should default to true")
	}
}

func TestLoad_NoConfig(t *testing.T) {
	// Point XDG to an empty dir so no config file is found
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())

	confDir := filepath.Join(dir, "takeoff")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "units = \"imperial\"\n\n[viewer]\nmin_zoom = 0.5\nmax_zoom = 4.0\nzoom_step = 1.5\nauto_reload = false\n"
	if err := os.WriteFile(filepath.Join(confDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Units != "imperial" {
		t.Errorf("Units = %q", cfg.Units)
	}
	if cfg.Viewer.MinZoom != 0.5 || cfg.Viewer.MaxZoom != 4.0 {
		t.Errorf("zoom range = [%v, %v]", cfg.Viewer.MinZoom, cfg.Viewer.MaxZoom)
	}
	if cfg.Viewer.AutoReload {
		t.Error("AutoReload should be false")
	}
}

func TestLoad_InvalidUnits(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())

	confDir := filepath.Join(dir, "takeoff")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(confDir, "config.toml"), []byte("units = \"cubits\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid units")
	}
}
