package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 400 {
		t.Errorf("expected 800x400 canvas, got %vx%v", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Scenario.AvgROI != 892 {
		t.Errorf("expected baseline ROI 892, got %v", cfg.Scenario.AvgROI)
	}
	if cfg.Serve.Addr != "127.0.0.1:8088" {
		t.Errorf("expected default addr, got %q", cfg.Serve.Addr)
	}
	if cfg.Parallel.Concurrency != 4 {
		t.Errorf("expected concurrency 4, got %d", cfg.Parallel.Concurrency)
	}
	if cfg.Log.JSON {
		t.Error("default log output should be console")
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/test-xdg")
	dir := ConfigDir()
	if dir != "/tmp/test-xdg/insight" {
		t.Errorf("expected /tmp/test-xdg/insight, got %q", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	dir = ConfigDir()
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", "insight")
	if dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Canvas.Width = 1200
	cfg.Scenario.AvgROI = 1000
	cfg.Style.ChannelColors = map[string]string{"slack": "#4A154B"}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Load()
	if loaded.Canvas.Width != 1200 {
		t.Errorf("expected width 1200, got %v", loaded.Canvas.Width)
	}
	if loaded.Scenario.AvgROI != 1000 {
		t.Errorf("expected baseline ROI 1000, got %v", loaded.Scenario.AvgROI)
	}
	if loaded.Style.ChannelColors["slack"] != "#4A154B" {
		t.Errorf("expected slack color, got %v", loaded.Style.ChannelColors)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	os.MkdirAll(filepath.Join(tmp, "insight"), 0o755)
	os.WriteFile(Path(), []byte("[canvas]\nwidth = 640\n"), 0o644)

	cfg := Load()
	if cfg.Canvas.Width != 640 {
		t.Errorf("expected width 640, got %v", cfg.Canvas.Width)
	}
	if cfg.Canvas.Height != 400 {
		t.Errorf("expected default height 400, got %v", cfg.Canvas.Height)
	}
}

func TestLoadInvalidFileFallsBack(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	os.MkdirAll(filepath.Join(tmp, "insight"), 0o755)
	os.WriteFile(Path(), []byte("[canvas\nwidth = "), 0o644)

	cfg := Load()
	if cfg.Canvas.Width != 800 {
		t.Errorf("expected default width after parse failure, got %v", cfg.Canvas.Width)
	}
}

func TestEnsureExists(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}
	if _, err := os.Stat(Path()); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	// Second call is a no-op.
	if err := EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed on existing file: %v", err)
	}
}

func TestDataDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/x")
	cfg := Default()
	if got := cfg.DataDir(); got != "/tmp/x/insight/data" {
		t.Errorf("unexpected default data dir %q", got)
	}
	cfg.Data.Dir = "/srv/data"
	if got := cfg.DataDir(); got != "/srv/data" {
		t.Errorf("expected override data dir, got %q", got)
	}
}

func TestGraphStyle(t *testing.T) {
	cfg := Default()
	cfg.Style.NodeFill = ""
	cfg.Style.EdgeStroke = "#123456"
	cfg.Style.ChannelColors = map[string]string{"github": "#000"}

	st := cfg.GraphStyle()
	if st.NodeFill == "" {
		t.Error("empty node fill should keep the default")
	}
	if st.EdgeStroke != "#123456" {
		t.Errorf("expected edge stroke override, got %q", st.EdgeStroke)
	}
	if st.ChannelColors[dataset.ChannelGitHub] != "#000" {
		t.Errorf("expected github channel color, got %v", st.ChannelColors)
	}
}
