package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
	"github.com/toshiksharma271/collab-insight-engine/internal/graph"
	"github.com/toshiksharma271/collab-insight-engine/internal/scenario"
)

// Config holds insight configuration.
type Config struct {
	Canvas   CanvasConfig      `toml:"canvas"`
	Style    StyleConfig       `toml:"style"`
	Scenario scenario.Baseline `toml:"scenario"`
	Serve    ServeConfig       `toml:"serve"`
	Data     DataConfig        `toml:"data"`
	Parallel ParallelConfig    `toml:"parallel"`
	Log      LogConfig         `toml:"log"`
}

// CanvasConfig sets the default network drawing size in pixels.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// StyleConfig controls network colors.
type StyleConfig struct {
	Background    string            `toml:"background"`
	NodeFill      string            `toml:"node_fill"`
	NodeStroke    string            `toml:"node_stroke"`
	EdgeStroke    string            `toml:"edge_stroke"`
	LabelFill     string            `toml:"label_fill"`
	ChannelColors map[string]string `toml:"channel_colors"`
}

// ServeConfig controls the local dashboard server.
type ServeConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// DataConfig points at user dataset overrides.
type DataConfig struct {
	Dir string `toml:"dir"` // empty means <config dir>/data
}

// ParallelConfig controls concurrent export.
type ParallelConfig struct {
	Concurrency int `toml:"concurrency"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	JSON  bool   `toml:"json"`
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// Default returns the default configuration.
func Default() *Config {
	st := graph.DefaultStyle()
	return &Config{
		Canvas: CanvasConfig{Width: 800, Height: 400},
		Style: StyleConfig{
			Background: st.Background,
			NodeFill:   st.NodeFill,
			NodeStroke: st.NodeStroke,
			EdgeStroke: st.EdgeStroke,
			LabelFill:  st.LabelFill,
		},
		Scenario: scenario.DefaultBaseline(),
		Serve:    ServeConfig{Addr: "127.0.0.1:8088", AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"}},
		Parallel: ParallelConfig{Concurrency: 4},
		Log:      LogConfig{JSON: false, Level: "info"},
	}
}

// ConfigDir returns the insight config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "insight")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, falling back to defaults if it is missing or unreadable.
func Load() *Config {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		return cfg
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the config file with defaults if it doesn't exist.
func EnsureExists() error {
	if _, err := os.Stat(Path()); err == nil {
		return nil // already exists
	}
	return Save(Default())
}

// DataDir returns the dataset override directory.
func (c *Config) DataDir() string {
	if c.Data.Dir != "" {
		return c.Data.Dir
	}
	return filepath.Join(ConfigDir(), "data")
}

// GraphStyle converts the style section into drawing colors. Empty fields
// keep the default palette.
func (c *Config) GraphStyle() graph.Style {
	st := graph.DefaultStyle()
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&st.Background, c.Style.Background)
	set(&st.NodeFill, c.Style.NodeFill)
	set(&st.NodeStroke, c.Style.NodeStroke)
	set(&st.EdgeStroke, c.Style.EdgeStroke)
	set(&st.LabelFill, c.Style.LabelFill)
	if len(c.Style.ChannelColors) > 0 {
		st.ChannelColors = make(map[dataset.Channel]string, len(c.Style.ChannelColors))
		for ch, color := range c.Style.ChannelColors {
			st.ChannelColors[dataset.Channel(ch)] = color
		}
	}
	return st
}
