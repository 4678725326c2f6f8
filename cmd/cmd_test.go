package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/toshiksharma271/collab-insight-engine/internal/config"
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
	"github.com/toshiksharma271/collab-insight-engine/internal/graph"
	"github.com/toshiksharma271/collab-insight-engine/internal/parallel"
	"github.com/toshiksharma271/collab-insight-engine/internal/scenario"
)

func init() {
	parallel.Progress = io.Discard
}

// useBundledData points the loader at the repository's data directory and
// isolates the config dir.
func useBundledData(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	old := dataFS
	dataFS = os.DirFS("..")
	t.Cleanup(func() { dataFS = old })
	dataDir = ""
	return config.Load()
}

func TestReadDataset_Bundled(t *testing.T) {
	cfg := useBundledData(t)
	ds, err := readDataset(cfg)
	if err != nil {
		t.Fatalf("readDataset: %v", err)
	}
	if len(ds.People) != 8 {
		t.Errorf("expected 8 people, got %d", len(ds.People))
	}
	if len(ds.Projects) != 5 {
		t.Errorf("expected 5 projects, got %d", len(ds.Projects))
	}
	if len(ds.Timeline) != 12 {
		t.Errorf("expected 12 months, got %d", len(ds.Timeline))
	}
	if n := len(ds.DanglingLinks()); n != 0 {
		t.Errorf("bundled data should have no dangling links, got %d", n)
	}
}

func TestReadDataset_DataDirFlag(t *testing.T) {
	cfg := useBundledData(t)
	dir := t.TempDir()
	override := `[[people]]
id = "zoe"
name = "Zoe Park"
team = "Design"
centrality = 0.4
`
	if err := os.WriteFile(filepath.Join(dir, "extra.toml"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}
	dataDir = dir
	t.Cleanup(func() { dataDir = "" })

	ds, err := readDataset(cfg)
	if err != nil {
		t.Fatalf("readDataset: %v", err)
	}
	if ds.Person("zoe") == nil {
		t.Error("expected override person to be merged")
	}
}

func TestReadDataset_Invalid(t *testing.T) {
	cfg := useBundledData(t)
	dataFS = fstest.MapFS{
		"data/bad.toml": &fstest.MapFile{Data: []byte("[[people]]\nid = \"x\"\nname = \"X\"\ncentrality = 2\n")},
	}
	if _, err := readDataset(cfg); err == nil {
		t.Fatal("expected validation error for centrality 2")
	}
}

func TestReadDataset_NoEmbeddedData(t *testing.T) {
	cfg := useBundledData(t)
	dataFS = nil
	if _, err := readDataset(cfg); err == nil {
		t.Fatal("expected error without embedded data")
	}
}

func TestOverrideDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.Default()

	dataDir = ""
	if got := overrideDir(cfg); got != cfg.DataDir() {
		t.Errorf("expected config data dir, got %q", got)
	}

	dataDir = "/tmp/custom"
	t.Cleanup(func() { dataDir = "" })
	if got := overrideDir(cfg); got != "/tmp/custom" {
		t.Errorf("expected flag to win, got %q", got)
	}
}

func TestFormatFor(t *testing.T) {
	cases := []struct {
		format, output, want string
	}{
		{"", "", "svg"},
		{"", "net.html", "html"},
		{"", "net.DOT", "dot"},
		{"", "net.txt", "svg"},
		{"json", "net.html", "json"},
		{"SVG", "", "svg"},
	}
	for _, c := range cases {
		got, err := formatFor(c.format, c.output)
		if err != nil {
			t.Errorf("formatFor(%q, %q): %v", c.format, c.output, err)
			continue
		}
		if got != c.want {
			t.Errorf("formatFor(%q, %q) = %q, want %q", c.format, c.output, got, c.want)
		}
	}

	if _, err := formatFor("png", ""); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRenderScene(t *testing.T) {
	people := []dataset.Node{
		{ID: "a", Name: "Ada Lovelace", Centrality: 0.5},
		{ID: "b", Name: "Grace Hopper", Centrality: 1},
	}
	links := []dataset.Edge{{Source: "a", Target: "b", Weight: 10, Channel: dataset.ChannelGitHub}}
	sc := graph.Build(people, links, 400, 200)
	style := graph.DefaultStyle()

	for format, marker := range map[string]string{
		"svg":  "<svg",
		"json": `"circles"`,
		"dot":  "graph collaboration",
		"html": "<!DOCTYPE html>",
	} {
		data, err := renderScene(sc, format, style)
		if err != nil {
			t.Errorf("%s: %v", format, err)
			continue
		}
		if !strings.Contains(string(data), marker) {
			t.Errorf("%s output missing %q", format, marker)
		}
	}

	if _, err := renderScene(sc, "png", style); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestPercentChange(t *testing.T) {
	if got := percentChange(80, 90); got != "+12.5%" {
		t.Errorf("expected +12.5%%, got %q", got)
	}
	if got := percentChange(100, 90); got != "-10.0%" {
		t.Errorf("expected -10.0%%, got %q", got)
	}
	if got := percentChange(0, 10); got != "" {
		t.Errorf("expected empty change from zero, got %q", got)
	}
}

func TestTrendEnds(t *testing.T) {
	if _, _, ok := trendEnds([]dataset.MonthPoint{{Month: "Jan"}}); ok {
		t.Error("a single month has no trend")
	}
	first, last, ok := trendEnds([]dataset.MonthPoint{{Month: "Jan"}, {Month: "Feb"}, {Month: "Mar"}})
	if !ok || first.Month != "Jan" || last.Month != "Mar" {
		t.Errorf("unexpected ends %q..%q (ok=%v)", first.Month, last.Month, ok)
	}
}

func TestExport_WritesEveryView(t *testing.T) {
	cfg := useBundledData(t)
	ds, err := readDataset(cfg)
	if err != nil {
		t.Fatalf("readDataset: %v", err)
	}
	sc := graph.Build(ds.People, ds.Links, cfg.Canvas.Width, cfg.Canvas.Height)

	dir := t.TempDir()
	tasks := exportTasks(dir, ds, sc, cfg.GraphStyle(), scenario.DefaultBaseline())
	results := parallel.Run(context.Background(), tasks, 3)
	if failed := parallel.Failed(results); len(failed) > 0 {
		t.Fatalf("export failed: %v", failed[0].Err)
	}

	m, err := writeManifest(dir, Manifest{RunID: "run-1", Width: sc.Width, Height: sc.Height}, results)
	if err != nil {
		t.Fatalf("writeManifest: %v", err)
	}
	if len(m.Files) != 7 {
		t.Errorf("expected 7 files in manifest, got %d", len(m.Files))
	}

	for _, name := range []string{
		"network.svg", "network.html", "network.dot",
		"overview.json", "roi.json", "collaboration.json", "scenario.json", "manifest.json",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatal(err)
	}
	var got Manifest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("manifest is not JSON: %v", err)
	}
	if got.RunID != "run-1" || got.Width != 800 {
		t.Errorf("unexpected manifest %+v", got)
	}
}

func TestExport_ManifestSkipsFailures(t *testing.T) {
	dir := t.TempDir()
	results := []parallel.Result{
		{Name: "network.svg", OK: true},
		{Name: "roi.json", OK: false},
	}
	m, err := writeManifest(dir, Manifest{RunID: "x"}, results)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Files) != 1 || m.Files[0] != "network.svg" {
		t.Errorf("expected only the successful file, got %v", m.Files)
	}
}

func TestRootCommands(t *testing.T) {
	want := []string{"overview", "network", "collab", "roi", "scenario", "export", "serve", "config", "validate", "completion"}
	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing command %q", name)
		}
	}
}
