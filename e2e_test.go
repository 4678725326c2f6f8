//go:build e2e

package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var insightBin string

func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "insight-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}
	defer os.RemoveAll(tmp)

	insightBin = filepath.Join(tmp, "insight")
	build := exec.Command("go", "build", "-ldflags", "-X github.com/toshiksharma271/collab-insight-engine/cmd.version=1.0.0-test", "-o", insightBin, ".")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		panic("failed to build insight: " + err.Error())
	}

	os.Exit(m.Run())
}

// runInsight executes the binary with an isolated HOME directory.
func runInsight(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	cmd := exec.Command(insightBin, args...)
	home := t.TempDir()
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
		"NO_COLOR=1",
	)

	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run insight %v: %v", args, err)
		}
	}
	return outBuf.String(), errBuf.String(), exitCode
}

// --- Core CLI ---

func TestE2E_Version(t *testing.T) {
	out, _, code := runInsight(t, "--version")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "1.0.0-test") {
		t.Errorf("expected version output to contain '1.0.0-test', got %q", out)
	}
}

func TestE2E_Help(t *testing.T) {
	out, _, code := runInsight(t, "--help")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	for _, want := range []string{"Available Commands", "network", "scenario", "serve"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected help to contain %q", want)
		}
	}
}

func TestE2E_UnknownCommand(t *testing.T) {
	_, _, code := runInsight(t, "nonexistent-command")
	if code == 0 {
		t.Error("expected non-zero exit for unknown command")
	}
}

// --- Views ---

func TestE2E_OverviewJSON(t *testing.T) {
	out, _, code := runInsight(t, "overview", "--json")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	var o struct {
		TotalProjects    int     `json:"total_projects"`
		AvgCollaboration float64 `json:"avg_collaboration"`
	}
	if err := json.Unmarshal([]byte(out), &o); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if o.TotalProjects != 5 {
		t.Errorf("expected 5 projects, got %d", o.TotalProjects)
	}
}

func TestE2E_Overview(t *testing.T) {
	out, _, code := runInsight(t, "overview")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Avg ROI") || !strings.Contains(out, "Monthly trend") {
		t.Errorf("unexpected overview output:\n%s", out)
	}
}

func TestE2E_Network(t *testing.T) {
	out, _, code := runInsight(t, "network", "--json")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	var st struct {
		People int `json:"people"`
	}
	if err := json.Unmarshal([]byte(out), &st); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if st.People != 8 {
		t.Errorf("expected 8 people, got %d", st.People)
	}
}

func TestE2E_NetworkRenderSVG(t *testing.T) {
	out, _, code := runInsight(t, "network", "render", "--width", "600", "--height", "300")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
		t.Errorf("expected an SVG document, got %q", out[:min(len(out), 120)])
	}
	if n := strings.Count(out, "<circle"); n != 8 {
		t.Errorf("expected 8 circles, got %d", n)
	}
}

func TestE2E_NetworkRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.dot")
	_, stderr, code := runInsight(t, "network", "render", "-o", path)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "graph collaboration {") {
		t.Errorf("expected DOT from the .dot extension, got %q", string(data)[:40])
	}
	if !strings.Contains(stderr, "Wrote") {
		t.Errorf("expected confirmation on stderr, got %q", stderr)
	}
}

func TestE2E_NetworkRenderBadDimensions(t *testing.T) {
	_, _, code := runInsight(t, "network", "render", "--width", "0")
	if code == 0 {
		t.Error("expected non-zero exit for zero width")
	}
}

func TestE2E_NetworkShow(t *testing.T) {
	out, _, code := runInsight(t, "network", "show", "alice")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Alice") {
		t.Errorf("expected Alice in output, got %q", out)
	}

	_, _, code = runInsight(t, "network", "show", "nobody")
	if code == 0 {
		t.Error("expected non-zero exit for unknown person")
	}
}

func TestE2E_People(t *testing.T) {
	out, _, code := runInsight(t, "network", "people", "--team", "Engineering")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "alice") || strings.Contains(out, "carol") {
		t.Errorf("expected only Engineering, got:\n%s", out)
	}
}

func TestE2E_CollabAndROI(t *testing.T) {
	for _, args := range [][]string{{"collab"}, {"roi"}, {"collab", "--json"}, {"roi", "--json"}} {
		_, _, code := runInsight(t, args...)
		if code != 0 {
			t.Errorf("insight %v: expected exit 0, got %d", args, code)
		}
	}
}

// --- Scenario ---

func TestE2E_ScenarioJSON(t *testing.T) {
	out, _, code := runInsight(t, "scenario", "--json")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	var r struct {
		Projection struct {
			Collaboration float64 `json:"collaboration"`
			ROI           float64 `json:"roi"`
			NetBenefit    float64 `json:"net_benefit"`
		} `json:"projection"`
		Timeline []json.RawMessage `json:"timeline"`
	}
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if r.Projection.Collaboration != 99 || r.Projection.ROI != 1192 {
		t.Errorf("unexpected projection %+v", r.Projection)
	}
	if r.Projection.NetBenefit != 2_910_000 {
		t.Errorf("expected net benefit 2910000, got %v", r.Projection.NetBenefit)
	}
	if len(r.Timeline) != 12 {
		t.Errorf("expected 12 months, got %d", len(r.Timeline))
	}
}

func TestE2E_ScenarioOutOfRange(t *testing.T) {
	out, _, code := runInsight(t, "scenario", "--increase", "80")
	if code == 0 {
		t.Error("expected non-zero exit for an out-of-range increase")
	}
	if !strings.Contains(out, "between 0 and 50") {
		t.Errorf("expected range hint, got %q", out)
	}
}

// --- Export / validate / config ---

func TestE2E_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "report")
	_, _, code := runInsight(t, "export", dir)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	for _, name := range []string{"network.svg", "network.html", "network.dot", "overview.json", "roi.json", "collaboration.json", "scenario.json", "manifest.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s", name)
		}
	}
}

func TestE2E_ValidateWithOverrides(t *testing.T) {
	dir := t.TempDir()
	extra := "[[links]]\nsource = \"alice\"\ntarget = \"ghost\"\nweight = 3\nchannel = \"slack\"\n"
	if err := os.WriteFile(filepath.Join(dir, "extra.toml"), []byte(extra), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, code := runInsight(t, "validate", "--data-dir", dir)
	if code != 0 {
		t.Fatalf("dangling links alone should not fail, got exit %d", code)
	}
	if !strings.Contains(out, "ghost") {
		t.Errorf("expected dangling link to be listed, got:\n%s", out)
	}

	_, _, code = runInsight(t, "validate", "--data-dir", dir, "--strict")
	if code == 0 {
		t.Error("expected --strict to fail on dangling links")
	}

	// The renderer skips the dangling link instead of failing.
	svg, stderr, code := runInsight(t, "network", "render", "--data-dir", dir)
	if code != 0 {
		t.Fatalf("expected render to succeed, got exit %d", code)
	}
	if n := strings.Count(svg, "<line"); n != 10 {
		t.Errorf("expected 10 drawn links, got %d", n)
	}
	if !strings.Contains(stderr, "unknown people") {
		t.Errorf("expected a warning about the skipped link, got %q", stderr)
	}
}

func TestE2E_ValidateBadOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("people: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, code := runInsight(t, "validate", "--data-dir", dir)
	if code == 0 {
		t.Error("expected non-zero exit for malformed override")
	}
	if !strings.Contains(out, "broken.yaml") {
		t.Errorf("expected the file to be named, got %q", out)
	}
}

func TestE2E_ConfigPath(t *testing.T) {
	out, _, code := runInsight(t, "config", "path")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), filepath.Join("insight", "config.toml")) {
		t.Errorf("unexpected config path %q", out)
	}
}

func TestE2E_Completion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, _, code := runInsight(t, "completion", shell)
		if code != 0 {
			t.Errorf("%s: expected exit 0, got %d", shell, code)
		}
		if len(out) == 0 {
			t.Errorf("%s: expected completion script", shell)
		}
	}
}
