package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"canvashost/internal/surface"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// --- parseSize ---

func TestParseSize(t *testing.T) {
	cases := []struct {
		input   string
		want    surface.Dimensions
		wantErr bool
	}{
		{"1000x800", surface.Dimensions{Width: 1000, Height: 800}, false},
		{" 640X480 ", surface.Dimensions{Width: 640, Height: 480}, false},
		{"0x0", surface.Dimensions{}, false},
		{"640", surface.Dimensions{}, true},
		{"ax1", surface.Dimensions{}, true},
		{"1xb", surface.Dimensions{}, true},
		{"-1x5", surface.Dimensions{}, true},
	}
	for _, c := range cases {
		got, err := parseSize(c.input)
		if (err != nil) != c.wantErr {
			t.Errorf("parseSize(%q) err = %v, wantErr %v", c.input, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("parseSize(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// --- parseResize ---

func TestParseResize(t *testing.T) {
	step, err := parseResize("500x400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.viewport != (surface.Dimensions{Width: 500, Height: 400}) || step.container != nil {
		t.Errorf("parseResize(500x400) = %+v", step)
	}

	step, err = parseResize("500x400,320x240")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.container == nil || *step.container != (surface.Dimensions{Width: 320, Height: 240}) {
		t.Errorf("parseResize(500x400,320x240) container = %v", step.container)
	}

	for _, bad := range []string{"500x400,", "wide,1x1", "1x1,tall"} {
		if _, err := parseResize(bad); err == nil {
			t.Errorf("parseResize(%q): expected error", bad)
		}
	}
}

// --- snapshot ---

func TestSnapshot_DefaultViewport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	out, err := execute(t, "snapshot", "--out", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != path+" 982x700" {
		t.Fatalf("unexpected output %q", out)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("png not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("png is empty")
	}
}

func TestSnapshot_Resize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	out, err := execute(t, "snapshot", "--out", path, "--frames", "2", "--resize", "500x400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), " 482x300") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSnapshot_ContainerConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "container.yaml")
	doc := "sizing:\n  width: {source: container, margin: 0}\n  height: {source: container, margin: 0}\n"
	if err := os.WriteFile(cfg, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "out.png")

	out, err := execute(t, "--config", cfg, "snapshot", "--out", path, "--container", "640x480")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), " 640x480") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSnapshot_BadViewport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	_, err := execute(t, "snapshot", "--out", path, "--viewport", "wide")
	if err == nil || !strings.Contains(err.Error(), "--viewport") {
		t.Fatalf("expected viewport error, got %v", err)
	}
}

func TestSnapshot_RequiresOut(t *testing.T) {
	if _, err := execute(t, "snapshot"); err == nil {
		t.Fatalf("expected error for missing --out")
	}
}

// --- config ---

func TestConfig_PrintsDefault(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"surface: canvas", "source: viewport", "- draw_hexes"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfig_MissingFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "config")
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestSnapshot_ViewportBelowMarginsThenResize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	out, err := execute(t, "snapshot", "--out", path, "--viewport", "50x50", "--resize", "500x400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != path+" 482x300" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSnapshot_ResizeContainer(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "container.yaml")
	doc := "sizing:\n  width: {source: container, margin: 0}\n  height: {source: container, margin: 0}\n"
	if err := os.WriteFile(cfg, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "out.png")

	out, err := execute(t, "--config", cfg, "snapshot", "--out", path, "--resize", "1000x800,320x240")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), " 320x240") {
		t.Fatalf("unexpected output %q", out)
	}
}
