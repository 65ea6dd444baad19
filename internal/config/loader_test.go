package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"canvashost/internal/surface"
)

func TestDefault(t *testing.T) {
	d, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Surface != "canvas" {
		t.Fatalf("expected surface canvas, got %q", d.Surface)
	}
	if d.Sizing != surface.MarginPolicy(18, 100) {
		t.Fatalf("expected margin policy 18/100, got %+v", d.Sizing)
	}
	if !reflect.DeepEqual(d.Callbacks, []string{"draw_hexes", "weasel"}) {
		t.Fatalf("unexpected callbacks %v", d.Callbacks)
	}
	if d.Loop != "start_loop" || !d.Contain {
		t.Fatalf("expected loop start_loop with containment, got %q/%v", d.Loop, d.Contain)
	}
	if d.Host.Viewport != (surface.Dimensions{Width: 1000, Height: 800}) {
		t.Fatalf("unexpected viewport %v", d.Host.Viewport)
	}
}

func TestLoadContainer(t *testing.T) {
	path := filepath.Join("testdata", "container.yaml")
	d, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := surface.Policy{
		Width:  surface.Axis{Source: surface.SourceContainer},
		Height: surface.Axis{Source: surface.SourceNone},
	}
	if d.Sizing != want {
		t.Fatalf("expected %+v, got %+v", want, d.Sizing)
	}
	if d.Surface != "stage" {
		t.Fatalf("expected surface stage, got %q", d.Surface)
	}
	if !reflect.DeepEqual(d.Callbacks, []string{"weasel", "smile"}) {
		t.Fatalf("unexpected callbacks %v", d.Callbacks)
	}
	if d.Loop != "" || d.Contain {
		t.Fatalf("expected no loop and no containment, got %q/%v", d.Loop, d.Contain)
	}
	// Omitted keys keep their defaults.
	if d.Module.Global != "rustHex" || d.Window.Title != "canvashost" {
		t.Fatalf("defaults not kept: %+v %+v", d.Module, d.Window)
	}

	ac := d.AdapterConfig()
	if ac.SurfaceID != "stage" || ac.Policy != want || ac.Contain {
		t.Fatalf("unexpected adapter config %+v", ac)
	}
}

func TestParseKeepsDefaultMargin(t *testing.T) {
	d, err := Parse("inline", []byte("sizing: {width: {source: container}}"))
	if err != nil {
		t.Fatal(err)
	}
	want := surface.Axis{Source: surface.SourceContainer, Margin: 18}
	if d.Sizing.Width != want {
		t.Fatalf("expected %+v, got %+v", want, d.Sizing.Width)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		file  string
		field string
	}{
		{"invalid_source.yaml", "sizing.width"},
		{"invalid_callback.yaml", "callbacks[1]"},
		{"malformed.yaml", ""},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join("testdata", tt.file)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			var ce *Error
			if !errors.As(err, &ce) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if ce.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, ce.Field)
			}
			if !strings.Contains(err.Error(), path) {
				t.Fatalf("expected path in error, got %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"surface":        `surface: ""`,
		"sizing.height":  "sizing: {height: {source: viewport, margin: -1}}",
		"log.level":      "log: {level: loud}",
		"log.format":     "log: {format: xml}",
		"host.container": "host: {container: {width: -5, height: 1}}",
		"window":         "window: {width: -1}",
	}
	for field, doc := range tests {
		_, err := Parse("inline", []byte(doc))
		var ce *Error
		if !errors.As(err, &ce) || ce.Field != field {
			t.Errorf("%s: got %v", field, err)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "container.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "source: container") {
		t.Fatalf("unexpected yaml:\n%s", b)
	}
	back, err := Parse("roundtrip", b)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, d) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", back, d)
	}
}
