// Package config loads deployment files: which surface to manage, how to size
// it, which module exports to call and how the hosts are set up.
package config

import (
	"fmt"

	"canvashost/internal/adapter"
	"canvashost/internal/surface"
)

// Deployment is one validated deployment.
type Deployment struct {
	Surface   string
	Sizing    surface.Policy
	Callbacks []string
	Loop      string
	Contain   bool

	Module Module
	Log    Log
	Host   Host
	Window Window
}

type Module struct {
	// Script is a Lua file path; empty selects the bundled demo module.
	Script string
	// Global names the JS object holding the exports in a browser.
	Global string
}

type Log struct {
	Level  string
	Format string
}

// Host holds the fixed measurements of the offscreen host.
type Host struct {
	Viewport  surface.Dimensions
	Container surface.Dimensions
}

type Window struct {
	Width  int
	Height int
	Title  string
}

// AdapterConfig returns the adapter settings of d. Module and Logger are left
// for the caller to supply.
func (d Deployment) AdapterConfig() adapter.Config {
	return adapter.Config{
		SurfaceID: d.Surface,
		Policy:    d.Sizing,
		Callbacks: append([]string(nil), d.Callbacks...),
		Loop:      d.Loop,
		Contain:   d.Contain,
	}
}

// Error reports an invalid or unreadable deployment file.
type Error struct {
	Path  string
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config: %s: %s: %v", e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
