package config

import (
	"errors"
	"fmt"
	"strings"

	"canvashost/internal/logger"
	"canvashost/internal/surface"
)

// MapDeployment validates dto and converts it. path only labels errors.
func MapDeployment(path string, dto YAMLDeployment) (Deployment, error) {
	fail := func(field string, err error) (Deployment, error) {
		return Deployment{}, &Error{Path: path, Field: field, Err: err}
	}

	id := strings.TrimSpace(dto.Surface)
	if id == "" {
		return fail("surface", errors.New("is required"))
	}

	width, err := mapAxis(dto.Sizing.Width)
	if err != nil {
		return fail("sizing.width", err)
	}
	height, err := mapAxis(dto.Sizing.Height)
	if err != nil {
		return fail("sizing.height", err)
	}

	callbacks := make([]string, 0, len(dto.Callbacks))
	for i, name := range dto.Callbacks {
		name = strings.TrimSpace(name)
		if name == "" {
			return fail(fmt.Sprintf("callbacks[%d]", i), errors.New("empty export name"))
		}
		callbacks = append(callbacks, name)
	}

	if _, err := logger.ParseLevel(dto.Log.Level); err != nil {
		return fail("log.level", err)
	}
	switch logger.Format(dto.Log.Format) {
	case logger.FormatText, logger.FormatJSON, "":
	default:
		return fail("log.format", fmt.Errorf("unknown format %q", dto.Log.Format))
	}

	viewport, err := mapSize(dto.Host.Viewport)
	if err != nil {
		return fail("host.viewport", err)
	}
	container, err := mapSize(dto.Host.Container)
	if err != nil {
		return fail("host.container", err)
	}
	if dto.Window.Width < 0 || dto.Window.Height < 0 {
		return fail("window", errors.New("negative size"))
	}

	return Deployment{
		Surface:   id,
		Sizing:    surface.Policy{Width: width, Height: height},
		Callbacks: callbacks,
		Loop:      strings.TrimSpace(dto.Loop),
		Contain:   dto.Contain,
		Module: Module{
			Script: dto.Module.Script,
			Global: dto.Module.Global,
		},
		Log: Log{
			Level:  dto.Log.Level,
			Format: dto.Log.Format,
		},
		Host: Host{
			Viewport:  viewport,
			Container: container,
		},
		Window: Window{
			Width:  dto.Window.Width,
			Height: dto.Window.Height,
			Title:  dto.Window.Title,
		},
	}, nil
}

// ToYAML converts d back into its file representation.
func ToYAML(d Deployment) YAMLDeployment {
	return YAMLDeployment{
		Surface: d.Surface,
		Sizing: YAMLSizing{
			Width:  YAMLAxis{Source: d.Sizing.Width.Source.String(), Margin: d.Sizing.Width.Margin},
			Height: YAMLAxis{Source: d.Sizing.Height.Source.String(), Margin: d.Sizing.Height.Margin},
		},
		Callbacks: append([]string(nil), d.Callbacks...),
		Loop:      d.Loop,
		Contain:   d.Contain,
		Module:    YAMLModule{Script: d.Module.Script, Global: d.Module.Global},
		Log:       YAMLLog{Level: d.Log.Level, Format: d.Log.Format},
		Host: YAMLHost{
			Viewport:  YAMLSize{Width: d.Host.Viewport.Width, Height: d.Host.Viewport.Height},
			Container: YAMLSize{Width: d.Host.Container.Width, Height: d.Host.Container.Height},
		},
		Window: YAMLWindow{Width: d.Window.Width, Height: d.Window.Height, Title: d.Window.Title},
	}
}

func mapAxis(a YAMLAxis) (surface.Axis, error) {
	src, err := surface.ParseSource(a.Source)
	if err != nil {
		return surface.Axis{}, err
	}
	if a.Margin < 0 {
		return surface.Axis{}, fmt.Errorf("negative margin %d", a.Margin)
	}
	return surface.Axis{Source: src, Margin: a.Margin}, nil
}

func mapSize(s YAMLSize) (surface.Dimensions, error) {
	if s.Width < 0 || s.Height < 0 {
		return surface.Dimensions{}, fmt.Errorf("negative size %dx%d", s.Width, s.Height)
	}
	return surface.Dimensions{Width: s.Width, Height: s.Height}, nil
}
