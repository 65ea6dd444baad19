//go:build js && wasm

// Command canvashost-wasm is the browser glue: it sizes the page's canvas and
// drives a render module that the page loaded as a global object.
//
// The page may set globalThis.canvashostConfig to a YAML deployment string;
// otherwise the built-in default is used.
package main

import (
	"log"
	"os"
	"syscall/js"

	"canvashost/internal/adapter"
	"canvashost/internal/config"
	"canvashost/internal/host/dom"
	"canvashost/internal/logger"
	"canvashost/internal/module/jsmodule"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	// Stderr is the browser console under js/wasm.
	l, err := logger.Setup(os.Stderr, logger.Config{Level: cfg.Log.Level, Format: logger.Format(cfg.Log.Format)})
	if err != nil {
		log.Fatal(err)
	}

	mod, err := jsmodule.Global(cfg.Module.Global)
	if err != nil {
		log.Fatal(err)
	}

	doc := dom.NewDocument()
	acfg := cfg.AdapterConfig()
	acfg.Module = mod
	acfg.Logger = l

	dom.Bind(doc, adapter.New(doc, acfg), l)

	// Keep the Go program alive to serve event callbacks.
	select {}
}

func loadConfig() (config.Deployment, error) {
	v := js.Global().Get("canvashostConfig")
	if v.Type() == js.TypeString {
		return config.Parse("canvashostConfig", []byte(v.String()))
	}
	return config.Default()
}
