package assets

import (
	"embed"
	"log"
	"path"
)

//go:embed config/*.yaml scripts/*.lua
var projectAssets embed.FS

// DemoScript is the name of the bundled Lua render module.
const DemoScript = "demo.lua"

// DefaultConfig returns the built-in deployment file.
func DefaultConfig() []byte {
	data, err := projectAssets.ReadFile("config/default.yaml")
	if err != nil {
		log.Fatalf("Failed to read default config: %v", err)
	}
	return data
}

// Script returns a bundled Lua script by file name.
func Script(name string) ([]byte, error) {
	return projectAssets.ReadFile(path.Join("scripts", name))
}
