package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"canvashost/internal/assets"
)

const defaultName = "<default>"

// Default returns the built-in deployment.
func Default() (Deployment, error) {
	dto, err := defaultDTO()
	if err != nil {
		return Deployment{}, err
	}
	return MapDeployment(defaultName, dto)
}

// Load reads a deployment file. Keys it omits keep their default values.
func Load(path string) (Deployment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Deployment{}, &Error{Path: path, Err: err}
	}
	return Parse(path, b)
}

// Parse decodes deployment YAML over the defaults. name labels errors.
func Parse(name string, data []byte) (Deployment, error) {
	dto, err := defaultDTO()
	if err != nil {
		return Deployment{}, err
	}
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return Deployment{}, &Error{Path: name, Err: err}
	}
	return MapDeployment(name, dto)
}

// Marshal encodes d as YAML.
func Marshal(d Deployment) ([]byte, error) {
	return yaml.Marshal(ToYAML(d))
}

func defaultDTO() (YAMLDeployment, error) {
	var dto YAMLDeployment
	if err := yaml.Unmarshal(assets.DefaultConfig(), &dto); err != nil {
		return YAMLDeployment{}, &Error{Path: defaultName, Err: err}
	}
	return dto, nil
}
