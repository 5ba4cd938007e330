package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// loadFile reads an optional YAML config file. An empty path yields an env-only source.
func loadFile(path string) (source, error) {
	if path == "" {
		return source{}, nil
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return source{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return source{file: k}, nil
}
