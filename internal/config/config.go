// Package config loads the optional .zenfmt.yaml project config file,
// using gopkg.in/yaml.v2 the way flosch-pongo2's example config-driven
// tools in the pack parse their own YAML settings files.
package config

import (
	"os"

	"github.com/juju/errors"
	"gopkg.in/yaml.v2"
)

// Config is the subset of CLI behavior a project can pin in
// .zenfmt.yaml instead of passing on every invocation.
type Config struct {
	Include                  []string `yaml:"include"`
	Exclude                  []string `yaml:"exclude"`
	RespectGitignore         bool     `yaml:"respect_gitignore"`
	MaxConsecutiveBlankLines int      `yaml:"max_consecutive_blank_lines"`
	Concurrency              int      `yaml:"concurrency"`
	CacheFile                string   `yaml:"cache_file"`
}

// Default returns a Config with the same defaults the CLI uses when no
// config file is present.
func Default() Config {
	return Config{
		RespectGitignore:         true,
		MaxConsecutiveBlankLines: 1,
	}
}

// Load reads and parses the YAML config file at path, starting from
// Default() so any field the file omits keeps its default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Trace(err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Annotate(err, "parsing config")
	}
	return cfg, nil
}

// LoadIfExists behaves like Load, but returns Default() without error
// when path does not exist.
func LoadIfExists(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
