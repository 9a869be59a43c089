// Package config provides the YAML configuration loader for declgraph.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/declgraph/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// File represents the structure of the declgraph.yaml configuration file.
type File struct {
	Tool         string   `yaml:"tool"`
	WorkingDir   string   `yaml:"workingDir"`
	IncludePaths []string `yaml:"includePaths"`
	Defines      []string `yaml:"defines"`
	Undefines    []string `yaml:"undefines"`
	CFlags       []string `yaml:"cflags"`
	Compiler     string   `yaml:"compiler"`
	StartDecls   []string `yaml:"startDecls"`
	ToolTimeout  string   `yaml:"toolTimeout"`
}

// Load reads a configuration file from the given path and returns a
// domain.Config. A missing file yields the default configuration.
func Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if file.Tool != "" {
		cfg.ToolPath = file.Tool
	}
	if file.WorkingDir != "" {
		cfg.WorkingDir = file.WorkingDir
	}
	cfg.IncludePaths = file.IncludePaths
	cfg.Defines = file.Defines
	cfg.Undefines = file.Undefines
	cfg.CFlags = file.CFlags
	cfg.Compiler = file.Compiler
	cfg.StartDecls = file.StartDecls

	if file.ToolTimeout != "" {
		timeout, err := time.ParseDuration(file.ToolTimeout)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid toolTimeout"), "value", file.ToolTimeout)
		}
		cfg.ToolTimeout = timeout
	}

	return cfg, nil
}
