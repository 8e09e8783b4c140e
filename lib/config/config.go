// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dwkns/stringify-and-view/lib/stringify"
)

// EnvVariable names the environment variable holding the config file
// path.
const EnvVariable = "STRINGIFY_VIEW_CONFIG"

// Config is the master configuration for stringify-view.
type Config struct {
	// RevisitBudget bounds circular-reference re-expansion in the
	// serializer.
	RevisitBudget int `yaml:"revisit_budget"`

	// Redaction is the serializer-side redaction rule set: matching
	// keys are replaced before their values are ever read.
	Redaction stringify.RuleSet `yaml:"redaction"`

	// Viewer configures the interactive tree view.
	Viewer ViewerConfig `yaml:"viewer"`

	// Output configures persistence of the serialized text.
	Output OutputConfig `yaml:"output"`
}

// ViewerConfig configures the tree presentation.
type ViewerConfig struct {
	// ExpandDepth is how many levels start expanded. Zero means only
	// the root; negative means everything.
	ExpandDepth int `yaml:"expand_depth"`

	// ShowTypes shows kind labels next to values.
	ShowTypes bool `yaml:"show_types"`

	// ShowTemplateContent lifts viewer-side redaction of the
	// conventional templateContent key.
	ShowTemplateContent bool `yaml:"show_template_content"`

	// Redaction is the viewer-side rule set, applied at render time
	// without touching the serialized data.
	Redaction stringify.RuleSet `yaml:"redaction"`
}

// OutputConfig configures the persistence wrapper.
type OutputConfig struct {
	// Location is the target file; empty disables persistence.
	Location string `yaml:"location"`

	// Pretty re-indents the persisted text.
	Pretty bool `yaml:"pretty"`

	// Indent is the spaces per level when Pretty is set.
	Indent int `yaml:"indent"`
}

// Default returns the built-in configuration: revisit budget of one,
// no redaction, viewer expanded one level with type labels on.
func Default() *Config {
	return &Config{
		RevisitBudget: 1,
		Viewer: ViewerConfig{
			ExpandDepth: 1,
			ShowTypes:   true,
		},
		Output: OutputConfig{
			Pretty: true,
			Indent: 2,
		},
	}
}

// Load reads the config file named by STRINGIFY_VIEW_CONFIG. Errors
// when the variable is unset; use Default for the no-config case.
func Load() (*Config, error) {
	path := os.Getenv(EnvVariable)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set", EnvVariable)
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the config file at path. Missing keys
// keep their Default values.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty file is a valid "all defaults" configuration.
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.RevisitBudget < 0 {
		return fmt.Errorf("revisit_budget must be >= 0, got %d", cfg.RevisitBudget)
	}
	if cfg.Output.Indent < 0 {
		return fmt.Errorf("output.indent must be >= 0, got %d", cfg.Output.Indent)
	}
	return nil
}
