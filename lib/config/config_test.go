// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.RevisitBudget != 1 {
		t.Errorf("revisit_budget = %d, want 1", cfg.RevisitBudget)
	}
	if cfg.Viewer.ExpandDepth != 1 || !cfg.Viewer.ShowTypes {
		t.Errorf("viewer defaults = %+v", cfg.Viewer)
	}
	if !cfg.Output.Pretty || cfg.Output.Indent != 2 {
		t.Errorf("output defaults = %+v", cfg.Output)
	}
	if len(cfg.Redaction) != 0 {
		t.Errorf("default redaction not empty: %v", cfg.Redaction)
	}
}

func TestLoadRequiresEnvVariable(t *testing.T) {
	t.Setenv(EnvVariable, "")
	os.Unsetenv(EnvVariable)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when STRINGIFY_VIEW_CONFIG not set")
	}
	if !strings.Contains(err.Error(), EnvVariable) {
		t.Errorf("error %v does not name the variable", err)
	}
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
revisit_budget: 3
redaction:
  - apiKey
  - key: templateContent
    replacement: Removed for performance reasons
viewer:
  expand_depth: 2
  show_types: false
output:
  location: _site/data.json
  pretty: true
  indent: 4
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.RevisitBudget != 3 {
		t.Errorf("revisit_budget = %d", cfg.RevisitBudget)
	}
	if len(cfg.Redaction) != 2 || cfg.Redaction[1].Replacement != "Removed for performance reasons" {
		t.Errorf("redaction = %+v", cfg.Redaction)
	}
	if cfg.Viewer.ExpandDepth != 2 || cfg.Viewer.ShowTypes {
		t.Errorf("viewer = %+v", cfg.Viewer)
	}
	if cfg.Output.Location != "_site/data.json" || cfg.Output.Indent != 4 {
		t.Errorf("output = %+v", cfg.Output)
	}
}

func TestLoadFromEmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.RevisitBudget != 1 {
		t.Errorf("revisit_budget = %d, want default 1", cfg.RevisitBudget)
	}
}

func TestLoadFromRejectsUnknownKeys(t *testing.T) {
	if _, err := LoadFrom(writeConfig(t, "revist_budget: 2\n")); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestLoadFromValidation(t *testing.T) {
	if _, err := LoadFrom(writeConfig(t, "revisit_budget: -1\n")); err == nil {
		t.Fatal("expected error for negative revisit_budget")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
