// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for stringify-view.
//
// Configuration is loaded from a single YAML file specified by:
//   - STRINGIFY_VIEW_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This keeps
// configuration deterministic and auditable: the value the serializer
// redacts (or doesn't) should never depend on which directory the tool
// happened to run from.
package config
