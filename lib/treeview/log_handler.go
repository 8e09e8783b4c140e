// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package treeview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// logRecordMsg delivers a slog record to the bubbletea model for
// display in the status bar.
type logRecordMsg struct {
	// Summary is the one-line message shown in the status bar.
	Summary string

	// Level is the slog level for styling (warn vs error).
	Level slog.Level
}

// logRecordFadeMsg clears the log message from the status bar and
// restores the normal help text.
type logRecordFadeMsg struct{}

// logRecordFadeDelay is how long log messages stay visible before the
// status bar fades back to the help line.
const logRecordFadeDelay = 5 * time.Second

// LogHandler is a slog.Handler that routes log records into a
// bubbletea program as messages, so warnings surface in the status
// bar instead of corrupting the rendered screen. Records below the
// configured level are dropped, as are records arriving before
// SetProgram is called.
//
// Handlers derived via WithAttrs/WithGroup share the same program
// pointer, so a single SetProgram call propagates everywhere.
type LogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
}

// NewLogHandler creates a handler delivering records at or above
// level. Call SetProgram once the tea.Program exists.
func NewLogHandler(level slog.Level) *LogHandler {
	return &LogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the bubbletea program that receives log messages.
// Safe to call from any goroutine.
func (handler *LogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled reports whether the handler wants records at level.
func (handler *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle formats the record as a one-line summary and sends it to the
// program.
func (handler *LogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}

	var attrParts []string
	for _, attr := range handler.attrs {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
		return true
	})

	summary := record.Message
	if len(attrParts) > 0 {
		summary += " (" + strings.Join(attrParts, ", ") + ")"
	}

	program.Send(logRecordMsg{Summary: summary, Level: record.Level})
	return nil
}

// WithAttrs returns a derived handler with the attributes appended.
func (handler *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := &LogHandler{
		level:   handler.level,
		program: handler.program,
	}
	derived.attrs = append(append([]slog.Attr{}, handler.attrs...), attrs...)
	return derived
}

// WithGroup returns the handler unchanged: the status bar summary is
// flat, so group qualification would only add noise.
func (handler *LogHandler) WithGroup(string) slog.Handler {
	return handler
}
