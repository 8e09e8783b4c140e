// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

// stringify-view reads a JSON (or JSONC) document, re-serializes it
// through the extended stringifier, and presents the result.
//
// Three modes of output, combinable:
//
// Interactive (default on a terminal): a collapsible tree view with
// search, type labels, raw-text toggle, and clipboard copy.
//
// Plain (--plain, or when stdout is not a terminal): the serialized
// text is printed, syntax-highlighted when writing to a terminal.
//
// Persisted (--out or a configured output location): the text is
// written to a file, pretty-printed on request, gzipped for .gz
// targets, and skipped entirely when the file already holds
// identical content.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
	"golang.org/x/term"

	"github.com/dwkns/stringify-and-view/lib/config"
	"github.com/dwkns/stringify-and-view/lib/persist"
	"github.com/dwkns/stringify-and-view/lib/stringify"
	"github.com/dwkns/stringify-and-view/lib/treeview"
	"github.com/dwkns/stringify-and-view/lib/tui"
	"github.com/dwkns/stringify-and-view/lib/version"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath          string
		filePath            string
		outLocation         string
		pretty              bool
		indent              int
		budget              int
		redactKeys          []string
		expandDepth         int
		noTypes             bool
		showTemplateContent bool
		plain               bool
		logOutput           string
	)

	flagSet := pflag.NewFlagSet("stringify-view", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $"+config.EnvVariable+")")
	flagSet.StringVar(&filePath, "file", "", "path to JSON or JSONC input (default: first argument, or stdin)")
	flagSet.StringVar(&outLocation, "out", "", "write the serialized text to this file (.gz suffix gzips)")
	flagSet.BoolVar(&pretty, "pretty", false, "pretty-print persisted and plain output")
	flagSet.IntVar(&indent, "indent", 2, "spaces per indentation level for --pretty")
	flagSet.IntVar(&budget, "budget", 1, "re-expansions allowed per circular reference before the marker")
	flagSet.StringArrayVar(&redactKeys, "redact", nil, "redact this key during serialization (repeatable)")
	flagSet.IntVar(&expandDepth, "expand", 1, "tree levels expanded at startup (negative expands everything)")
	flagSet.BoolVar(&noTypes, "no-types", false, "hide type labels in the tree view")
	flagSet.BoolVar(&showTemplateContent, "show-template-content", false, "show templateContent values the viewer would otherwise redact")
	flagSet.BoolVar(&plain, "plain", false, "print the serialized text instead of opening the tree view")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to TUI display)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("stringify-view")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 1 {
		return fmt.Errorf("unexpected argument: %s", args[1])
	}
	if len(args) == 1 {
		if filePath != "" {
			return fmt.Errorf("input given both as argument (%s) and --file (%s)", args[0], filePath)
		}
		filePath = args[0]
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, flagSet, budget, redactKeys, expandDepth, noTypes,
		showTemplateContent, outLocation, pretty, indent)

	input, err := readInput(filePath)
	if err != nil {
		return err
	}

	value, err := stringify.Decode(jsonc.ToJSON(input))
	if err != nil {
		if filePath == "" {
			return fmt.Errorf("parsing stdin: %w", err)
		}
		return fmt.Errorf("parsing %s: %w", filePath, err)
	}

	text, err := stringify.Stringify(value, &stringify.Options{
		RevisitBudget: cfg.RevisitBudget,
		Rules:         cfg.Redaction,
	})
	if err != nil {
		return err
	}

	output, err := persist.Persist(text, persist.Options{
		Location:    cfg.Output.Location,
		PrettyPrint: cfg.Output.Pretty,
		Indent:      cfg.Output.Indent,
	})
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if plain || !interactive {
		return printPlain(output, interactive)
	}
	return runViewer(output, cfg, logOutput)
}

// loadConfig resolves the configuration: an explicit --config path
// wins, then the environment variable, then built-in defaults.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	if os.Getenv(config.EnvVariable) != "" {
		return config.Load()
	}
	return config.Default(), nil
}

// applyFlagOverrides layers explicitly-set flags over the loaded
// configuration. Only flags the user changed are applied, so config
// file values survive when the flag is left at its default.
func applyFlagOverrides(
	cfg *config.Config,
	flagSet *pflag.FlagSet,
	budget int,
	redactKeys []string,
	expandDepth int,
	noTypes bool,
	showTemplateContent bool,
	outLocation string,
	pretty bool,
	indent int,
) {
	if flagSet.Changed("budget") {
		cfg.RevisitBudget = budget
	}
	if len(redactKeys) > 0 {
		cfg.Redaction = append(cfg.Redaction, stringify.Redact(redactKeys...)...)
	}
	if flagSet.Changed("expand") {
		cfg.Viewer.ExpandDepth = expandDepth
	}
	if noTypes {
		cfg.Viewer.ShowTypes = false
	}
	if showTemplateContent {
		cfg.Viewer.ShowTemplateContent = true
	}
	if flagSet.Changed("out") {
		cfg.Output.Location = outLocation
	}
	if flagSet.Changed("pretty") {
		cfg.Output.Pretty = pretty
	}
	if flagSet.Changed("indent") {
		cfg.Output.Indent = indent
	}
}

// readInput loads the document from the given path, or from stdin
// when the path is empty or "-".
func readInput(filePath string) ([]byte, error) {
	if filePath == "" || filePath == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

// printPlain writes the serialized text to stdout, highlighted when
// stdout is a terminal.
func printPlain(text string, highlighted bool) error {
	if highlighted {
		text = treeview.HighlightJSON(text)
	}
	_, err := fmt.Println(text)
	return err
}

// runViewer opens the interactive tree view. Background logging is
// routed through a treeview.LogHandler so records surface in the
// status bar instead of corrupting the alt-screen display; --log-output
// additionally captures every record to a JSONL file.
func runViewer(text string, cfg *config.Config, logOutput string) error {
	options := treeview.Options{
		Rules:               cfg.Viewer.Redaction,
		ShowTemplateContent: cfg.Viewer.ShowTemplateContent,
		ExpandDepth:         cfg.Viewer.ExpandDepth,
		ShowTypes:           cfg.Viewer.ShowTypes,
	}

	root, err := treeview.FromJSON(text, options)
	if err != nil {
		return err
	}

	tuiHandler := treeview.NewLogHandler(slog.LevelWarn)
	if logOutput != "" {
		fileHandler, fileCloser, fileErr := openFileLogHandler(logOutput)
		if fileErr != nil {
			return fmt.Errorf("cannot open log file %s: %w", logOutput, fileErr)
		}
		defer fileCloser()
		slog.SetDefault(slog.New(fanoutHandler{tuiHandler, fileHandler}))
	} else {
		slog.SetDefault(slog.New(tuiHandler))
	}

	model := treeview.New(root, text, tui.DetectTheme(), options)
	program := tea.NewProgram(model, tea.WithAltScreen())
	tuiHandler.SetProgram(program)

	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `stringify-view — serialize JSON with cycle and redaction handling,
then browse it in an interactive tree.

Input is read from --file, the first positional argument, or stdin.
JSONC comments and trailing commas are accepted. The document is
re-serialized through the extended stringifier, which bounds circular
references, redacts configured keys before their values are read, and
records the path where every shared structure was first seen.

Configuration is read from the YAML file named by $%s,
or --config. Flags override the file.

Usage:
  stringify-view [flags] [file]

Examples:
  # Browse a file interactively
  stringify-view data.json

  # Redact keys and cap cycle re-expansion
  stringify-view --redact password --redact token --budget 0 data.json

  # Serialize from stdin to a pretty-printed, gzipped file
  cat data.jsonc | stringify-view --out build/data.json.gz --pretty

Flags:
`, config.EnvVariable)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. Returns the handler, a cleanup function to close
// the file, and any error. The file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
