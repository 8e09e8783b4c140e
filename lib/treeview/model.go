// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package treeview

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dwkns/stringify-and-view/lib/tui"
)

// chromeRows is the vertical space taken by the header and status bar.
const chromeRows = 2

// Model is the top-level bubbletea model for the tree viewer.
type Model struct {
	root    *Node
	rawText string
	theme   tui.Theme
	keys    KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// rows is the flattened list of visible nodes; cursor indexes
	// into it and scroll is the first visible row.
	rows   []*Node
	cursor int
	scroll int

	showTypes bool

	// Raw view state. Highlighting is computed on first use; large
	// documents make it noticeably expensive.
	rawView     bool
	rawLines    []string
	rawScroll   int
	highlighted bool

	search SearchModel

	// Status bar notice (clipboard feedback or a routed log record).
	notice      string
	noticeLevel slog.Level

	totalNodes int
}

// New builds the viewer model. rawJSON is the serialized text backing
// the tree, shown verbatim (highlighted) in the raw view.
func New(root *Node, rawJSON string, theme tui.Theme, options Options) Model {
	model := Model{
		root:      root,
		rawText:   rawJSON,
		theme:     theme,
		keys:      DefaultKeyMap,
		showTypes: options.ShowTypes,
		search:    NewSearchModel(),
	}
	root.Walk(func(*Node) { model.totalNodes++ })
	model.refresh()
	return model
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the visible row list after any expansion change
// and clamps the cursor and scroll into range.
func (model *Model) refresh() {
	model.rows = model.rows[:0]
	model.flatten(model.root)
	if model.cursor >= len(model.rows) {
		model.cursor = len(model.rows) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	model.ensureVisible()
}

func (model *Model) flatten(node *Node) {
	model.rows = append(model.rows, node)
	if !node.Expanded {
		return
	}
	for _, child := range node.Children {
		model.flatten(child)
	}
}

func (model *Model) bodyHeight() int {
	height := model.height - chromeRows
	if height < 1 {
		height = 1
	}
	return height
}

func (model *Model) ensureVisible() {
	if model.cursor < model.scroll {
		model.scroll = model.cursor
	}
	if model.cursor >= model.scroll+model.bodyHeight() {
		model.scroll = model.cursor - model.bodyHeight() + 1
	}
	if model.scroll < 0 {
		model.scroll = 0
	}
}

// Current returns the node under the cursor.
func (model Model) Current() *Node {
	if len(model.rows) == 0 {
		return nil
	}
	return model.rows[model.cursor]
}

// Update implements tea.Model.
func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		model.width = msg.Width
		model.height = msg.Height
		model.ready = true
		model.ensureVisible()
		return model, nil

	case clipboardFadeMsg, logRecordFadeMsg:
		model.notice = ""
		return model, nil

	case logRecordMsg:
		model.notice = msg.Summary
		model.noticeLevel = msg.Level
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{}
		})

	case tea.KeyMsg:
		if model.search.Active {
			return model.updateSearchInput(msg)
		}
		return model.updateKeys(msg)
	}
	return model, nil
}

func (model Model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		model.search.Clear()
	case tea.KeyEnter:
		model.search.Active = false
		if match := model.search.Current(); match != nil {
			model.jumpTo(match)
		}
	case tea.KeyBackspace:
		if model.search.HandleBackspace() {
			model.search.Recompute(model.root)
		}
	case tea.KeyRunes, tea.KeySpace:
		runes := msg.Runes
		if msg.Type == tea.KeySpace && len(runes) == 0 {
			runes = []rune{' '}
		}
		for _, character := range runes {
			model.search.HandleRune(character)
		}
		model.search.Recompute(model.root)
	case tea.KeyCtrlC:
		return model, tea.Quit
	}
	return model, nil
}

func (model Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := model.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return model, tea.Quit

	case key.Matches(msg, keys.Up):
		model.moveCursor(-1)
	case key.Matches(msg, keys.Down):
		model.moveCursor(1)
	case key.Matches(msg, keys.PageUp):
		model.moveCursor(-model.bodyHeight())
	case key.Matches(msg, keys.PageDown):
		model.moveCursor(model.bodyHeight())
	case key.Matches(msg, keys.Home):
		model.setCursor(0)
	case key.Matches(msg, keys.End):
		model.setCursor(len(model.rows) - 1)

	case key.Matches(msg, keys.Collapse):
		model.collapseOrAscend()
	case key.Matches(msg, keys.Expand):
		if node := model.Current(); node != nil && !node.Leaf() {
			node.Expanded = true
			model.refresh()
		}
	case key.Matches(msg, keys.Toggle):
		if node := model.Current(); node != nil && !node.Leaf() {
			node.Expanded = !node.Expanded
			model.refresh()
		}
	case key.Matches(msg, keys.ExpandAll):
		model.root.SetExpandedAll(true)
		model.refresh()
	case key.Matches(msg, keys.CollapseAll):
		model.root.SetExpandedAll(false)
		model.root.Expanded = true
		model.setCursor(0)
		model.refresh()

	case key.Matches(msg, keys.ToggleTypes):
		model.showTypes = !model.showTypes
	case key.Matches(msg, keys.RawView):
		model.toggleRawView()

	case key.Matches(msg, keys.CopyPath):
		if node := model.Current(); node != nil {
			model.notice = "Copied " + node.Path
			model.noticeLevel = slog.LevelInfo
			return model, copyToClipboard(node.Path)
		}

	case key.Matches(msg, keys.SearchActivate):
		model.search.Active = true
	case key.Matches(msg, keys.SearchClear):
		model.search.Clear()
	case key.Matches(msg, keys.SearchNext):
		if match := model.search.Next(); match != nil {
			model.jumpTo(match)
		}
	case key.Matches(msg, keys.SearchPrevious):
		if match := model.search.Previous(); match != nil {
			model.jumpTo(match)
		}
	}
	return model, nil
}

func (model *Model) moveCursor(delta int) {
	if model.rawView {
		model.rawScroll += delta
		maximum := len(model.rawLines) - model.bodyHeight()
		if model.rawScroll > maximum {
			model.rawScroll = maximum
		}
		if model.rawScroll < 0 {
			model.rawScroll = 0
		}
		return
	}
	model.setCursor(model.cursor + delta)
}

func (model *Model) setCursor(position int) {
	if position < 0 {
		position = 0
	}
	if position > len(model.rows)-1 {
		position = len(model.rows) - 1
	}
	model.cursor = position
	model.ensureVisible()
}

// collapseOrAscend collapses the current container, or moves the
// cursor to the parent when the node is a leaf or already collapsed.
func (model *Model) collapseOrAscend() {
	node := model.Current()
	if node == nil {
		return
	}
	if node.Expanded && !node.Leaf() {
		node.Expanded = false
		model.refresh()
		return
	}
	if parent := node.Parent(); parent != nil {
		for index, row := range model.rows {
			if row == parent {
				model.setCursor(index)
				return
			}
		}
	}
}

// jumpTo reveals and selects a node anywhere in the tree.
func (model *Model) jumpTo(node *Node) {
	node.RevealAncestors()
	model.refresh()
	for index, row := range model.rows {
		if row == node {
			model.setCursor(index)
			return
		}
	}
}

func (model *Model) toggleRawView() {
	model.rawView = !model.rawView
	if model.rawView && !model.highlighted {
		model.rawLines = strings.Split(HighlightJSON(model.rawText), "\n")
		model.highlighted = true
	}
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "loading..."
	}

	var view strings.Builder
	view.WriteString(model.renderHeader())
	view.WriteByte('\n')
	if model.rawView {
		view.WriteString(model.renderRaw())
	} else {
		view.WriteString(model.renderTree())
	}
	view.WriteByte('\n')
	view.WriteString(model.renderStatus())
	return view.String()
}

func (model Model) renderHeader() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
	mode := "tree"
	if model.rawView {
		mode = "raw"
	}
	header := fmt.Sprintf(" stringify-view · %d nodes · %s", model.totalNodes, mode)
	return ansi.Truncate(style.Render(header), model.width, "…")
}

func (model Model) renderTree() string {
	height := model.bodyHeight()
	lines := make([]string, 0, height)
	for row := model.scroll; row < len(model.rows) && len(lines) < height; row++ {
		lines = append(lines, model.renderRow(model.rows[row], row == model.cursor))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	body := strings.Join(lines, "\n")
	scrollbar := tui.RenderScrollbar(model.theme, height, len(model.rows), height, model.scroll)
	return lipgloss.JoinHorizontal(lipgloss.Top, body, scrollbar)
}

func (model Model) renderRow(node *Node, selected bool) string {
	indent := strings.Repeat("  ", node.Depth)

	glyph := "  "
	if !node.Leaf() {
		if node.Expanded {
			glyph = "▾ "
		} else {
			glyph = "▸ "
		}
	}

	var segments []string
	if node.Key != "" {
		keyStyle := lipgloss.NewStyle().Foreground(model.theme.KeyForeground)
		segments = append(segments, keyStyle.Render(node.Key)+":")
	} else {
		rootStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
		segments = append(segments, rootStyle.Render(node.Path))
	}

	if node.Leaf() && node.Value != "" {
		segments = append(segments, model.valueStyle(node).Render(node.Value))
		if model.showTypes && !node.Marker {
			labelStyle := lipgloss.NewStyle().Foreground(model.theme.TypeLabelForeground)
			segments = append(segments, labelStyle.Render(node.Label()))
		}
	} else {
		// Containers always carry their label; it doubles as the
		// collapsed summary (object{3}, array[12]).
		labelStyle := lipgloss.NewStyle().Foreground(model.theme.TypeLabelForeground)
		segments = append(segments, labelStyle.Render(node.Label()))
	}

	line := indent + glyph + strings.Join(segments, " ")
	width := model.width - 1 // scrollbar column
	if width < 1 {
		width = 1
	}
	line = ansi.Truncate(line, width, "…")

	if selected {
		style := lipgloss.NewStyle().
			Background(model.theme.SelectedBackground).
			Foreground(model.theme.SelectedForeground).
			Width(width)
		return style.Render(ansi.Strip(line))
	}
	if model.search.Current() == node {
		style := lipgloss.NewStyle().
			Background(model.theme.SearchHighlightBackground).
			Width(width)
		return style.Render(ansi.Strip(line))
	}
	return line
}

func (model Model) valueStyle(node *Node) lipgloss.Style {
	theme := model.theme
	if node.Marker {
		return lipgloss.NewStyle().Foreground(theme.MarkerForeground)
	}
	switch node.Kind.String() {
	case "string":
		return lipgloss.NewStyle().Foreground(theme.StringForeground)
	case "number":
		return lipgloss.NewStyle().Foreground(theme.NumberForeground)
	case "boolean":
		return lipgloss.NewStyle().Foreground(theme.BoolForeground)
	case "null":
		return lipgloss.NewStyle().Foreground(theme.NullForeground)
	default:
		return lipgloss.NewStyle().Foreground(theme.NormalText)
	}
}

func (model Model) renderRaw() string {
	height := model.bodyHeight()
	lines := make([]string, 0, height)
	for row := model.rawScroll; row < len(model.rawLines) && len(lines) < height; row++ {
		lines = append(lines, ansi.Truncate(model.rawLines[row], model.width, "…"))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (model Model) renderStatus() string {
	theme := model.theme

	if model.search.Active {
		style := lipgloss.NewStyle().Foreground(theme.NormalText)
		status := fmt.Sprintf(" /%s", model.search.Input)
		if model.search.Input != "" {
			status += fmt.Sprintf("  (%d/%d)", model.search.MatchIndex(), model.search.MatchCount())
		}
		return ansi.Truncate(style.Render(status), model.width, "…")
	}

	if model.notice != "" {
		color := theme.PathForeground
		if model.noticeLevel >= slog.LevelError {
			color = theme.MarkerForeground
		}
		style := lipgloss.NewStyle().Foreground(color)
		return ansi.Truncate(style.Render(" "+model.notice), model.width, "…")
	}

	pathStyle := lipgloss.NewStyle().Foreground(theme.PathForeground)
	helpStyle := lipgloss.NewStyle().Foreground(theme.HelpText)

	path := ""
	if node := model.Current(); node != nil {
		path = node.Path
	}
	help := "j/k move · h/l fold · / search · c copy path · t types · r raw · q quit"
	status := pathStyle.Render(" "+path) + helpStyle.Render("  "+help)
	return ansi.Truncate(status, model.width, "…")
}
