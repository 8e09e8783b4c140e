// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package treeview

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clipboardFadeMsg clears the "Copied" notice from the status bar.
type clipboardFadeMsg struct{}

// clipboardFadeDelay is how long the "Copied" notice stays visible.
const clipboardFadeDelay = 2 * time.Second

// copyToClipboard writes text to the system clipboard via the OSC 52
// terminal escape sequence, writing directly to /dev/tty to bypass
// bubbletea's managed output. OSC 52 has no screen effect, so it is
// safe alongside the TUI renderer.
//
// BEL (\x07) terminates the OSC rather than ST (\x1b\\) because BEL is
// a single byte that survives layered terminal environments (SSH,
// tmux, screen) intact. When tmux is detected, the sequence is sent
// both through tmux DCS passthrough (allow-passthrough configurations)
// and directly (set-clipboard configurations); duplicate clipboard
// sets are harmless.
func copyToClipboard(text string) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
			if err != nil {
				return nil
			}
			defer tty.Close()

			encoded := base64.StdEncoding.EncodeToString([]byte(text))
			osc52 := fmt.Sprintf("\x1b]52;c;%s\x07", encoded)

			inTmux := os.Getenv("TMUX") != "" ||
				strings.HasPrefix(os.Getenv("TERM"), "tmux") ||
				strings.HasPrefix(os.Getenv("TERM"), "screen")
			if inTmux {
				fmt.Fprintf(tty, "\x1bPtmux;\x1b%s\x1b\\", osc52)
			}

			tty.WriteString(osc52)
			return nil
		},
		tea.Tick(clipboardFadeDelay, func(time.Time) tea.Msg {
			return clipboardFadeMsg{}
		}),
	)
}
