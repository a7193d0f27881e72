package main

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/LFroesch/fap/internal/listing"
	"github.com/LFroesch/fap/internal/logger"
)

// resizeTextAreaWinOp is the XTWINOPS operation that resizes the terminal in character cells
const resizeTextAreaWinOp = 8

// setWindowSize asks the terminal to resize itself to cols x rows
func setWindowSize(w io.Writer, cols, rows int) tea.Cmd {
	return func() tea.Msg {
		if _, err := io.WriteString(w, ansi.WindowOp(resizeTextAreaWinOp, rows, cols)); err != nil {
			return fatalErrMsg{fmt.Errorf("cannot resize terminal: %w", err)}
		}
		return nil
	}
}

func (m *model) copyPath(row listing.Row) {
	if !row.Navigable() {
		m.statusMsg = "nothing to copy"
		return
	}

	// Use clipboard library for cross-platform support
	if err := clipboard.WriteAll(row.Target); err != nil {
		logger.Warn("Failed to copy %s: %v", row.Target, err)
		m.statusMsg = fmt.Sprintf("Failed to copy: %v", err)
		return
	}
	m.statusMsg = fmt.Sprintf("Copied: %s", row.Target)
}
