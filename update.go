package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/fap/internal/activate"
	"github.com/LFroesch/fap/internal/command"
	"github.com/LFroesch/fap/internal/listing"
	"github.com/LFroesch/fap/internal/logger"
)

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("fap")
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Pending counts and prefixes survive a resize
		return m, m.reconcileResize(msg.Width, msg.Height)

	case fatalErrMsg:
		return m.fail(msg.err)

	case tea.KeyMsg:
		if m.mode == modeSearch {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg.String())
	}

	return m, nil
}

func (m *model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.cancelSearch()
		return m, nil
	case "enter":
		m.finishSearch(m.searchInput.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *model) handleKey(key string) (tea.Model, tea.Cmd) {
	cmd, ok := m.parser.Feed(key)
	if !ok {
		return m, nil
	}

	m.statusMsg = ""
	if command.Dispatch(m.view, cmd) {
		return m, nil
	}

	switch cmd.Op {
	case command.OpActivate:
		return m.activate()
	case command.OpAccept:
		return m.accept()
	case command.OpAbort:
		m.result = m.opts.LaunchDir
		return m, tea.Quit
	case command.OpSearch:
		return m, m.startSearch()
	case command.OpNextMatch:
		m.jumpToMatch(cmd.Count)
	case command.OpPrevMatch:
		m.jumpToMatch(-cmd.Count)
	case command.OpYank:
		m.copyPath(m.currentRow())
	}
	return m, nil
}

// activate runs enter on the row under the cursor. Launch failures are shown
// in the status line; anything else ends the session.
func (m *model) activate() (tea.Model, tea.Cmd) {
	row := m.currentRow()
	res, err := m.activator.Activate(row)

	var launchErr *activate.LaunchError
	if errors.As(err, &launchErr) {
		logger.Warn("Failed to launch %s: %v", launchErr.Path, launchErr.Err)
		m.statusMsg = launchErr.Error()
		return m, nil
	}
	if err != nil {
		return m.fail(err)
	}

	switch res.Outcome {
	case activate.OutcomeNavigated:
		m.enterDir(res.Dir, res.Listing)
	case activate.OutcomeLaunched:
		m.statusMsg = fmt.Sprintf("launched %s", filepath.Base(row.Target))
	case activate.OutcomeOpened:
		m.statusMsg = fmt.Sprintf("opened %s", filepath.Base(row.Target))
	case activate.OutcomeIgnored:
		m.statusMsg = fmt.Sprintf("ignored %s", filepath.Base(row.Target))
	}
	return m, nil
}

// accept ends the session with the directory being browsed
func (m *model) accept() (tea.Model, tea.Cmd) {
	if !utf8.ValidString(m.currentDir) {
		return m.fail(fmt.Errorf("cannot print %q: %w", m.currentDir, listing.ErrInvalidData))
	}
	m.result = m.currentDir
	return m, tea.Quit
}

func (m *model) fail(err error) (tea.Model, tea.Cmd) {
	logger.Error("Session ended: %v", err)
	m.err = err
	return m, tea.Quit
}
