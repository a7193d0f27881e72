package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/fap/internal/activate"
	"github.com/LFroesch/fap/internal/command"
	"github.com/LFroesch/fap/internal/config"
	"github.com/LFroesch/fap/internal/listing"
	"github.com/LFroesch/fap/internal/logger"
	"github.com/LFroesch/fap/internal/search"
	"github.com/LFroesch/fap/internal/viewport"
)

// fatalErrMsg ends the session with an error
type fatalErrMsg struct{ err error }

// Terminal geometry constants
const (
	bottomReserved  = 3  // rule, cursor info, command echo
	minTerminalSize = 5  // smallest width and height we let the terminal shrink to
	statusRuleWidth = 24 // width of the rule above the status lines
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
)

type model struct {
	mode        mode
	opts        *config.Options
	currentDir  string
	listing     listing.Listing
	view        *viewport.Viewport
	parser      command.Parser
	activator   *activate.Activator
	searchInput textinput.Model
	matches     *search.Matches
	out         io.Writer // terminal output, used for window operations
	width       int
	height      int
	statusMsg   string
	result      string // directory printed when the session ends
	err         error  // fatal error that ended the session
}

func initialModel(opts *config.Options, launcher activate.Launcher, out io.Writer) (*model, error) {
	builder := listing.Builder{ShowHidden: opts.ShowHidden}
	l, err := builder.Build(opts.StartDir)
	if err != nil {
		logger.Error("Failed to list %s: %v", opts.StartDir, err)
		return nil, err
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.CharLimit = 256
	ti.Width = 40

	m := &model{
		mode:        modeNormal,
		opts:        opts,
		currentDir:  opts.StartDir,
		listing:     l,
		view:        viewport.New(l, 1, l.FirstTarget()),
		activator:   activate.New(builder, launcher),
		searchInput: ti,
		out:         out,
	}
	return m, nil
}

// enterDir swaps in a freshly built listing and puts the cursor back at the start
func (m *model) enterDir(dir string, l listing.Listing) {
	m.currentDir = dir
	m.listing = l
	m.matches = nil
	m.view.Reset(l, l.FirstTarget())
	logger.Info("Entered %s", dir)
}

// currentRow is the row under the cursor
func (m *model) currentRow() listing.Row {
	return m.listing[m.view.Index()]
}

// reconcileResize applies a new terminal size, pushing the terminal back to
// the minimum size when it gets smaller than that.
func (m *model) reconcileResize(width, height int) tea.Cmd {
	var cmd tea.Cmd
	if width < minTerminalSize || height < minTerminalSize {
		width = max(width, minTerminalSize)
		height = max(height, minTerminalSize)
		cmd = setWindowSize(m.out, width, height)
	}

	first := m.width == 0
	m.width = width
	m.height = height
	m.view.Resize(height - bottomReserved)
	if first {
		// the placeholder height scrolled the start row to the top
		m.view.Reset(m.listing, m.listing.FirstTarget())
	}
	return cmd
}

func (m *model) startSearch() tea.Cmd {
	m.mode = modeSearch
	m.searchInput.SetValue("")
	return m.searchInput.Focus()
}

func (m *model) finishSearch(query string) {
	m.mode = modeNormal
	m.searchInput.Blur()
	if query == "" {
		return
	}

	m.matches = search.NewMatches(query, m.listing)
	if i, ok := m.matches.Current(); ok {
		m.view.JumpTo(i)
		return
	}
	m.statusMsg = fmt.Sprintf("no match for %q", query)
}

func (m *model) cancelSearch() {
	m.mode = modeNormal
	m.searchInput.Blur()
}

// jumpToMatch moves n hits through the last search; negative n goes backwards
func (m *model) jumpToMatch(n int) {
	if m.matches == nil {
		m.statusMsg = "no previous search"
		return
	}
	i, ok := m.matches.Next(n)
	if !ok {
		m.statusMsg = fmt.Sprintf("no match for %q", m.matches.Query)
		return
	}
	m.view.JumpTo(i)
}
