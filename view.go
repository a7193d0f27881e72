package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/LFroesch/fap/internal/listing"
)

var (
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pathStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("105"))
	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	slashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	linkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC0CB"))
	fileStyle   = lipgloss.NewStyle()
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	cursor := m.view.Cursor()
	for i := 0; i < m.view.Height(); i++ {
		index := m.view.Offset() + i
		if index < len(m.listing) {
			col := -1
			if i == cursor.Row {
				col = cursor.Col
			}
			b.WriteString(ansi.Truncate(renderRow(m.listing[index], col), m.width, ""))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	return b.String()
}

// renderRow styles a row and highlights the grapheme at col; col < 0 means no cursor
func renderRow(row listing.Row, col int) string {
	var clusters []string
	g := uniseg.NewGraphemes(row.Text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	if len(clusters) == 0 {
		if col >= 0 {
			return cursorStyle.Render(" ")
		}
		return ""
	}

	var b strings.Builder
	for i, cluster := range clusters {
		style := clusterStyle(row, i == len(clusters)-1)
		if i == col {
			style = style.Inherit(cursorStyle)
		}
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

func clusterStyle(row listing.Row, last bool) lipgloss.Style {
	switch row.Kind {
	case listing.KindHeader:
		if strings.Trim(row.Text, "=") == "" {
			return ruleStyle
		}
		return pathStyle
	case listing.KindParent, listing.KindSelf:
		if last {
			return linkStyle
		}
		return dirStyle
	case listing.KindDir:
		if last {
			return slashStyle
		}
		return dirStyle
	default:
		return fileStyle
	}
}

// renderStatus draws the reserved bottom rows: a rule, the cursor report and
// the pending command or search prompt.
func (m *model) renderStatus() string {
	cursor := m.view.Cursor()
	lines := []string{
		ruleStyle.Render(strings.Repeat("=", statusRuleWidth)),
		fmt.Sprintf("x: %d, y: %d. cur item len: %d", cursor.Col, cursor.Row, m.currentRow().Width),
	}

	if m.mode == modeSearch {
		lines = append(lines, m.searchInput.View())
	} else {
		last := echoStyle.Render(m.parser.String())
		if m.statusMsg != "" {
			last += " " + statusStyle.Render(m.statusMsg)
		}
		lines = append(lines, last)
	}

	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "")
	}
	return strings.Join(lines, "\n")
}
