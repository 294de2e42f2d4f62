package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	badgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true)
	titleStyle = lipgloss.NewStyle().Faint(true)
)

// canvasSize is the viewport the diagram renders into: the full window
// minus the status line.
func (m model) canvasSize() (int, int) {
	return max(m.width, 1), max(m.height-1, 1)
}

func (m model) View() string {
	w, h := m.canvasSize()
	canvas := m.renderCanvas(w, h)
	m.drawOverlays(canvas)

	var sb strings.Builder
	sb.WriteString(canvas.String())
	sb.WriteString(m.statusView())
	return sb.String()
}

func modeBadge(mode Mode) string {
	label, bg := " NORMAL ", "4"
	switch mode {
	case ModeInsert:
		label, bg = " INSERT ", "2"
	case ModeLeader:
		label, bg = " LEADER ", "3"
	case ModeResize:
		label, bg = " RESIZE ", "5"
	case ModeHelp:
		label, bg = " HELP ", "6"
	case ModeMenu:
		label, bg = " MENU ", "7"
	}
	return badgeStyle.Background(lipgloss.Color(bg)).Render(label)
}

// statusView lays out the one-line status bar: mode badge and transient
// message on the left, the diagram title on the right.
func (m model) statusView() string {
	left := modeBadge(m.mode) + " | " + m.status
	title := titleStyle.Render(" " + m.title + " ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(title)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + title
}
