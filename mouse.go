package main

import tea "github.com/charmbracelet/bubbletea"

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeHelp {
		return m, nil
	}

	if m.mode == ModeMenu {
		if m.menuMouse(msg) {
			return m, nil
		}
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight {
		m.mode = ModeMenu
		m.menuX = msg.X
		m.menuY = msg.Y
		m.menuIndex = 0
		return m, nil
	}

	worldX := max(msg.X+m.cameraX, 0)
	worldY := max(msg.Y+m.cameraY, 0)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.pressAt(worldX, worldY)
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		m.dragTo(worldX, worldY)
	case msg.Action == tea.MouseActionRelease:
		m.releaseAt(worldX, worldY)
	}
	return m, nil
}

// menuMouse routes mouse input while the context menu is open. It returns
// false only for a right press, which falls through to reopen the menu at
// the new position.
func (m *model) menuMouse(msg tea.MouseMsg) bool {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight {
		return false
	}

	x, y, w, h := m.menuRect()
	inside := msg.X >= x && msg.X < x+w && msg.Y >= y && msg.Y < y+h
	if !inside {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.mode = ModeNormal
			m.clearPointerState()
		}
		return true
	}

	row := msg.Y - y - 1
	if row < 0 || row >= len(menuItems) || isMenuSeparator(row) {
		return true
	}
	m.menuIndex = row
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.activateMenuItem(row)
	}
	return true
}

// menuRect places the context menu at its anchor, pulled back so the whole
// box stays on the canvas.
func (m model) menuRect() (int, int, int, int) {
	w := menuWidth
	h := len(menuItems) + 2
	canvasW, canvasH := m.canvasSize()
	x := m.menuX
	if x+w > canvasW {
		x = max(canvasW-w, 0)
	}
	y := m.menuY
	if y+h > canvasH {
		y = max(canvasH-h, 0)
	}
	return x, y, w, h
}

func (m *model) clearPointerState() {
	m.dragID = -1
	m.mouseResizeID = -1
	m.partial = nil
}

// pressAt starts a pointer gesture at a world position: resize from a
// bottom-right corner, a connector from any other border cell, a drag from
// the body, or connection selection on empty ground.
func (m *model) pressAt(x, y int) {
	m.clearPointerState()

	for i := len(m.nodes) - 1; i >= 0; i-- {
		n := &m.nodes[i]
		if !n.Contains(x, y) {
			continue
		}
		switch {
		case x == n.X+n.Width-1 && y == n.Y+n.Height-1:
			m.mouseResizeID = n.ID
		case x == n.X || x == n.X+n.Width-1 || y == n.Y || y == n.Y+n.Height-1:
			m.partial = &PartialConnection{
				FromID:     n.ID,
				FromOffset: snapAnchor(n, x, y),
				CurrentX:   x,
				CurrentY:   y,
			}
		default:
			m.dragID = n.ID
			m.dragOffsetX = x - n.X
			m.dragOffsetY = y - n.Y
			m.selectOnly(n.ID)
			moved := m.nodes[i]
			m.nodes = append(m.nodes[:i], m.nodes[i+1:]...)
			m.nodes = append(m.nodes, moved)
		}
		return
	}

	m.mode = ModeNormal
	m.selectedConn = -1
	for i := range m.nodes {
		m.nodes[i].Selected = false
	}
	for i := len(m.connections) - 1; i >= 0; i-- {
		if m.connections[i].Contains(x, y, m.nodes) {
			m.selectedConn = i
			m.status = "Connection selected | 'a': Arrow | 'Del': Remove"
			break
		}
	}
}

func (m *model) dragTo(x, y int) {
	if m.partial != nil {
		m.partial.CurrentX = x
		m.partial.CurrentY = y
		return
	}
	if m.mouseResizeID >= 0 {
		if n := findNode(m.nodes, m.mouseResizeID); n != nil {
			n.Width = max(x-n.X+1, minNodeWidth)
			n.Height = max(y-n.Y+1, 3)
		}
		return
	}
	if m.dragID >= 0 {
		if n := findNode(m.nodes, m.dragID); n != nil {
			canvasW, canvasH := m.canvasSize()
			n.X = min(max(x-m.dragOffsetX, 0), max(canvasW-n.Width, 0))
			n.Y = min(max(y-m.dragOffsetY, 0), max(canvasH-n.Height, 0))
		}
	}
}

// releaseAt finishes the active gesture: a partial connection dropped on
// another node commits an arrowed connection to its nearest edge, and a
// completed drag opens the node for editing.
func (m *model) releaseAt(x, y int) {
	if m.partial != nil {
		for i := range m.nodes {
			n := &m.nodes[i]
			if n.ID == m.partial.FromID || !n.Contains(x, y) {
				continue
			}
			m.connections = append(m.connections, Connection{
				FromID:     m.partial.FromID,
				FromOffset: m.partial.FromOffset,
				ToID:       n.ID,
				ToOffset:   nearestAnchor(n, x, y),
				HasArrow:   true,
			})
			break
		}
	} else if m.dragID >= 0 {
		m.mode = ModeInsert
		m.insertID = m.dragID
	}
	m.clearPointerState()
}
