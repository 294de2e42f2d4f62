package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case ModeInsert:
			return m.updateInsert(msg)
		case ModeLeader:
			return m.updateLeader(msg)
		case ModeResize:
			return m.updateResize(msg)
		case ModeHelp:
			return m.updateHelp(msg)
		case ModeMenu:
			return m.updateMenu(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.connectFrom = -1
		m.selectedConn = -1
		for i := range m.nodes {
			m.nodes[i].Selected = false
		}
		m.status = "Selection cleared"

	case " ":
		m.mode = ModeLeader

	case "q":
		return m, tea.Quit

	case "i":
		if n := m.selectedNode(); n != nil {
			m.mode = ModeInsert
			m.insertID = n.ID
		}

	case "tab":
		m.cycleSelection(1)

	case "shift+tab":
		m.cycleSelection(-1)

	case "r":
		if n := m.selectedNode(); n != nil {
			m.mode = ModeResize
			m.resizeID = n.ID
			m.status = "Resize Mode: Use +/- to scale, Esc to finish"
		}

	case "delete", "backspace":
		m.deleteSelection()

	case "c":
		if n := m.selectedNode(); n != nil {
			m.connectFrom = n.ID
			m.connectArrow = false
			m.status = fmt.Sprintf("Connector source: %s. Tab to target, Enter to finish.", firstWord(n.Text))
		}

	case "a":
		if m.selectedConn >= 0 && m.selectedConn < len(m.connections) {
			conn := &m.connections[m.selectedConn]
			conn.HasArrow = !conn.HasArrow
			if conn.HasArrow {
				m.status = "Arrow enabled"
			} else {
				m.status = "Arrow disabled"
			}
		} else if n := m.selectedNode(); n != nil {
			m.connectFrom = n.ID
			m.connectArrow = true
			m.status = fmt.Sprintf("Arrow source: %s. Tab to target, Enter to finish.", firstWord(n.Text))
		} else {
			m.status = "Select a node (a) for Arrow or connection (a) to toggle"
		}

	case "enter":
		m.commitConnection()

	case "up", "down", "left", "right":
		m.moveOrPan(msg.String())
	}
	return m, nil
}

func (m model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		for i := range m.nodes {
			m.nodes[i].Selected = false
		}
		return m, nil
	case tea.KeyTab:
		m.mode = ModeNormal
		m.cycleFrom(m.insertID)
		return m, nil
	}

	node := findNode(m.nodes, m.insertID)
	if node == nil {
		m.mode = ModeNormal
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		node.Text += "\n"
	case tea.KeyBackspace:
		if node.Text != "" {
			_, size := utf8.DecodeLastRuneInString(node.Text)
			node.Text = node.Text[:len(node.Text)-size]
		}
	default:
		key := msg.String()
		if utf8.RuneCountInString(key) != 1 {
			return m, nil
		}
		node.Text += key
	}
	if node.Shape == ShapeText {
		fitTextNode(node)
	}
	return m, nil
}

// fitTextNode shrink-wraps a borderless text node to its content so its
// invisible bounds track what is on screen.
func fitTextNode(n *Node) {
	lines := strings.Split(n.Text, "\n")
	widest := 0
	for _, line := range lines {
		if len(line) > widest {
			widest = len(line)
		}
	}
	n.Width = max(widest, minNodeWidth)
	n.Height = max(len(lines), minNodeHeight)
}

func (m model) updateLeader(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.spawnNode(ShapeBox)
	case "d":
		m.spawnNode(ShapeDiamond)
	case "t":
		m.spawnNode(ShapeText)
	case "f":
		m.spawnNode(ShapeFrame)
	case "w":
		m.writeArtifacts()
		m.mode = ModeNormal
	case "c":
		m.copyCanvas()
		m.mode = ModeNormal
	case "h":
		m.mode = ModeHelp
	case "q":
		return m, tea.Quit
	case "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) updateResize(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	node := findNode(m.nodes, m.resizeID)
	if node == nil {
		m.mode = ModeNormal
		return m, nil
	}
	switch msg.String() {
	case "+", "=":
		node.Width += 2
		node.Height++
		m.status = fmt.Sprintf("Resized: %dx%d", node.Width, node.Height)
	case "-", "_":
		node.Width = max(node.Width-2, minNodeWidth)
		node.Height = max(node.Height-1, minNodeHeight)
		m.status = fmt.Sprintf("Resized: %dx%d", node.Width, node.Height)
	case "esc", "enter":
		m.mode = ModeNormal
		m.status = "Resize finished"
	}
	return m, nil
}

func (m model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", " ", "enter":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.menuIndex > 0 {
			m.menuIndex--
			if isMenuSeparator(m.menuIndex) {
				m.menuIndex--
			}
		}
	case "down":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
			if isMenuSeparator(m.menuIndex) {
				m.menuIndex++
			}
		}
	case "enter", " ":
		m.activateMenuItem(m.menuIndex)
	case "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

// activateMenuItem runs the context menu entry at index. Creation entries
// spawn at the menu anchor; the others act on whatever sits under it.
func (m *model) activateMenuItem(index int) {
	worldX := max(m.menuX+m.cameraX, 0)
	worldY := max(m.menuY+m.cameraY, 0)

	switch index {
	case 0:
		m.createNodeAt(ShapeBox, worldX, worldY)
	case 1:
		m.createNodeAt(ShapeDiamond, worldX, worldY)
	case 2:
		m.createNodeAt(ShapeText, worldX, worldY)
	case 3:
		m.createNodeAt(ShapeFrame, worldX, worldY)
	case 5:
		m.startConnectorAt(worldX, worldY, false)
		m.mode = ModeNormal
	case 6:
		m.startConnectorAt(worldX, worldY, true)
		m.mode = ModeNormal
	case 7:
		m.deleteAt(worldX, worldY)
		m.mode = ModeNormal
	default:
		m.mode = ModeNormal
	}
}

// startConnectorAt arms a pending connector from the topmost node under a
// world position.
func (m *model) startConnectorAt(x, y int, arrow bool) {
	for i := len(m.nodes) - 1; i >= 0; i-- {
		if m.nodes[i].Contains(x, y) {
			m.connectFrom = m.nodes[i].ID
			m.connectArrow = arrow
			if arrow {
				m.status = fmt.Sprintf("Arrow source: %s. Tab to target, Enter to finish.", firstWord(m.nodes[i].Text))
			} else {
				m.status = fmt.Sprintf("Connector source: %s. Tab to target, Enter to finish.", firstWord(m.nodes[i].Text))
			}
			return
		}
	}
	m.status = "No node at click position"
}

// deleteAt removes the topmost node under a world position together with
// its connections, or failing that the topmost connection routed through
// the position.
func (m *model) deleteAt(x, y int) {
	for i := len(m.nodes) - 1; i >= 0; i-- {
		if m.nodes[i].Contains(x, y) {
			m.removeNode(i)
			return
		}
	}
	for i := len(m.connections) - 1; i >= 0; i-- {
		if m.connections[i].Contains(x, y, m.nodes) {
			m.connections = append(m.connections[:i], m.connections[i+1:]...)
			switch {
			case m.selectedConn == i:
				m.selectedConn = -1
			case m.selectedConn > i:
				m.selectedConn--
			}
			m.status = "Connection deleted"
			return
		}
	}
}

// commitConnection closes a pending keyboard connector onto the currently
// selected node, picking facing edge anchors from their relative layout.
func (m *model) commitConnection() {
	if m.connectFrom < 0 {
		return
	}
	target := m.selectedNode()
	if target == nil || target.ID == m.connectFrom {
		return
	}
	src := findNode(m.nodes, m.connectFrom)
	if src == nil {
		return
	}
	fromOffset, toOffset := directionalAnchors(src, target)
	m.connections = append(m.connections, Connection{
		FromID:     m.connectFrom,
		FromOffset: fromOffset,
		ToID:       target.ID,
		ToOffset:   toOffset,
		HasArrow:   m.connectArrow,
	})
	m.connectFrom = -1
	m.status = "Keyboard connection created!"
}

// deleteSelection removes the selected connection if one is selected,
// otherwise the selected node with everything attached to it.
func (m *model) deleteSelection() {
	if m.selectedConn >= 0 && m.selectedConn < len(m.connections) {
		m.connections = append(m.connections[:m.selectedConn], m.connections[m.selectedConn+1:]...)
		m.selectedConn = -1
		m.status = "Connection deleted"
		return
	}
	if idx := m.selectedNodeIndex(); idx >= 0 {
		m.removeNode(idx)
	}
}
