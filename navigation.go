package main

import "fmt"

func (m *model) selectedNodeIndex() int {
	for i := range m.nodes {
		if m.nodes[i].Selected {
			return i
		}
	}
	return -1
}

func (m *model) selectedNode() *Node {
	if i := m.selectedNodeIndex(); i >= 0 {
		return &m.nodes[i]
	}
	return nil
}

func (m *model) nodeIndexByID(id int) int {
	for i := range m.nodes {
		if m.nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// selectIndex makes the node at list index i the only selected thing,
// node or connection.
func (m *model) selectIndex(i int) {
	for j := range m.nodes {
		m.nodes[j].Selected = j == i
	}
	m.selectedConn = -1
}

func (m *model) selectOnly(id int) {
	for i := range m.nodes {
		m.nodes[i].Selected = m.nodes[i].ID == id
	}
	m.selectedConn = -1
}

// cycleSelection moves the node selection by step list positions, starting
// from the list edge when nothing is selected.
func (m *model) cycleSelection(step int) {
	if len(m.nodes) == 0 {
		return
	}
	next := 0
	if step < 0 {
		next = len(m.nodes) - 1
	}
	if cur := m.selectedNodeIndex(); cur >= 0 {
		next = (cur + step + len(m.nodes)) % len(m.nodes)
	}
	m.selectIndex(next)
}

// cycleFrom advances the selection from the list position of node id, so
// Tab out of an edit lands on the next shape even though editing does not
// track indices.
func (m *model) cycleFrom(id int) {
	if len(m.nodes) == 0 {
		return
	}
	next := 0
	if idx := m.nodeIndexByID(id); idx >= 0 {
		next = (idx + 1) % len(m.nodes)
	}
	m.selectIndex(next)
}

func (m *model) createNode(shape ShapeType, x, y int) int {
	w, h := defaultShapeSize(shape)
	id := nextNodeID(m.nodes)
	m.nodes = append(m.nodes, Node{
		ID:     id,
		Shape:  shape,
		X:      max(x, 0),
		Y:      max(y, 0),
		Width:  w,
		Height: h,
	})
	m.selectOnly(id)
	return id
}

func (m *model) createNodeAt(shape ShapeType, x, y int) {
	id := m.createNode(shape, x, y)
	m.mode = ModeInsert
	m.insertID = id
}

// spawnNode places a new shape below the most recent node and opens it for
// editing.
func (m *model) spawnNode(shape ShapeType) {
	x, y := 10, 10
	if len(m.nodes) > 0 {
		last := &m.nodes[len(m.nodes)-1]
		x = last.X
		y = last.Y + last.Height + 2
	}
	id := m.createNode(shape, x, y)
	m.mode = ModeInsert
	m.insertID = id
	m.status = "New shape created below previous"
}

// removeNode deletes the node at list index idx along with every
// connection touching it.
func (m *model) removeNode(idx int) {
	id := m.nodes[idx].ID
	m.nodes = append(m.nodes[:idx], m.nodes[idx+1:]...)
	kept := m.connections[:0]
	for _, c := range m.connections {
		if c.FromID != id && c.ToID != id {
			kept = append(kept, c)
		}
	}
	m.connections = kept
	m.selectedConn = -1
	m.status = "Shape and connections deleted"
}

// moveOrPan moves the selected node one cell, or pans the camera when
// nothing is selected.
func (m *model) moveOrPan(key string) {
	if n := m.selectedNode(); n != nil {
		switch key {
		case "up":
			n.Y = max(n.Y-1, 0)
		case "down":
			n.Y++
		case "left":
			n.X = max(n.X-1, 0)
		case "right":
			n.X++
		}
		return
	}
	switch key {
	case "up":
		m.cameraY--
	case "down":
		m.cameraY++
	case "left":
		m.cameraX--
	case "right":
		m.cameraX++
	}
	m.status = fmt.Sprintf("Canvas Pan: %d, %d", m.cameraX, m.cameraY)
}
