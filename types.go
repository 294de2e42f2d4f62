package main

import (
	"encoding/json"
	"fmt"
)

type ShapeType int

const (
	ShapeBox ShapeType = iota
	ShapeDiamond
	ShapeText
	ShapeFrame
)

func (s ShapeType) String() string {
	switch s {
	case ShapeDiamond:
		return "Diamond"
	case ShapeText:
		return "Text"
	case ShapeFrame:
		return "Frame"
	default:
		return "Box"
	}
}

func (s ShapeType) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ShapeType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "Box":
		*s = ShapeBox
	case "Diamond":
		*s = ShapeDiamond
	case "Text":
		*s = ShapeText
	case "Frame":
		*s = ShapeFrame
	default:
		return fmt.Errorf("unknown shape %q", name)
	}
	return nil
}

func defaultShapeSize(shape ShapeType) (int, int) {
	switch shape {
	case ShapeDiamond:
		return 15, 7
	case ShapeText:
		return 10, 1
	case ShapeFrame:
		return 30, 10
	default:
		return 20, 5
	}
}

type Node struct {
	ID       int       `json:"id"`
	Shape    ShapeType `json:"shape"`
	X        int       `json:"x"`
	Y        int       `json:"y"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Text     string    `json:"text"`
	Selected bool      `json:"selected"`
}

func (n *Node) Contains(x, y int) bool {
	return x >= n.X && x < n.X+n.Width && y >= n.Y && y < n.Y+n.Height
}

type Connection struct {
	FromID     int    `json:"from_id"`
	FromOffset [2]int `json:"from_offset"`
	ToID       int    `json:"to_id"`
	ToOffset   [2]int `json:"to_offset"`
	HasArrow   bool   `json:"has_arrow"`
}

// Contains reports whether (x, y) lies on the connection's orthogonal
// route between its two endpoints.
func (c *Connection) Contains(x, y int, nodes []Node) bool {
	from := findNode(nodes, c.FromID)
	to := findNode(nodes, c.ToID)
	if from == nil || to == nil {
		return false
	}
	x1 := from.X + c.FromOffset[0]
	y1 := from.Y + c.FromOffset[1]
	x2 := to.X + c.ToOffset[0]
	y2 := to.Y + c.ToOffset[1]

	if c.FromOffset[1] == 0 || c.FromOffset[1] == from.Height-1 {
		midY := (y1 + y2) / 2
		if x == x1 && y >= min(y1, midY) && y <= max(y1, midY) {
			return true
		}
		if y == midY && x >= min(x1, x2) && x <= max(x1, x2) {
			return true
		}
		if x == x2 && y >= min(midY, y2) && y <= max(midY, y2) {
			return true
		}
	} else {
		midX := (x1 + x2) / 2
		if y == y1 && x >= min(x1, midX) && x <= max(x1, midX) {
			return true
		}
		if x == midX && y >= min(y1, y2) && y <= max(y1, y2) {
			return true
		}
		if y == y2 && x >= min(midX, x2) && x <= max(midX, x2) {
			return true
		}
	}
	return false
}

// PartialConnection is an in-progress pointer-drawn connector. CurrentX
// and CurrentY are in world coordinates.
type PartialConnection struct {
	FromID     int
	FromOffset [2]int
	CurrentX   int
	CurrentY   int
}

type Diagram struct {
	Title       string       `json:"title"`
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
}

type model struct {
	width  int
	height int

	title       string
	nodes       []Node
	connections []Connection

	cameraX int
	cameraY int

	mode      Mode
	insertID  int
	resizeID  int
	menuX     int
	menuY     int
	menuIndex int

	selectedConn int
	connectFrom  int
	connectArrow bool

	partial       *PartialConnection
	dragID        int
	dragOffsetX   int
	dragOffsetY   int
	mouseResizeID int

	status string
	config *Config
}

func findNode(nodes []Node, id int) *Node {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
	}
	return nil
}

func nextNodeID(nodes []Node) int {
	maxID := 0
	for _, n := range nodes {
		if n.ID > maxID {
			maxID = n.ID
		}
	}
	return maxID + 1
}

// snapAnchor maps a border cell to the midpoint anchor of its edge. Top and
// bottom edges win over left and right at the corners.
func snapAnchor(n *Node, worldX, worldY int) [2]int {
	relX := worldX - n.X
	relY := worldY - n.Y
	switch {
	case relY == 0:
		return [2]int{n.Width / 2, 0}
	case relY == n.Height-1:
		return [2]int{n.Width / 2, n.Height - 1}
	case relX == 0:
		return [2]int{0, n.Height / 2}
	default:
		return [2]int{n.Width - 1, n.Height / 2}
	}
}

// nearestAnchor picks the edge-midpoint anchor closest to a point inside
// the node. Ties resolve top, bottom, left, right.
func nearestAnchor(n *Node, worldX, worldY int) [2]int {
	left := worldX - n.X
	right := n.X + n.Width - 1 - worldX
	top := worldY - n.Y
	bottom := n.Y + n.Height - 1 - worldY
	switch min(left, right, top, bottom) {
	case top:
		return [2]int{n.Width / 2, 0}
	case bottom:
		return [2]int{n.Width / 2, n.Height - 1}
	case left:
		return [2]int{0, n.Height / 2}
	default:
		return [2]int{n.Width - 1, n.Height / 2}
	}
}

// directionalAnchors chooses facing edge midpoints for a keyboard-created
// connection based on where the target sits relative to the source.
func directionalAnchors(src, dst *Node) ([2]int, [2]int) {
	switch {
	case dst.Y >= src.Y+src.Height:
		return [2]int{src.Width / 2, src.Height - 1}, [2]int{dst.Width / 2, 0}
	case dst.X >= src.X+src.Width:
		return [2]int{src.Width - 1, src.Height / 2}, [2]int{0, dst.Height / 2}
	case src.Y >= dst.Y+dst.Height:
		return [2]int{src.Width / 2, 0}, [2]int{dst.Width / 2, dst.Height - 1}
	default:
		return [2]int{0, src.Height / 2}, [2]int{dst.Width - 1, dst.Height / 2}
	}
}
