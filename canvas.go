package main

import "strings"

// Canvas is a rune grid the diagram renders into. The same grid backs the
// live view, the text export, and the clipboard copy, so nothing here may
// emit ANSI sequences.
type Canvas struct {
	width  int
	height int
	grid   [][]rune
}

func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	grid := make([][]rune, height)
	for y := range grid {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		grid[y] = row
	}
	return &Canvas{width: width, height: height, grid: grid}
}

func (c *Canvas) Set(x, y int, ch rune) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.grid[y][x] = ch
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.grid {
		sb.WriteString(string(row))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (c *Canvas) drawNode(n *Node) {
	switch n.Shape {
	case ShapeDiamond:
		c.drawDiamond(n)
	case ShapeText:
		c.drawTextNode(n)
	case ShapeFrame:
		c.drawFrame(n)
	default:
		c.drawBox(n)
	}
}

func (c *Canvas) drawRect(x1, y1, x2, y2 int, selected bool) {
	corner, horiz, vert := '+', '-', '|'
	if selected {
		corner, horiz, vert = '#', '=', '#'
	}
	c.Set(x1, y1, corner)
	c.Set(x2, y1, corner)
	c.Set(x1, y2, corner)
	c.Set(x2, y2, corner)
	for x := x1 + 1; x < x2; x++ {
		c.Set(x, y1, horiz)
		c.Set(x, y2, horiz)
	}
	for y := y1 + 1; y < y2; y++ {
		c.Set(x1, y, vert)
		c.Set(x2, y, vert)
	}
}

func (c *Canvas) drawBox(n *Node) {
	x2 := n.X + n.Width - 1
	y2 := n.Y + n.Height - 1
	c.drawRect(n.X, n.Y, x2, y2, n.Selected)

	availW := n.Width - 2
	availH := n.Height - 2
	if availW <= 0 || availH <= 0 {
		return
	}
	lines := wrapText(n.Text, availW)
	startY := n.Y + 1 + max(availH-len(lines), 0)/2
	if len(lines) > availH {
		lines = lines[:availH]
	}
	for i, line := range lines {
		ty := startY + i
		if ty <= n.Y || ty >= y2 {
			continue
		}
		startX := n.X + 1 + max(availW-len(line), 0)/2
		for j, ch := range []rune(line) {
			tx := startX + j
			if tx > n.X && tx < x2 {
				c.Set(tx, ty, ch)
			}
		}
	}
}

func (c *Canvas) drawDiamond(n *Node) {
	x2 := n.X + n.Width - 1
	y2 := n.Y + n.Height - 1
	cx := n.X + n.Width/2
	cy := n.Y + n.Height/2

	point, rising, falling := '+', '/', '\\'
	if n.Selected {
		point, rising, falling = '#', '#', '#'
	}
	c.drawLine(cx, n.Y, x2, cy, rising)
	c.drawLine(x2, cy, cx, y2, falling)
	c.drawLine(cx, y2, n.X, cy, rising)
	c.drawLine(n.X, cy, cx, n.Y, falling)

	c.Set(cx, n.Y, point)
	c.Set(cx, y2, point)
	c.Set(n.X, cy, point)
	c.Set(x2, cy, point)

	availW := max(n.Width-6, 1)
	availH := max(n.Height-2, 1)
	lines := wrapText(n.Text, availW)
	startY := n.Y + 1 + max(availH-len(lines), 0)/2
	if len(lines) > availH {
		lines = lines[:availH]
	}
	for i, line := range lines {
		ty := startY + i
		startX := n.X + max(n.Width-len(line), 0)/2
		for j, ch := range []rune(line) {
			tx := startX + j
			if ty > n.Y && ty < y2 && tx > n.X+1 && tx < x2-1 {
				c.Set(tx, ty, ch)
			}
		}
	}
}

func (c *Canvas) drawTextNode(n *Node) {
	lines := wrapText(n.Text, n.Width)
	startY := n.Y + max(n.Height-len(lines), 0)/2
	if len(lines) > n.Height {
		lines = lines[:n.Height]
	}
	for i, line := range lines {
		ty := startY + i
		startX := n.X + max(n.Width-len(line), 0)/2
		for j, ch := range []rune(line) {
			c.Set(startX+j, ty, ch)
		}
	}
	if n.Selected {
		c.Set(max(n.X-1, 0), n.Y, '[')
		c.Set(n.X+n.Width, n.Y+n.Height-1, ']')
	}
}

// drawFrame draws a box outline with the first wrapped text line as a
// border title. The interior is left untouched so framed nodes show
// through.
func (c *Canvas) drawFrame(n *Node) {
	x2 := n.X + n.Width - 1
	y2 := n.Y + n.Height - 1
	c.drawRect(n.X, n.Y, x2, y2, n.Selected)

	lines := wrapText(n.Text, max(n.Width-4, 1))
	if len(lines) == 0 || lines[0] == "" {
		return
	}
	c.Set(n.X+1, n.Y, ' ')
	tx := n.X + 2
	for _, ch := range lines[0] {
		if tx >= x2 {
			break
		}
		c.Set(tx, n.Y, ch)
		tx++
	}
	if tx < x2 {
		c.Set(tx, n.Y, ' ')
	}
}

// drawLine plots a Bresenham line, skipping both endpoints so diamond
// corner glyphs stay clean.
func (c *Canvas) drawLine(x1, y1, x2, y2 int, ch rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy
	x, y := x1, y1
	for {
		if !(x == x1 && y == y1) && !(x == x2 && y == y2) {
			c.Set(x, y, ch)
		}
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (c *Canvas) drawConnection(nodes []Node, conn *Connection, selected bool) {
	from := findNode(nodes, conn.FromID)
	to := findNode(nodes, conn.ToID)
	if from == nil || to == nil {
		return
	}
	x1 := from.X + conn.FromOffset[0]
	y1 := from.Y + conn.FromOffset[1]
	x2 := to.X + conn.ToOffset[0]
	y2 := to.Y + conn.ToOffset[1]

	// Pull the arrowhead one cell outward so it sits against the target
	// border instead of on it.
	if conn.HasArrow {
		switch {
		case conn.ToOffset[1] == 0:
			y2 = max(y2-1, 0)
		case conn.ToOffset[1] == to.Height-1:
			y2++
		case conn.ToOffset[0] == 0:
			x2 = max(x2-1, 0)
		case conn.ToOffset[0] == to.Width-1:
			x2++
		}
	}

	verticalFirst := conn.FromOffset[1] == 0 || conn.FromOffset[1] == from.Height-1
	c.drawRoute(x1, y1, x2, y2, conn.HasArrow, selected, verticalFirst)
}

func (c *Canvas) drawPartialConnection(from *Node, offset [2]int, targetX, targetY int) {
	x1 := from.X + offset[0]
	y1 := from.Y + offset[1]
	verticalFirst := offset[1] == 0 || offset[1] == from.Height-1
	c.drawRoute(x1, y1, targetX, targetY, true, true, verticalFirst)
}

// drawRoute draws an orthogonal three-segment route. A route leaving a top
// or bottom anchor goes vertical-horizontal-vertical through the midpoint
// row; otherwise horizontal-vertical-horizontal through the midpoint
// column.
func (c *Canvas) drawRoute(x1, y1, x2, y2 int, arrow, highlighted, verticalFirst bool) {
	horiz, vert, join, start := '-', '|', '+', 'o'
	if highlighted {
		horiz, vert, join, start = '=', '#', '#', '@'
	}

	midY := (y1 + y2) / 2
	midX := (x1 + x2) / 2

	if verticalFirst {
		for y := min(y1, midY); y <= max(y1, midY); y++ {
			c.Set(x1, y, vert)
		}
		for x := min(x1, x2); x <= max(x1, x2); x++ {
			c.Set(x, midY, horiz)
		}
		for y := min(midY, y2); y <= max(midY, y2); y++ {
			c.Set(x2, y, vert)
		}
		if x1 != x2 {
			c.Set(x1, midY, join)
			c.Set(x2, midY, join)
		}
	} else {
		for x := min(x1, midX); x <= max(x1, midX); x++ {
			c.Set(x, y1, horiz)
		}
		for y := min(y1, y2); y <= max(y1, y2); y++ {
			c.Set(midX, y, vert)
		}
		for x := min(midX, x2); x <= max(midX, x2); x++ {
			c.Set(x, y2, horiz)
		}
		if y1 != y2 {
			c.Set(midX, y1, join)
			c.Set(midX, y2, join)
		}
	}

	c.Set(x1, y1, start)

	if !arrow {
		c.Set(x2, y2, start)
		return
	}
	var head rune
	if verticalFirst {
		if y2 != midY {
			if y1 < y2 {
				head = 'v'
			} else {
				head = '^'
			}
		} else if x1 < x2 {
			head = '>'
		} else {
			head = '<'
		}
	} else {
		if x2 != midX {
			if x1 < x2 {
				head = '>'
			} else {
				head = '<'
			}
		} else if y1 < y2 {
			head = 'v'
		} else {
			head = '^'
		}
	}
	c.Set(x2, y2, head)
}

// renderCanvas draws the whole diagram into a fresh grid, shifting world
// coordinates by the camera offset. The model itself is never mutated, so
// the same state renders at the live viewport size and again at the export
// width.
func (m model) renderCanvas(width, height int) *Canvas {
	c := NewCanvas(width, height)

	nodes := make([]Node, len(m.nodes))
	copy(nodes, m.nodes)
	for i := range nodes {
		nodes[i].X = max(nodes[i].X-m.cameraX, 0)
		nodes[i].Y = max(nodes[i].Y-m.cameraY, 0)
	}

	for i := range nodes {
		c.drawNode(&nodes[i])
	}
	for i := range m.connections {
		c.drawConnection(nodes, &m.connections[i], i == m.selectedConn)
	}
	if m.partial != nil {
		if from := findNode(nodes, m.partial.FromID); from != nil {
			targetX := max(m.partial.CurrentX-m.cameraX, 0)
			targetY := max(m.partial.CurrentY-m.cameraY, 0)
			c.drawPartialConnection(from, m.partial.FromOffset, targetX, targetY)
		}
	}
	return c
}
