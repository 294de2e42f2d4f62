package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridLines(c *Canvas) []string {
	return strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
}

func TestNewCanvasClampsToOneCell(t *testing.T) {
	c := NewCanvas(0, -2)
	assert.Equal(t, " \n", c.String())
}

func TestCanvasSetIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(-1, 0, 'x')
	c.Set(0, -1, 'x')
	c.Set(3, 0, 'x')
	c.Set(0, 2, 'x')
	assert.Equal(t, "   \n   \n", c.String())
}

func TestDrawBox(t *testing.T) {
	t.Run("empty box", func(t *testing.T) {
		c := NewCanvas(10, 4)
		c.drawNode(&Node{Shape: ShapeBox, X: 0, Y: 0, Width: 10, Height: 4})
		assert.Equal(t, []string{
			"+--------+",
			"|        |",
			"|        |",
			"+--------+",
		}, gridLines(c))
	})

	t.Run("text centers both ways", func(t *testing.T) {
		c := NewCanvas(11, 5)
		c.drawNode(&Node{Shape: ShapeBox, X: 0, Y: 0, Width: 11, Height: 5, Text: "Hi"})
		assert.Equal(t, []string{
			"+---------+",
			"|         |",
			"|   Hi    |",
			"|         |",
			"+---------+",
		}, gridLines(c))
	})

	t.Run("selected box switches glyphs", func(t *testing.T) {
		c := NewCanvas(10, 3)
		c.drawNode(&Node{Shape: ShapeBox, X: 0, Y: 0, Width: 10, Height: 3, Selected: true})
		assert.Equal(t, []string{
			"#========#",
			"#        #",
			"#========#",
		}, gridLines(c))
	})

	t.Run("overflowing text clips inside the border", func(t *testing.T) {
		c := NewCanvas(7, 3)
		c.drawNode(&Node{Shape: ShapeBox, X: 0, Y: 0, Width: 7, Height: 3, Text: "aaaaa bbbbb ccccc"})
		assert.Equal(t, []string{
			"+-----+",
			"|aaaaa|",
			"+-----+",
		}, gridLines(c))
	})

	t.Run("partially off-canvas box clips silently", func(t *testing.T) {
		c := NewCanvas(5, 4)
		c.drawNode(&Node{Shape: ShapeBox, X: 3, Y: 0, Width: 10, Height: 4})
		assert.Equal(t, []string{
			"   +-",
			"   | ",
			"   | ",
			"   +-",
		}, gridLines(c))
	})
}

func TestDrawDiamond(t *testing.T) {
	t.Run("odd diamond is symmetric", func(t *testing.T) {
		c := NewCanvas(7, 5)
		c.drawNode(&Node{Shape: ShapeDiamond, X: 0, Y: 0, Width: 7, Height: 5})
		assert.Equal(t, []string{
			`   +   `,
			` \\ // `,
			`+     +`,
			` // \\ `,
			`   +   `,
		}, gridLines(c))
	})

	t.Run("text sits at the center", func(t *testing.T) {
		c := NewCanvas(7, 5)
		c.drawNode(&Node{Shape: ShapeDiamond, X: 0, Y: 0, Width: 7, Height: 5, Text: "A"})
		assert.Equal(t, "+  A  +", gridLines(c)[2])
	})

	t.Run("selected diamond uses hash edges", func(t *testing.T) {
		c := NewCanvas(7, 5)
		c.drawNode(&Node{Shape: ShapeDiamond, X: 0, Y: 0, Width: 7, Height: 5, Selected: true})
		assert.Equal(t, []string{
			"   #   ",
			" ## ## ",
			"#     #",
			" ## ## ",
			"   #   ",
		}, gridLines(c))
	})
}

func TestDrawTextNode(t *testing.T) {
	t.Run("renders without an outline", func(t *testing.T) {
		c := NewCanvas(9, 3)
		c.drawNode(&Node{Shape: ShapeText, X: 2, Y: 1, Width: 5, Height: 1, Text: "Hello"})
		assert.Equal(t, []string{
			"         ",
			"  Hello  ",
			"         ",
		}, gridLines(c))
	})

	t.Run("selection brackets flank the text", func(t *testing.T) {
		c := NewCanvas(9, 3)
		c.drawNode(&Node{Shape: ShapeText, X: 2, Y: 1, Width: 5, Height: 1, Text: "Hello", Selected: true})
		assert.Equal(t, " [Hello] ", gridLines(c)[1])
	})

	t.Run("bracket clamps at the left edge", func(t *testing.T) {
		c := NewCanvas(9, 1)
		c.drawNode(&Node{Shape: ShapeText, X: 0, Y: 0, Width: 3, Height: 1, Text: "abc", Selected: true})
		assert.Equal(t, "[bc]     ", gridLines(c)[0])
	})
}

func TestDrawFrame(t *testing.T) {
	t.Run("first wrapped line becomes the border title", func(t *testing.T) {
		c := NewCanvas(12, 4)
		c.drawNode(&Node{Shape: ShapeFrame, X: 0, Y: 0, Width: 12, Height: 4, Text: "Grp"})
		assert.Equal(t, []string{
			"+ Grp -----+",
			"|          |",
			"|          |",
			"+----------+",
		}, gridLines(c))
	})

	t.Run("empty text leaves a plain border", func(t *testing.T) {
		c := NewCanvas(12, 4)
		c.drawNode(&Node{Shape: ShapeFrame, X: 0, Y: 0, Width: 12, Height: 4})
		assert.Equal(t, "+----------+", gridLines(c)[0])
	})

	t.Run("long title clips before the corner", func(t *testing.T) {
		c := NewCanvas(8, 3)
		c.drawNode(&Node{Shape: ShapeFrame, X: 0, Y: 0, Width: 8, Height: 3, Text: "abcdefghij"})
		assert.Equal(t, "+ abcd +", gridLines(c)[0])
	})

	t.Run("interior shows earlier nodes through", func(t *testing.T) {
		c := NewCanvas(12, 4)
		c.drawNode(&Node{Shape: ShapeText, X: 3, Y: 1, Width: 3, Height: 1, Text: "in"})
		c.drawNode(&Node{Shape: ShapeFrame, X: 0, Y: 0, Width: 12, Height: 4, Text: "G"})
		assert.Equal(t, "|  in      |", gridLines(c)[1])
	})
}

func stackedBoxesModel(hasArrow bool) model {
	return model{
		nodes: []Node{
			{ID: 1, Shape: ShapeBox, X: 0, Y: 0, Width: 5, Height: 3},
			{ID: 2, Shape: ShapeBox, X: 0, Y: 6, Width: 5, Height: 3},
		},
		connections: []Connection{
			{FromID: 1, FromOffset: [2]int{2, 2}, ToID: 2, ToOffset: [2]int{2, 0}, HasArrow: hasArrow},
		},
		selectedConn: -1,
		connectFrom:  -1,
	}
}

func TestRenderConnections(t *testing.T) {
	t.Run("arrowed vertical route stops short of the target", func(t *testing.T) {
		c := stackedBoxesModel(true).renderCanvas(5, 9)
		assert.Equal(t, []string{
			"+---+",
			"|   |",
			"+-o-+",
			"  |  ",
			"  |  ",
			"  v  ",
			"+---+",
			"|   |",
			"+---+",
		}, gridLines(c))
	})

	t.Run("plain route terminates on both borders", func(t *testing.T) {
		c := stackedBoxesModel(false).renderCanvas(5, 9)
		assert.Equal(t, []string{
			"+---+",
			"|   |",
			"+-o-+",
			"  |  ",
			"  |  ",
			"  |  ",
			"+-o-+",
			"|   |",
			"+---+",
		}, gridLines(c))
	})

	t.Run("selected connection renders highlighted", func(t *testing.T) {
		m := stackedBoxesModel(true)
		m.selectedConn = 0
		c := m.renderCanvas(5, 9)
		assert.Equal(t, []string{
			"+---+",
			"|   |",
			"+-@-+",
			"  #  ",
			"  #  ",
			"  v  ",
			"+---+",
			"|   |",
			"+---+",
		}, gridLines(c))
	})

	t.Run("horizontal-first route bends through the midpoint column", func(t *testing.T) {
		m := model{
			nodes: []Node{
				{ID: 1, Shape: ShapeBox, X: 0, Y: 0, Width: 5, Height: 3},
				{ID: 2, Shape: ShapeBox, X: 8, Y: 4, Width: 5, Height: 3},
			},
			connections: []Connection{
				{FromID: 1, FromOffset: [2]int{4, 1}, ToID: 2, ToOffset: [2]int{0, 1}, HasArrow: true},
			},
			selectedConn: -1,
		}
		c := m.renderCanvas(13, 8)
		assert.Equal(t, []string{
			"+---+        ",
			"|   o+       ",
			"+---+|       ",
			"     |       ",
			"     |  +---+",
			"     +->|   |",
			"        +---+",
			"             ",
		}, gridLines(c))
	})

	t.Run("connection to a vanished node draws nothing", func(t *testing.T) {
		m := stackedBoxesModel(true)
		m.nodes = m.nodes[:1]
		c := m.renderCanvas(5, 9)
		assert.Equal(t, "     ", gridLines(c)[5])
	})
}

func TestRenderPartialConnection(t *testing.T) {
	m := model{
		nodes:        []Node{{ID: 1, Shape: ShapeBox, X: 0, Y: 0, Width: 5, Height: 3}},
		partial:      &PartialConnection{FromID: 1, FromOffset: [2]int{2, 2}, CurrentX: 2, CurrentY: 6},
		selectedConn: -1,
	}
	c := m.renderCanvas(5, 8)
	assert.Equal(t, []string{
		"+---+",
		"|   |",
		"+-@-+",
		"  #  ",
		"  #  ",
		"  #  ",
		"  v  ",
		"     ",
	}, gridLines(c))
}

func TestRenderCameraOffset(t *testing.T) {
	m := model{
		nodes:        []Node{{ID: 1, Shape: ShapeBox, X: 10, Y: 5, Width: 5, Height: 3}},
		cameraX:      10,
		cameraY:      5,
		selectedConn: -1,
	}
	c := m.renderCanvas(5, 3)
	assert.Equal(t, []string{
		"+---+",
		"|   |",
		"+---+",
	}, gridLines(c))
}

func TestRenderDrawOrder(t *testing.T) {
	m := model{
		nodes: []Node{
			{ID: 1, Shape: ShapeBox, X: 0, Y: 0, Width: 5, Height: 3, Text: "a"},
			{ID: 2, Shape: ShapeBox, X: 2, Y: 1, Width: 5, Height: 3, Text: "b"},
		},
		selectedConn: -1,
	}
	c := m.renderCanvas(8, 5)
	lines := gridLines(c)
	assert.Equal(t, "| +---+ ", lines[1], "later node draws over the earlier one")
	assert.Equal(t, "+-|-b | ", lines[2])
}

func TestDrawPopup(t *testing.T) {
	c := NewCanvas(10, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			c.Set(x, y, '#')
		}
	}
	c.drawPopup(0, 0, 10, 4, " T ", []string{"ab", "cdefghijklmno"})
	assert.Equal(t, []string{
		"+ T -----+",
		"|ab      |",
		"|cdefghij|",
		"+--------+",
	}, gridLines(c))
}

func TestDrawOverlays(t *testing.T) {
	t.Run("leader popup lists every command", func(t *testing.T) {
		m := model{title: "T", mode: ModeLeader, selectedConn: -1}
		c := NewCanvas(40, 20)
		m.drawOverlays(c)
		out := c.String()
		require.Contains(t, out, " Commands ")
		assert.Contains(t, out, "n -> New Box")
		assert.Contains(t, out, "f -> New Frame")
		assert.Contains(t, out, "w -> Write (T.txt/.json)")
		assert.Contains(t, out, "<Esc> -> Cancel")
	})

	t.Run("help popup shows the full reference", func(t *testing.T) {
		m := model{mode: ModeHelp, selectedConn: -1, width: 60, height: 30}
		c := NewCanvas(60, 29)
		m.drawOverlays(c)
		out := c.String()
		require.Contains(t, out, " Full Command Reference ")
		assert.Contains(t, out, "--- NAVIGATION & SELECTION ---")
		assert.Contains(t, out, "Press <Esc> or <Space> to close Help")
	})

	t.Run("context menu highlights the active row", func(t *testing.T) {
		m := model{mode: ModeMenu, menuX: 0, menuY: 0, menuIndex: 0, width: 80, height: 24, selectedConn: -1}
		c := NewCanvas(80, 23)
		m.drawOverlays(c)
		lines := gridLines(c)
		assert.Equal(t, "|>  New Box         |", lines[1][:21])
		assert.Equal(t, "|   New Diamond     |", lines[2][:21])
		assert.Equal(t, "|  ---------        |", lines[5][:21])
		assert.Equal(t, "|   Cancel          |", lines[10][:21])
		assert.Equal(t, "+-------------------+", lines[11][:21])
	})
}
