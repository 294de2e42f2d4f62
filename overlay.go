package main

import "fmt"

var menuItems = []string{
	" New Box ",
	" New Diamond ",
	" New Text ",
	" New Frame ",
	"---------",
	" Start Connector ",
	" Start Arrow ",
	" Delete ",
	"---------",
	" Cancel ",
}

func isMenuSeparator(index int) bool {
	return index == 4 || index == 8
}

// drawPopup stamps a bordered popup into the grid, clearing whatever sits
// under it first. Popups live in the rune grid rather than an ANSI layer
// so the view stays a plain character canvas.
func (c *Canvas) drawPopup(x, y, w, h int, title string, lines []string) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c.Set(px, py, ' ')
		}
	}
	c.drawRect(x, y, x+w-1, y+h-1, false)

	tx := x + 1
	for _, ch := range title {
		if tx >= x+w-1 {
			break
		}
		c.Set(tx, y, ch)
		tx++
	}

	for i, line := range lines {
		ty := y + 1 + i
		if ty >= y+h-1 {
			break
		}
		lx := x + 1
		for _, ch := range line {
			if lx >= x+w-1 {
				break
			}
			c.Set(lx, ty, ch)
			lx++
		}
	}
}

func (m model) leaderLines() []string {
	return []string{
		"  n -> New Box",
		"  d -> New Diamond",
		"  t -> New Text",
		"  f -> New Frame",
		fmt.Sprintf("  w -> Write (%s.txt/.json)", m.title),
		"  c -> Copy to Clipboard",
		"  h -> Help Menu",
		"  q -> Quit",
		"",
		"  <Esc> -> Cancel",
	}
}

var helpLines = []string{
	"--- NAVIGATION & SELECTION ---",
	"  Tab / BackTab   : Cycle through shapes",
	"  Arrows          : Move shape or pan canvas",
	"  Esc             : Clear selection / Back to Normal",
	"",
	"--- EDITING ---",
	"  i               : Enter Insert mode (Edit text)",
	"  r               : Enter Resize mode (+/- to scale)",
	"  Del / Backspace : Delete selected shape/connection",
	"",
	"--- CONNECTORS ---",
	"  c               : Start plain connector from shape",
	"  a               : Start arrow connector from shape",
	"  Enter           : Finish connector on target shape",
	"  a (on conn)     : Toggle arrow on selection",
	"",
	"--- COMMANDS (<Leader> = Space) ---",
	"  <Leader> + n    : Create new Box",
	"  <Leader> + d    : Create new Diamond",
	"  <Leader> + t    : Create new Text",
	"  <Leader> + f    : Create new Frame",
	"  <Leader> + w    : Save (.json and .txt)",
	"  <Leader> + c    : Copy ASCII to clipboard",
	"",
	"  Press <Esc> or <Space> to close Help",
}

// drawOverlays stamps whichever popup the mode calls for over the canvas.
func (m model) drawOverlays(c *Canvas) {
	switch m.mode {
	case ModeLeader:
		lines := m.leaderLines()
		h := len(lines) + 2
		x := max((c.width-leaderMenuWidth)/2, 0)
		y := max((c.height-h)/2, 0)
		c.drawPopup(x, y, leaderMenuWidth, h, " Commands ", lines)

	case ModeHelp:
		h := len(helpLines) + 2
		x := max((c.width-helpMenuWidth)/2, 0)
		y := max((c.height-h)/2, 0)
		c.drawPopup(x, y, helpMenuWidth, h, " Full Command Reference ", helpLines)

	case ModeMenu:
		x, y, w, h := m.menuRect()
		lines := make([]string, len(menuItems))
		for i, item := range menuItems {
			if i == m.menuIndex {
				lines[i] = "> " + item
			} else {
				lines[i] = "  " + item
			}
		}
		c.drawPopup(x, y, w, h, "", lines)
	}
}
