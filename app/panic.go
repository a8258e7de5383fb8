package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"wifidash/kernel"
	"wifidash/ui/gfx"
	"wifidash/ui/widget"
)

// showPanic replaces the screen with the panic report. Lines that do not fit
// the width are wrapped; anything below the bottom edge is dropped.
func showPanic(c *gfx.Canvas, info kernel.PanicInfo) {
	w, h := c.Size()
	c.FillRect(0, 0, w, h, widget.White)
	c.SetFont(widget.FontSmall)
	c.SetTextColor(widget.Black, widget.Transparent)

	lineH := c.FontHeight()
	cellW := c.TextWidth("0")
	if lineH <= 0 || cellW <= 0 {
		return
	}
	cols := max(int(w/cellW), 1)

	var y int16
	for _, line := range panicLines(info) {
		for len(line) > 0 {
			if y+lineH > h {
				_ = c.Surface().Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.DrawString(0, y, chunk)
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = c.Surface().Display()
}

func panicLines(info kernel.PanicInfo) []string {
	lines := []string{
		"wifidash panic:",
		fmt.Sprintf("task: %d", info.TaskID),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, l := range strings.Split(string(info.Stack), "\n") {
		if l = strings.ReplaceAll(l, "\t", "  "); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// takeRunes splits s after n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
