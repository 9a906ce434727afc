package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a w x h cell canvas with a 2x4 dot micro grid per cell.
// Each cell keeps the color of the last stroke that touched it.
type brailleBuf struct {
	w, h int // in cells
	m    [][]uint8
	c    [][]color.NRGBA
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]color.NRGBA, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]color.NRGBA, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c}
}

// dotBits[rx][ry] is the braille bit for a dot in a cell.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell).
func (b *brailleBuf) setPixel(mx, my int, col color.NRGBA) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[rx][ry]
	b.c[cy][cx] = col
}

// drawLineMicro draws a line on the micro grid using Bresenham.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, col color.NRGBA) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// toLines renders the buffer, one string per cell row.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := range b.h {
		out[y] = b.span(y, 0, b.w)
	}
	return out
}

// span renders cells [x0, x1) of row y. Runs of cells with the same color
// share one style.
func (b *brailleBuf) span(y, x0, x1 int) string {
	var sb strings.Builder
	var run []rune
	var runCol color.NRGBA
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runCol.A == 0 {
			sb.WriteString(string(run))
		} else {
			sb.WriteString(cellStyle(runCol).Render(string(run)))
		}
		run = run[:0]
	}
	for x := max(0, x0); x < min(x1, b.w); x++ {
		r, col := ' ', color.NRGBA{}
		if mask := b.m[y][x]; mask != 0 {
			r, col = rune(0x2800+int(mask)), b.c[y][x]
		}
		if col != runCol {
			flush()
			runCol = col
		}
		run = append(run, r)
	}
	flush()
	return sb.String()
}

func cellStyle(c color.NRGBA) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
