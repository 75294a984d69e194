package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ariadne/maze"
	"github.com/mattn/go-runewidth"
)

// Text writes g to w, top row first, one line per row.
//
// ModeGroups: every cell is its token padded to the widest token, followed by a
// space; walls use the wall glyph, floors their group id, and the blank group
// prints as spaces. With single-digit ids this is "X 0 X " style output.
//
// ModeBlocks: walls are the wall glyph doubled to two columns (wide glyphs are
// used once), floors are two spaces.
//
// Returns the first write error.
// Complexity: O(W×H).
func Text(w io.Writer, g *maze.Grid, opts ...Option) error {
	o := resolve(opts)
	bw := bufio.NewWriter(w)
	if err := emptyLines(bw, o.LeadingLines); err != nil {
		return err
	}

	var line strings.Builder
	switch o.Mode {
	case ModeBlocks:
		wall, floor := blockCells(o.WallGlyph)
		for y := 0; y < g.Height(); y++ {
			line.Reset()
			for x := 0; x < g.Width(); x++ {
				if g.At(x, y).IsWall() {
					line.WriteString(wall)
				} else {
					line.WriteString(floor)
				}
			}
			line.WriteByte('\n')
			if _, err := bw.WriteString(line.String()); err != nil {
				return err
			}
		}
	default:
		width := cellWidth(g, o)
		for y := 0; y < g.Height(); y++ {
			line.Reset()
			for x := 0; x < g.Width(); x++ {
				line.WriteString(runewidth.FillRight(token(g.At(x, y), o), width))
				line.WriteByte(' ')
			}
			line.WriteByte('\n')
			if _, err := bw.WriteString(line.String()); err != nil {
				return err
			}
		}
	}
	if err := emptyLines(bw, o.TrailingLines); err != nil {
		return err
	}
	return bw.Flush()
}

func emptyLines(bw *bufio.Writer, n int) error {
	for i := 0; i < n; i++ {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// String renders g with Text into a string.
func String(g *maze.Grid, opts ...Option) string {
	var sb strings.Builder
	_ = Text(&sb, g, opts...) // strings.Builder never fails
	return sb.String()
}

// token is the unpadded ModeGroups text of c.
func token(c maze.Cell, o Options) string {
	id, ok := c.Group()
	if !ok {
		return o.WallGlyph
	}
	if o.blank(id) {
		return ""
	}
	return strconv.Itoa(id)
}

// cellWidth is the display width of the widest ModeGroups token in g, at least 1.
func cellWidth(g *maze.Grid, o Options) int {
	width := runewidth.StringWidth(o.WallGlyph)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if n := runewidth.StringWidth(token(g.At(x, y), o)); n > width {
				width = n
			}
		}
	}
	if width < 1 {
		width = 1
	}
	return width
}

// blockCells returns the two-column wall and floor strings for ModeBlocks.
func blockCells(glyph string) (wall, floor string) {
	wall = glyph
	if runewidth.StringWidth(glyph) < 2 {
		wall = glyph + glyph
	}
	return wall, strings.Repeat(" ", runewidth.StringWidth(wall))
}
