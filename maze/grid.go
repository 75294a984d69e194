package maze

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// neighborOffsets lists the 4-directional steps in N, E, S, W order.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a width×height array of cells. cells[y][x] holds the cell at (x, y).
// A Grid is mutated only by the Builder that owns it; once handed out by
// Run or Build it is read-only by convention.
type Grid struct {
	width, height int
	cells         [][]Cell
}

// newGrid allocates a grid of Walls.
func newGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as Wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall()
	}
	return g.cells[y][x]
}

func (g *Grid) set(p Point, c Cell) {
	g.cells[p.Y][p.X] = c
}

// Neighbors returns the in-bounds axis-aligned neighbours of p in N, E, S, W order.
// No diagonals, no wraparound; edge cells get fewer than four.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := p.X+d[0], p.Y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, Point{X: nx, Y: ny})
		}
	}
	return out
}

// Groups returns the distinct group ids carried by floor cells, ascending.
// A finished maze with at least one perma-floor returns exactly one id.
// Complexity: O(W×H + G log G).
func (g *Grid) Groups() []int {
	seen := mapset.New[int]()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if id, ok := g.cells[y][x].Group(); ok {
				seen.Put(id)
			}
		}
	}
	ids := make([]int, 0, seen.Size())
	seen.Each(func(id int) {
		ids = append(ids, id)
	})
	sort.Ints(ids)
	return ids
}

// FloorCount returns the number of Floor cells.
func (g *Grid) FloorCount() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c.IsFloor() {
				n++
			}
		}
	}
	return n
}

// relabel floods target outward from start through 4-directional Floor cells,
// rewriting every reached cell whose id differs from target. Cells already
// carrying target are not expanded, which bounds the walk to the absorbed groups.
// Uses an explicit stack, so grid size never limits depth.
// Returns the number of cells rewritten (start excluded).
func (g *Grid) relabel(start Point, target int) int {
	g.set(start, Floor(target))
	stack := []Point{start}
	changed := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighborOffsets {
			nx, ny := p.X+d[0], p.Y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			id, ok := g.cells[ny][nx].Group()
			if !ok || id == target {
				continue // wall, or already merged
			}
			g.cells[ny][nx] = Floor(target)
			changed++
			stack = append(stack, Point{X: nx, Y: ny})
		}
	}
	return changed
}
