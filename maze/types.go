package maze

import "fmt"

// Cell is a single grid cell: either a Wall or a Floor carrying a group id.
// The zero value is a Wall.
type Cell struct {
	floor bool // true for Floor
	group int  // meaningful only when floor is true
}

// Wall returns an impassable cell.
func Wall() Cell {
	return Cell{}
}

// Floor returns a passable cell belonging to the given group.
func Floor(group int) Cell {
	return Cell{floor: true, group: group}
}

// IsWall reports whether c is impassable.
func (c Cell) IsWall() bool {
	return !c.floor
}

// IsFloor reports whether c is passable.
func (c Cell) IsFloor() bool {
	return c.floor
}

// Group returns the group id of a Floor cell. ok is false for a Wall.
func (c Cell) Group() (id int, ok bool) {
	if !c.floor {
		return 0, false
	}
	return c.group, true
}

// String renders c as "Wall" or "Floor(id)"; handy in test failures.
func (c Cell) String() string {
	if !c.floor {
		return "Wall"
	}
	return fmt.Sprintf("Floor(%d)", c.group)
}

// Point addresses a cell by column X and row Y.
type Point struct {
	X, Y int
}

// Class is the fixed role of a coordinate for the lifetime of a grid.
type Class int

const (
	// PermaWall cells lie on the edge or have both coordinates even. Always Wall.
	PermaWall Class = iota
	// PermaFloor cells have both coordinates odd and are off the edge. Always Floor.
	PermaFloor
	// Connector cells have exactly one even coordinate and are off the edge.
	// They start as Wall and may be opened by the merge loop.
	Connector
)

// String returns the lower-case class name.
func (c Class) String() string {
	switch c {
	case PermaWall:
		return "perma-wall"
	case PermaFloor:
		return "perma-floor"
	case Connector:
		return "connector"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Outcome says what the merge loop did with one candidate.
type Outcome int

const (
	// Opened: the connector became Floor and its neighbour groups were merged.
	Opened Outcome = iota
	// Discarded: opening the connector would have closed a cycle; it stays Wall.
	Discarded
)

// String returns "opened" or "discarded".
func (o Outcome) String() string {
	if o == Opened {
		return "opened"
	}
	return "discarded"
}

// Resolution describes one processed candidate.
type Resolution struct {
	Point   Point   // the connector drawn from the pool
	Outcome Outcome // Opened or Discarded
	Group   int     // surviving group id when Opened; -1 when Discarded
	Merged  []int   // neighbour group ids seen at draw time, in N, E, S, W order
}

// Stats summarises a grid's composition.
type Stats struct {
	PermaFloors int // cells classified PermaFloor
	Connectors  int // cells classified Connector (the initial pool size)
	Opened      int // connectors that are Floor
	Discarded   int // connectors that stayed Wall
}
