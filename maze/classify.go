package maze

// IsEdge reports whether (x, y) lies on the outer border of a width×height grid.
// Complexity: O(1).
func IsEdge(x, y, width, height int) bool {
	return x == 0 || y == 0 || x == width-1 || y == height-1
}

// Classify returns the fixed role of (x, y) in a width×height grid.
// It is pure: the answer depends only on its arguments, never on grid state.
//
//	edge, or x and y both even  → PermaWall
//	x and y both odd            → PermaFloor
//	anything else               → Connector
//
// Complexity: O(1).
func Classify(x, y, width, height int) Class {
	switch {
	case IsEdge(x, y, width, height) || (x%2 == 0 && y%2 == 0):
		return PermaWall
	case x%2 == 1 && y%2 == 1:
		return PermaFloor
	default:
		return Connector
	}
}
