package maze

import "errors"

// Sentinel errors reported by Verify.
var (
	// ErrPermaWallOpened indicates an edge or even-even cell is Floor.
	ErrPermaWallOpened = errors.New("maze: perma-wall cell is open")
	// ErrPermaFloorClosed indicates an odd-odd interior cell is Wall.
	ErrPermaFloorClosed = errors.New("maze: perma-floor cell is closed")
	// ErrCycle indicates an open connector joins two cells that were already connected.
	ErrCycle = errors.New("maze: open connectors form a cycle")
	// ErrDisconnected indicates some perma-floor cell cannot reach another.
	ErrDisconnected = errors.New("maze: perma-floor cells are not connected")
	// ErrGroupsNotMerged indicates floor cells still carry more than one group id.
	ErrGroupsNotMerged = errors.New("maze: floor cells carry more than one group id")
)
