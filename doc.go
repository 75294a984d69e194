// Package ariadne generates perfect mazes: exactly one simple path between any
// two rooms, no cycles, every room reachable.
//
// How it works:
//
//	X X X X X        X X X X X
//	X 0 X 2 X        X       X
//	X X X X X   →    X X X   X
//	X 1 X 3 X        X       X
//	X X X X X        X X X X X
//
// Rooms (odd, odd) start in their own group. Connector walls between rooms are
// drawn at random; a connector whose neighbours already share a group would close
// a loop and stays a wall, any other connector is opened and the lower group id
// floods through everything it now touches. When the pool of connectors is empty,
// one group remains.
//
// Packages:
//
//	maze/        — Grid, Cell, classification, Builder (the merge loop), Verify
//	render/      — text output (group ids or blocks) and a tcell viewer/animator
//	input/       — odd-dimension validation and the console prompt loop
//	cmd/ariadne/ — command-line front end
//
// Quick start:
//
//	g := maze.Build(21, 11, maze.WithSeed(7))
//	_ = render.Text(os.Stdout, g, render.WithMode(render.ModeBlocks))
//
//	go install github.com/katalvlaran/ariadne/cmd/ariadne@latest
package ariadne
