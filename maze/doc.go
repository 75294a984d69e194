// Package maze generates perfect mazes on odd-sized rectangular grids.
//
// What:
//
//   - Grid is a width×height array of Cells addressed by (x, y).
//   - A Cell is either a Wall or a Floor tagged with a group id.
//   - Builder turns a grid of isolated single-cell rooms into one spanning tree
//     by opening connector walls in random order (randomized Kruskal).
//   - Verify independently checks the perfect-maze properties of a finished grid.
//
// Coordinate classes (pure function of position, see Classify):
//
//	X X X X X     X = perma-wall   (edge, or both coordinates even)
//	X 0 c 2 X     0..3 = perma-floor (both odd, off the edge), unique starting group
//	X c X c X     c = connector    (exactly one coordinate even, off the edge)
//	X 1 c 3 X
//	X X X X X
//
// Merge rule:
//
//   - Draw a connector uniformly at random from the candidate pool.
//   - Collect the group ids of its Floor neighbours (N, E, S, W).
//   - If any id repeats, opening it would close a cycle: it stays a Wall.
//   - Otherwise it becomes Floor(min id) and the min id is flooded through every
//     floor cell reachable from it.
//   - The connector leaves the pool either way.
//
// The pool shrinks by exactly one per step, so a build always terminates after
// as many steps as there are connectors. At completion every perma-floor cell
// carries the same group id and exactly (perma-floors − 1) connectors are open.
//
// Determinism:
//
//   - Group ids follow the scan order x outer, y inner.
//   - The only source of variation is the Source passed with WithRand / WithSeed;
//     equal seeds give identical grids.
//
// Complexity:
//
//   - NewBuilder: O(W×H) time and memory.
//   - Step:       O(1) draw + O(k) relabel, where k is the size of the absorbed group.
//   - Run/Build:  O(C×k) worst case for C connectors; fine for terminal-sized grids.
//   - Verify:     O(W×H·α) using disjoint sets.
//
// Errors:
//
//   - Building never fails. Dimensions are the caller's responsibility (see package input).
//   - Verify reports ErrPermaWallOpened, ErrPermaFloorClosed, ErrCycle,
//     ErrDisconnected or ErrGroupsNotMerged.
package maze
