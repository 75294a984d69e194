package maze

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// Verify checks that g is a perfect maze and returns its composition.
//
// It does not trust group labels for the structural checks: perma-floor cells
// are treated as vertices and open connectors as edges, and a disjoint-set
// forest is grown edge by edge. Steps:
//  1. Every perma-wall is Wall and every perma-floor is Floor.
//  2. No open connector joins two cells already in one set (acyclic).
//  3. All perma-floor cells end in one set (connected).
//  4. Floor cells carry a single group id.
//
// The first failed property is returned wrapped with the offending coordinate.
// Complexity: O(W×H·α(W×H)).
func Verify(g *Grid) (Stats, error) {
	var st Stats
	w, h := g.Width(), g.Height()

	// 1. Classes and one disjoint-set element per perma-floor cell.
	sets := make([][]*disjoint.Element, h)
	for y := range sets {
		sets[y] = make([]*disjoint.Element, w)
	}
	var connectors []Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := g.At(x, y)
			switch Classify(x, y, w, h) {
			case PermaWall:
				if c.IsFloor() {
					return st, fmt.Errorf("(%d,%d): %w", x, y, ErrPermaWallOpened)
				}
			case PermaFloor:
				if c.IsWall() {
					return st, fmt.Errorf("(%d,%d): %w", x, y, ErrPermaFloorClosed)
				}
				st.PermaFloors++
				sets[y][x] = disjoint.NewElement()
			case Connector:
				st.Connectors++
				if c.IsFloor() {
					connectors = append(connectors, Point{X: x, Y: y})
				}
			}
		}
	}
	st.Opened = len(connectors)
	st.Discarded = st.Connectors - st.Opened

	// 2. Each open connector is an edge between its perma-floor neighbours.
	for _, p := range connectors {
		var first *disjoint.Element
		for _, n := range g.Neighbors(p) {
			e := sets[n.Y][n.X]
			if e == nil {
				continue
			}
			if first == nil {
				first = e
				continue
			}
			if first.Find() == e.Find() {
				return st, fmt.Errorf("(%d,%d): %w", p.X, p.Y, ErrCycle)
			}
			disjoint.Union(first, e)
		}
	}

	// 3. One set spans every perma-floor.
	var root *disjoint.Element
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e := sets[y][x]
			if e == nil {
				continue
			}
			if root == nil {
				root = e.Find()
				continue
			}
			if e.Find() != root {
				return st, fmt.Errorf("(%d,%d): %w", x, y, ErrDisconnected)
			}
		}
	}

	// 4. Labels agree with the structure.
	if ids := g.Groups(); len(ids) > 1 {
		return st, fmt.Errorf("%d groups %v: %w", len(ids), ids, ErrGroupsNotMerged)
	}

	return st, nil
}
