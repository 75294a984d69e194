package maze

import "github.com/zyedidia/generic/mapset"

// Builder owns a grid under construction and the pool of unresolved connectors.
// It is single-use and not safe for concurrent use: every step depends on the
// labels and pool left by the previous one.
type Builder struct {
	grid  *Grid
	pool  []Point
	opts  Options
	stats Stats
}

// NewBuilder initialises a width×height grid: perma-floor cells become
// Floor(0..N−1) in scan order (x outer, y inner), everything else Wall, and every
// connector enters the candidate pool in the same order.
//
// Dimensions are not validated; callers pass positive odd values (see package input).
// Complexity: O(W×H) time and memory.
func NewBuilder(width, height int, opts ...Option) *Builder {
	b := &Builder{
		grid: newGrid(width, height),
		opts: resolveOptions(opts),
	}
	next := 0
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			switch Classify(x, y, width, height) {
			case PermaFloor:
				b.grid.set(Point{X: x, Y: y}, Floor(next))
				next++
			case Connector:
				b.pool = append(b.pool, Point{X: x, Y: y})
			}
		}
	}
	b.stats.PermaFloors = next
	b.stats.Connectors = len(b.pool)
	return b
}

// Grid returns the grid being built. It is only final once Done reports true.
func (b *Builder) Grid() *Grid { return b.grid }

// Remaining returns the number of unresolved candidates.
func (b *Builder) Remaining() int { return len(b.pool) }

// Done reports whether the candidate pool is empty.
func (b *Builder) Done() bool { return len(b.pool) == 0 }

// Stats returns the counts accumulated so far.
func (b *Builder) Stats() Stats { return b.stats }

// Step resolves one candidate drawn uniformly at random from the pool.
//
// Decision rule:
//   - neighbour group ids contain a duplicate → Discarded (opening it closes a cycle);
//   - no floor neighbour at all → Discarded (nothing to join);
//   - otherwise → Opened with the smallest id, which is flooded through the joined groups.
//
// The candidate leaves the pool in every case. ok is false once the pool is empty.
// Complexity: O(1) plus the size of the absorbed groups.
func (b *Builder) Step() (res Resolution, ok bool) {
	if len(b.pool) == 0 {
		return Resolution{}, false
	}

	// Uniform draw, then swap-remove: each remaining candidate is equally likely.
	i := b.opts.Rand.Intn(len(b.pool))
	p := b.pool[i]
	last := len(b.pool) - 1
	b.pool[i] = b.pool[last]
	b.pool = b.pool[:last]

	groups, unique := b.neighborGroups(p)
	res = Resolution{Point: p, Outcome: Discarded, Group: -1, Merged: groups}

	if unique && len(groups) > 0 {
		target := groups[0]
		for _, id := range groups[1:] {
			if id < target {
				target = id
			}
		}
		b.grid.relabel(p, target)
		res.Outcome = Opened
		res.Group = target
		b.stats.Opened++
	} else {
		b.stats.Discarded++
	}

	b.opts.OnResolve(res)
	return res, true
}

// Run steps until the pool is empty and returns the finished grid.
// The loop runs exactly Stats().Connectors times in total.
func (b *Builder) Run() *Grid {
	for {
		if _, ok := b.Step(); !ok {
			return b.grid
		}
	}
}

// neighborGroups collects the group ids of p's Floor neighbours and reports
// whether they are pairwise distinct.
func (b *Builder) neighborGroups(p Point) (groups []int, unique bool) {
	seen := mapset.New[int]()
	unique = true
	for _, n := range b.grid.Neighbors(p) {
		id, ok := b.grid.At(n.X, n.Y).Group()
		if !ok {
			continue
		}
		if seen.Has(id) {
			unique = false
		}
		seen.Put(id)
		groups = append(groups, id)
	}
	return groups, unique
}

// Build runs a complete build of a width×height maze and returns the grid.
//
// Example:
//
//	g := maze.Build(21, 11, maze.WithSeed(7))
//	fmt.Println(g.Groups()) // [0]
func Build(width, height int, opts ...Option) *Grid {
	return NewBuilder(width, height, opts...).Run()
}
