package search

import (
	"fmt"

	"github.com/katalvlaran/gridviz/grid"
)

// BFS is a breadth-first Stepper. The zero value is not usable; call NewBFS.
type BFS struct {
	opts   Options
	queue  []grid.Pos
	target grid.Pos
	status Status
	steps  int
	order  []grid.Pos
	err    error
}

var _ Stepper = (*BFS)(nil)

// NewBFS returns an Idle breadth-first stepper.
func NewBFS(opts ...Option) *BFS {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &BFS{opts: o}
}

// Reset clears the queue and seeds it with source. The grid is not touched:
// visited and frontier flags from a previous run stay until the caller
// clears them. Negative coordinates and source == target fail fast and leave
// the stepper unchanged.
func (b *BFS) Reset(source, target grid.Pos) error {
	if source.Row < 0 || source.Col < 0 {
		return fmt.Errorf("%w: source %v", grid.ErrInvalidCoordinate, source)
	}
	if target.Row < 0 || target.Col < 0 {
		return fmt.Errorf("%w: target %v", grid.ErrInvalidCoordinate, target)
	}
	if source == target {
		return fmt.Errorf("%w: %v", ErrSameEndpoints, source)
	}
	b.queue = append(b.queue[:0], source)
	b.target = target
	b.status = Searching
	b.steps = 0
	b.order = b.order[:0]
	b.err = nil
	b.opts.Logger.Debug("search reset", "source", source, "target", target)
	return nil
}

// Step pops the front of the queue and processes it:
//
//  1. empty queue: already done, no mutation;
//  2. the grid's target: clear the queue, done (Found);
//  3. already visited: a duplicate entry, skip it;
//  4. otherwise mark it visited;
//  5. mark every neighbour that is not a wall, visited or frontier as
//     frontier and append it to the queue;
//  6. not done.
func (b *BFS) Step(g *grid.Grid) bool {
	b.steps++
	if len(b.queue) == 0 {
		if b.status == Searching {
			b.status = Exhausted
			b.opts.Logger.Debug("search exhausted", "steps", b.steps, "visited", len(b.order))
		}
		return true
	}
	cur := b.dequeue()

	if g.IsTarget(cur.Row, cur.Col) {
		b.queue = b.queue[:0]
		b.status = Found
		b.opts.Logger.Debug("found target", "pos", cur, "steps", b.steps, "visited", len(b.order))
		return true
	}
	if g.IsVisited(cur.Row, cur.Col) {
		b.opts.Logger.Debug("already visited", "pos", cur)
		return false
	}
	if err := g.MarkVisited(cur.Row, cur.Col); err != nil {
		b.fail(err)
		return true
	}
	b.order = append(b.order, cur)
	b.opts.OnVisit(cur)
	b.opts.Logger.Debug("visiting", "pos", cur)

	nbrs, err := g.Neighbors(cur.Row, cur.Col)
	if err != nil {
		b.fail(err)
		return true
	}
	for _, nb := range nbrs {
		if g.IsWall(nb.Row, nb.Col) || g.IsVisited(nb.Row, nb.Col) || g.IsFrontier(nb.Row, nb.Col) {
			b.opts.Logger.Debug("skipping neighbor", "pos", nb)
			continue
		}
		b.enqueue(g, cur, nb)
	}
	return false
}

// dequeue pops the first queued position.
func (b *BFS) dequeue() grid.Pos {
	p := b.queue[0]
	b.queue = b.queue[1:]
	return p
}

// enqueue marks nb frontier, records its origin and appends it.
func (b *BFS) enqueue(g *grid.Grid, from, nb grid.Pos) {
	// nb comes from Neighbors, so these cannot fail
	_ = g.MarkFrontier(nb.Row, nb.Col)
	if b.opts.RecordOrigins {
		_ = g.SetOrigin(from, nb)
	}
	b.queue = append(b.queue, nb)
	b.opts.OnEnqueue(from, nb)
	b.opts.Logger.Debug("extending frontier", "pos", nb)
}

// fail ends the search on a precondition violation.
func (b *BFS) fail(err error) {
	b.err = err
	b.queue = b.queue[:0]
	b.status = Exhausted
	b.opts.Logger.Debug("search aborted", "err", err)
}

// Status returns the current state.
func (b *BFS) Status() Status { return b.status }

// Err returns the precondition violation that ended the search, if any.
func (b *BFS) Err() error { return b.err }

// Steps returns the number of Step calls since the last Reset.
func (b *BFS) Steps() int { return b.steps }

// Target returns the target passed to the last Reset.
func (b *BFS) Target() grid.Pos { return b.target }

// Pending returns a copy of the frontier queue, front first.
func (b *BFS) Pending() []grid.Pos {
	out := make([]grid.Pos, len(b.queue))
	copy(out, b.queue)
	return out
}

// Order returns a copy of the positions visited since the last Reset, in
// visit order.
func (b *BFS) Order() []grid.Pos {
	out := make([]grid.Pos, len(b.order))
	copy(out, b.order)
	return out
}
