// Package search provides steppable grid search controllers.
//
// What
//
//   - Stepper is the capability every strategy implements:
//     Step(g) advances the search by exactly one unit of work and reports
//     whether it has finished; Reset(source, target) discards in-flight state
//     and seeds a new search.
//   - BFS is breadth-first search with a FIFO frontier queue. Each Step pops
//     one position, expands it, and marks the grid's visited/frontier flags.
//   - New(kind) selects a strategy by Kind so callers never switch on the
//     concrete type. Adding Dijkstra or A* means adding a Kind.
//   - Path rebuilds the source→target route from the origin bits BFS records
//     on every cell it discovers.
//
// Determinism
//
//	The queue is FIFO and grid.Neighbors returns up, left, right, down, so
//	for a fixed grid and source the visit order is fully reproducible.
//
// State machine
//
//	Idle ──Reset──▶ Searching ──target popped──▶ Found
//	                    │
//	                    └──queue empty──▶ Exhausted
//
//	Found and Exhausted are terminal; Step keeps returning true until the
//	next Reset.
//
// Concurrency
//
//	Single-threaded and cooperative. Step never blocks and holds no
//	reference to the grid between calls. Cancel a search by not calling
//	Step again, or by calling Reset.
//
// Complexity (N = rows×cols)
//
//   - Step:              O(1) amortised (at most four neighbours).
//   - Full search:       O(N); each cell is enqueued at most once.
//   - Path:              O(path length).
//
// Errors
//
//   - grid.ErrInvalidCoordinate  negative Reset coordinates, or a source
//     outside the grid detected on the first Step (see Err).
//   - ErrSameEndpoints          Reset with source == target.
//   - ErrUnknownStrategy        New with an unregistered Kind.
//   - ErrNoPath                 Path on a target without a back-pointer chain.
package search
