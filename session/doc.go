// Package session holds the application state of the visualiser: the grid,
// the active search strategy, the pause flag and the wall generator.
//
// A driver (the terminal animation loop or the headless runner) calls Step
// once per timer tick while the session is not paused. Step pauses the
// session by itself once the search is done, so the driver needs no other
// synchronisation.
//
// A Session is not safe for concurrent use; drive it from one goroutine.
package session
