// Package gridviz is a step-by-step grid search engine and terminal
// visualiser.
//
// What is gridviz?
//
//	A small stack of packages that together animate a path search over a
//	random occupancy grid:
//		• grid: packed per-cell flags, states, neighbours, origin bits
//		• search: resumable Stepper strategies (breadth-first today)
//		• session: a single run with layout, pause, speed and metrics
//		• render: lipgloss colour rendering and plain ASCII dumps
//		• config: YAML config with validated defaults
//
// Each call to a Stepper's Step performs one unit of work, so a driver can
// draw the grid between steps. cmd/gridviz wires it all into a bubbletea
// program (gridviz play) and a headless runner (gridviz run).
//
// Quick ASCII example (S source, T target, # wall, o visited, * path):
//
//	S*#T
//	o*#*
//	o***
//
//	go install github.com/katalvlaran/gridviz/cmd/gridviz@latest
package gridviz
