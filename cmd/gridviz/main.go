// Command gridviz animates breadth-first search over a random occupancy
// grid in the terminal, or runs it headless and prints the result.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
