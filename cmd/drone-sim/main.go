package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// resetTerminal restores the terminal on a crash; set once the screen is up
var resetTerminal atomic.Pointer[func()]

func main() {
	// Panic Recovery: Ensure terminal is reset even if the simulation crashes
	defer func() {
		if r := recover(); r != nil {
			if reset := resetTerminal.Load(); reset != nil {
				(*reset)()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDRONE-SIM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
