// cmd/wifiquick/main.go

// Package main provides the entry point for wifiquick.
//
// wifiquick runs one wake cycle of a battery device: count the wake,
// reconnect (fast when the cached state allows it), publish status and
// report how long to sleep before the next try.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
