// Command kdforest renders an image in which every color of a bit-depth
// palette appears exactly once, flooding smoothly across the canvas.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kdforest:", err)
		os.Exit(1)
	}
}
