//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of gridcaster requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/gridcaster` or build with `-tags ebiten`,")
	fmt.Fprintln(os.Stderr, "or play in the terminal with `go run ./cmd/gridcaster-tui`.")
	os.Exit(2)
}
