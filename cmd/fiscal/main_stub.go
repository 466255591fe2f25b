//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of fiscal requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/fiscal` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Headless tools: ./cmd/policy-replay and ./cmd/policy-sweep.")
	os.Exit(2)
}
