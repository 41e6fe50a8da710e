// Command reflex replays showcase demos on the headless toolkit.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/reflex/cmd/reflex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
