package cmd

import (
	"fmt"

	"github.com/go-drift/reflex/showcase"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demos",
		Short: "List showcase demos",
		Long: `List the showcase demos that "reflex run" can replay, with their
category and the steps of their default script.`,
		Usage: "reflex demos",
		Run:   runDemos,
	})
}

func runDemos(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("demos takes no arguments (got %q)", args[0])
	}
	for _, d := range showcase.Demos() {
		fmt.Fprintf(stdout, "  %-10s %-12s %s\n", d.Name, d.Category, d.Subtitle)
		fmt.Fprintf(stdout, "  %-10s %-12s script: %v\n", "", "", d.Script)
	}
	return nil
}
