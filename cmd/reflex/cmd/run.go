package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/reflex/cmd/reflex/internal/config"
	"github.com/go-drift/reflex/pkg/engine"
	reflextest "github.com/go-drift/reflex/pkg/testing"
	"github.com/go-drift/reflex/showcase"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Replay a demo headlessly",
		Long: `Start a showcase demo on the headless toolkit, replay scripted steps
and print every native call the demo makes, followed by the final tree.

Without steps the demo's default script is replayed.

Steps:
  tap:<label>     Activate the first widget labelled label
  check:<n>       Activate the nth check button
  type:<text>     Replace the text of the first input
  enter           Press enter in the first input
  pick:<item>     Choose an item of a menu, tree or browser
  slide:<value>   Move the first valuator
  resize:<w>x<h>  Resize the window
  close           Close the window

Flags:
  --settings FILE  Start from a settings file (.yaml, .yml or .toml)
  --no-project     Ignore reflex.yaml in the enclosing module
  --quiet          Print only the final tree

Window settings come from the demo, overlaid by reflex.yaml when the
enclosing Go module has one. --settings replaces both.`,
		Usage: "reflex run <demo> [step...] [--settings FILE] [--no-project] [--quiet]",
		Run:   runRun,
	})
}

type runOptions struct {
	settings  string
	noProject bool
	quiet     bool
}

func runRun(args []string) error {
	rest, opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("demo is required\n\nUsage: reflex run <demo> [step...]")
	}

	demo, ok := showcase.Lookup(rest[0])
	if !ok {
		return fmt.Errorf("unknown demo %q (see \"reflex demos\")", rest[0])
	}
	steps := rest[1:]
	if len(steps) == 0 {
		steps = demo.Script
	}

	settings, err := resolveSettings(demo, opts)
	if err != nil {
		return err
	}

	tester, err := reflextest.NewAppTester(demo.New(), settings, demo.Classes...)
	if err != nil {
		return err
	}
	defer tester.Close()

	tk := tester.Toolkit()
	trace := func(title string) {
		if !opts.quiet {
			fmt.Fprintf(stdout, "# %s\n", title)
			for _, op := range tk.Ops() {
				fmt.Fprintln(stdout, op)
			}
		}
		tk.ResetOps()
	}

	trace("start " + demo.Name)
	for _, step := range steps {
		if err := tester.Play(step); err != nil {
			return err
		}
		trace(step)
	}

	fmt.Fprintln(stdout, "# tree")
	fmt.Fprint(stdout, tester.Dump())
	fmt.Fprintf(stdout, "# %d update cycles, %d live handles\n", tester.Runner().Cycles(), tk.Live())
	return nil
}

func parseRunArgs(args []string) ([]string, runOptions, error) {
	opts := runOptions{}
	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--settings":
			if i+1 >= len(args) {
				return nil, opts, fmt.Errorf("--settings requires a file path")
			}
			opts.settings = args[i+1]
			i++
		case strings.HasPrefix(arg, "--settings="):
			opts.settings = strings.TrimPrefix(arg, "--settings=")
		case arg == "--no-project":
			opts.noProject = true
		case arg == "--quiet":
			opts.quiet = true
		default:
			filtered = append(filtered, arg)
		}
	}
	return filtered, opts, nil
}

func resolveSettings(demo showcase.Demo, opts runOptions) (engine.Settings, error) {
	settings := demo.Settings()
	if !opts.noProject {
		if root, err := config.FindProjectRoot(); err == nil {
			cfg, err := config.Resolve(root)
			if err != nil {
				return settings, err
			}
			if cfg.Found {
				if settings, err = cfg.Settings(settings); err != nil {
					return settings, err
				}
			}
		}
	}
	if opts.settings != "" {
		return engine.LoadSettings(opts.settings)
	}
	return settings, nil
}
