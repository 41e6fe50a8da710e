package cmd

import (
	"fmt"

	"github.com/go-drift/reflex/cmd/reflex/internal/config"
	"github.com/go-drift/reflex/pkg/engine"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved project configuration",
		Long: `Show the configuration resolved from the enclosing Go module and its
optional reflex.yaml:

  app:
    name: Notes              # default: last element of the module path
    xclass: notes            # default: the app name
    settings: window.toml    # settings file, relative to the module root
  window:
    width: 800
    height: 600
    resizable: true
    debug: false

The effective window settings are printed in the settings file format.`,
		Usage: "reflex config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("config takes no arguments (got %q)", args[0])
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	settings, err := cfg.Settings(engine.DefaultSettings())
	if err != nil {
		return err
	}
	data, err := settings.Marshal()
	if err != nil {
		return err
	}

	file := config.FileName + " (not found, using defaults)"
	if cfg.Found {
		file = config.FileName
	}
	settingsFile := "(none)"
	if cfg.SettingsPath != "" {
		settingsFile = cfg.SettingsPath
	}

	fmt.Fprintf(stdout, "Project:  %s\n", cfg.Root)
	fmt.Fprintf(stdout, "Module:   %s\n", cfg.ModulePath)
	fmt.Fprintf(stdout, "App:      %s (xclass %s)\n", cfg.AppName, cfg.XClass)
	fmt.Fprintf(stdout, "Config:   %s\n", file)
	fmt.Fprintf(stdout, "Settings: %s\n", settingsFile)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Window settings:")
	fmt.Fprint(stdout, string(data))
	return nil
}
