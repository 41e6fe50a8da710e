package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/reflex/pkg/engine"
)

// FileName is the optional project configuration file.
const FileName = "reflex.yaml"

// Config represents the optional reflex.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Window WindowConfig `yaml:"window"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name   string `yaml:"name,omitempty"`
	XClass string `yaml:"xclass,omitempty"`
	// Settings names a settings file (.yaml, .yml or .toml) relative to the
	// project root.
	Settings string `yaml:"settings,omitempty"`
}

// WindowConfig overrides individual window settings.
type WindowConfig struct {
	Width     int   `yaml:"width,omitempty"`
	Height    int   `yaml:"height,omitempty"`
	Resizable *bool `yaml:"resizable,omitempty"`
	Debug     bool  `yaml:"debug,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root         string
	ModulePath   string
	AppName      string
	XClass       string
	SettingsPath string
	Window       WindowConfig
	// Found reports whether reflex.yaml exists.
	Found bool
}

// LoadOptional reads reflex.yaml if present.
func LoadOptional(dir string) (*Config, bool, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, true, nil
}

// Resolve loads reflex.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, found, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	xclass := strings.TrimSpace(cfg.App.XClass)
	if xclass == "" {
		xclass = appName
	}
	if err := validateXClass(xclass); err != nil {
		return nil, err
	}

	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return nil, fmt.Errorf("window size must not be negative (got %dx%d)", cfg.Window.Width, cfg.Window.Height)
	}

	var settingsPath string
	if p := strings.TrimSpace(cfg.App.Settings); p != "" {
		settingsPath = p
		if !filepath.IsAbs(p) {
			settingsPath = filepath.Join(dir, p)
		}
	}

	return &Resolved{
		Root:         dir,
		ModulePath:   modulePath,
		AppName:      appName,
		XClass:       xclass,
		SettingsPath: settingsPath,
		Window:       cfg.Window,
		Found:        found,
	}, nil
}

// Settings layers the project configuration over base: the settings file
// first, then the window overrides and the X class.
func (r *Resolved) Settings(base engine.Settings) (engine.Settings, error) {
	s := base
	if r.SettingsPath != "" {
		loaded, err := engine.LoadSettings(r.SettingsPath)
		if err != nil {
			return base, err
		}
		s = loaded
	}
	if r.Window.Width > 0 {
		s.Width = r.Window.Width
	}
	if r.Window.Height > 0 {
		s.Height = r.Window.Height
	}
	if r.Window.Resizable != nil {
		s.Resizable = *r.Window.Resizable
	}
	if r.Window.Debug {
		s.Debug = true
	}
	s.XClass = r.XClass
	return s, s.Validate()
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "reflex_app"
	}
	return base
}

// validateXClass accepts the printable, space-free names window managers
// group windows by.
func validateXClass(xclass string) error {
	for _, r := range xclass {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return fmt.Errorf("app.xclass contains invalid character %q in %q", r, xclass)
		}
	}
	return nil
}
