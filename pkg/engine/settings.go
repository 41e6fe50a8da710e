package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/reflex/pkg/errors"
	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// Default window settings.
const (
	DefaultWidth    = 400
	DefaultHeight   = 300
	DefaultFontSize = 14
)

// SizeRange bounds the main window's size. Zero maxima are unbounded.
type SizeRange struct {
	MinW int `yaml:"min_w" toml:"min_w"`
	MinH int `yaml:"min_h" toml:"min_h"`
	MaxW int `yaml:"max_w" toml:"max_w"`
	MaxH int `yaml:"max_h" toml:"max_h"`
}

// Settings configure the toolkit environment and the main window. They are
// read once, by Start.
type Settings struct {
	X      int `yaml:"x" toml:"x"`
	Y      int `yaml:"y" toml:"y"`
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`

	// ForcePosition keeps the window at X, Y instead of letting the window
	// manager place it.
	ForcePosition bool `yaml:"force_position" toml:"force_position"`
	// Resizable makes the root widget follow the window's size.
	Resizable bool `yaml:"resizable" toml:"resizable"`
	// IgnoreEscClose keeps the escape key from closing the window.
	IgnoreEscClose bool `yaml:"ignore_esc_close" toml:"ignore_esc_close"`

	FontSize     int             `yaml:"font_size" toml:"font_size"`
	Font         *style.Font     `yaml:"font,omitempty" toml:"font,omitempty"`
	Background   *style.RGBColor `yaml:"background,omitempty" toml:"background,omitempty"`
	Background2  *style.RGBColor `yaml:"background2,omitempty" toml:"background2,omitempty"`
	Foreground   *style.RGBColor `yaml:"foreground,omitempty" toml:"foreground,omitempty"`
	Inactive     *style.RGBColor `yaml:"inactive,omitempty" toml:"inactive,omitempty"`
	Selection    *style.RGBColor `yaml:"selection,omitempty" toml:"selection,omitempty"`
	VisibleFocus *bool           `yaml:"visible_focus,omitempty" toml:"visible_focus,omitempty"`
	Scheme       style.Scheme    `yaml:"scheme,omitempty" toml:"scheme,omitempty"`
	SizeRange    *SizeRange      `yaml:"size_range,omitempty" toml:"size_range,omitempty"`

	// XClass is the window class hint. Empty uses the title.
	XClass string `yaml:"xclass,omitempty" toml:"xclass,omitempty"`
	// Debug logs lifecycle events of the runner.
	Debug bool `yaml:"debug,omitempty" toml:"debug,omitempty"`
}

// DefaultSettings returns a resizable 400x300 window using the gtk+ scheme.
func DefaultSettings() Settings {
	return Settings{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Resizable: true,
		FontSize:  DefaultFontSize,
		Scheme:    style.SchemeGtk,
	}
}

// LoadSettings reads settings from a .yaml, .yml or .toml file. Fields the
// file leaves out keep their defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, configError("engine.LoadSettings", fmt.Errorf("failed to read %s: %w", path, err))
	}
	if err := s.decode(filepath.Ext(path), data); err != nil {
		return s, configError("engine.LoadSettings", fmt.Errorf("failed to parse %s: %w", path, err))
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Settings) decode(ext string, data []byte) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, s)
	case ".toml":
		return toml.Unmarshal(data, s)
	default:
		return fmt.Errorf("unsupported settings format %q", ext)
	}
}

// Validate reports the first invalid field.
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return configError("engine.Settings", fmt.Errorf("window size %dx%d must be positive", s.Width, s.Height))
	case s.FontSize < 0:
		return configError("engine.Settings", fmt.Errorf("font size %d must not be negative", s.FontSize))
	case s.Scheme != "" && !s.Scheme.Valid():
		return configError("engine.Settings", fmt.Errorf("unknown scheme %q", s.Scheme))
	}
	return nil
}

// Marshal renders the settings in the same YAML form LoadSettings reads.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Environment converts the toolkit-wide part of the settings.
func (s Settings) Environment() toolkit.Environment {
	env := toolkit.Environment{
		Scheme:       string(s.Scheme),
		FontSize:     s.FontSize,
		Background:   packed(s.Background),
		Background2:  packed(s.Background2),
		Foreground:   packed(s.Foreground),
		Inactive:     packed(s.Inactive),
		Selection:    packed(s.Selection),
		VisibleFocus: s.VisibleFocus,
	}
	if env.Scheme == "" {
		env.Scheme = string(style.SchemeGtk)
	}
	if s.Font != nil {
		f := int(*s.Font)
		env.Font = &f
	}
	return env
}

func packed(c *style.RGBColor) *uint32 {
	if c == nil {
		return nil
	}
	v := uint32(c.Color())
	return &v
}

func configError(op string, err error) *errors.ReflexError {
	return &errors.ReflexError{
		Op:        op,
		Kind:      errors.KindConfig,
		Err:       err,
		Timestamp: time.Now(),
	}
}
