package engine

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/reflex/pkg/errors"
	"github.com/go-drift/reflex/pkg/style"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings_YAML(t *testing.T) {
	path := writeFile(t, "reflex.yaml", `
width: 600
height: 400
background: white
selection: "#3f51b5"
visible_focus: false
scheme: plastic
size_range:
  min_w: 200
  min_h: 100
`)
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	noFocus := false
	want := DefaultSettings()
	want.Width, want.Height = 600, 400
	want.Background = &style.RGBColor{R: 255, G: 255, B: 255}
	want.Selection = &style.RGBColor{R: 0x3f, G: 0x51, B: 0xb5}
	want.VisibleFocus = &noFocus
	want.Scheme = style.SchemePlastic
	want.SizeRange = &SizeRange{MinW: 200, MinH: 100}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSettings_TOML(t *testing.T) {
	path := writeFile(t, "reflex.toml", `
x = 10
y = 20
force_position = true
resizable = false
font_size = 16
foreground = "#112233"
`)
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got.X != 10 || got.Y != 20 || !got.ForcePosition || got.Resizable {
		t.Errorf("window settings = %+v", got)
	}
	if got.Width != DefaultWidth || got.Scheme != style.SchemeGtk {
		t.Errorf("defaults lost: width=%d scheme=%q", got.Width, got.Scheme)
	}
	if got.FontSize != 16 {
		t.Errorf("font size = %d, want 16", got.FontSize)
	}
	if got.Foreground == nil || *got.Foreground != (style.RGBColor{R: 0x11, G: 0x22, B: 0x33}) {
		t.Errorf("foreground = %v", got.Foreground)
	}
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown scheme", "a.yaml", "scheme: neon\n"},
		{"bad color", "b.yaml", "background: notacolor\n"},
		{"zero size", "c.toml", "width = 0\n"},
		{"unknown format", "d.json", "{}"},
		{"malformed", "e.yaml", "width: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettings(writeFile(t, tt.file, tt.content))
			var rerr *errors.ReflexError
			if !stderrors.As(err, &rerr) || rerr.Kind != errors.KindConfig {
				t.Errorf("err = %v, want config error", err)
			}
		})
	}

	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}
}

func TestSettings_Environment(t *testing.T) {
	font := style.Courier
	s := DefaultSettings()
	s.Scheme = ""
	s.Background = &style.RGBColor{R: 1, G: 2, B: 3}
	s.Font = &font

	env := s.Environment()
	if env.Scheme != "gtk+" {
		t.Errorf("scheme = %q, want gtk+", env.Scheme)
	}
	if env.Background == nil || *env.Background != uint32(style.RGB(1, 2, 3)) {
		t.Errorf("background = %v", env.Background)
	}
	if env.Font == nil || *env.Font != int(style.Courier) {
		t.Errorf("font = %v", env.Font)
	}
	if env.Foreground != nil || env.VisibleFocus != nil {
		t.Error("unset settings leaked into the environment")
	}
}

func TestSettings_MarshalRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.Background = &style.RGBColor{R: 0x42, G: 0xa5, B: 0xf5}
	data, err := s.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	got, err := LoadSettings(writeFile(t, "out.yaml", string(data)))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
