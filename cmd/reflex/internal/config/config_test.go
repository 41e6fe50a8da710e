package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/reflex/pkg/engine"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func project(t *testing.T, modPath, reflexYAML string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module "+modPath+"\n\ngo 1.24\n")
	if reflexYAML != "" {
		writeFile(t, dir, FileName, reflexYAML)
	}
	return dir
}

func TestResolve_Defaults(t *testing.T) {
	dir := project(t, "example.com/tools/notes/v2", "")
	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.Found {
		t.Error("Found should be false without reflex.yaml")
	}
	if r.ModulePath != "example.com/tools/notes/v2" {
		t.Errorf("ModulePath = %q", r.ModulePath)
	}
	if r.AppName != "notes" {
		t.Errorf("AppName = %q, want notes (major version suffix dropped)", r.AppName)
	}
	if r.XClass != "notes" {
		t.Errorf("XClass = %q, want the app name", r.XClass)
	}
	if r.SettingsPath != "" {
		t.Errorf("SettingsPath = %q, want empty", r.SettingsPath)
	}
}

func TestResolve_File(t *testing.T) {
	dir := project(t, "example.com/notes", `
app:
  name: Notes
  xclass: notes-app
  settings: conf/window.toml
window:
  width: 800
  resizable: false
`)
	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Found || r.AppName != "Notes" || r.XClass != "notes-app" {
		t.Errorf("resolved = %+v", r)
	}
	if want := filepath.Join(dir, "conf", "window.toml"); r.SettingsPath != want {
		t.Errorf("SettingsPath = %q, want %q", r.SettingsPath, want)
	}
	if r.Window.Width != 800 || r.Window.Resizable == nil || *r.Window.Resizable {
		t.Errorf("window = %+v", r.Window)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "app: [", "failed to parse reflex.yaml"},
		{"xclass with space", "app:\n  xclass: my app\n", "invalid character"},
		{"negative size", "window:\n  width: -1\n", "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(project(t, "example.com/x", tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Resolve = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Resolve(t.TempDir()); err == nil || !strings.Contains(err.Error(), "go.mod") {
		t.Errorf("Resolve without go.mod = %v", err)
	}
}

func TestResolved_Settings(t *testing.T) {
	dir := project(t, "example.com/notes", `
app:
  settings: window.toml
window:
  height: 240
  debug: true
`)
	writeFile(t, dir, "window.toml", "width = 640\nheight = 480\nscheme = \"plastic\"\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	s, err := r.Settings(engine.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 640 || s.Height != 240 {
		t.Errorf("size = %dx%d, want 640x240", s.Width, s.Height)
	}
	if !s.Debug || s.XClass != "notes" {
		t.Errorf("settings = %+v", s)
	}
	if s.Scheme != "plastic" {
		t.Errorf("scheme = %q, want plastic from the settings file", s.Scheme)
	}
}

func TestResolved_SettingsWithoutFile(t *testing.T) {
	r, err := Resolve(project(t, "example.com/notes", "window:\n  width: 320\n"))
	if err != nil {
		t.Fatal(err)
	}
	base := engine.DefaultSettings()
	base.Height = 100
	s, err := r.Settings(base)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 320 || s.Height != 100 || !s.Resizable {
		t.Errorf("settings = %+v", s)
	}
}

func TestFindProjectRoot(t *testing.T) {
	dir := project(t, "example.com/notes", "")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(nested)

	root, err := FindProjectRoot()
	if err != nil {
		t.Fatal(err)
	}
	got, _ := filepath.EvalSymlinks(root)
	want, _ := filepath.EvalSymlinks(dir)
	if got != want {
		t.Errorf("root = %q, want %q", got, want)
	}
}
