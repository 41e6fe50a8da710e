package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is a textual outline of the native tree.
type Snapshot struct {
	Tree string
}

// Snapshot captures the window's current native tree.
func (a *AppTester) Snapshot() *Snapshot {
	return &Snapshot{Tree: a.Dump()}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When REFLEX_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("REFLEX_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: REFLEX_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(&Snapshot{Tree: string(data)}); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: REFLEX_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s.Tree), 0o644)
}

// Diff returns a line diff between other (expected) and this snapshot.
// Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	if s.Tree == other.Tree {
		return ""
	}
	return lineDiff(other.Tree, s.Tree)
}

func lineDiff(expected, actual string) string {
	want := strings.Split(expected, "\n")
	got := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")
	for i := range max(len(want), len(got)) {
		var e, a string
		if i < len(want) {
			e = want[i]
		}
		if i < len(got) {
			a = got[i]
		}
		if e == a {
			continue
		}
		if i < len(want) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(got) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
