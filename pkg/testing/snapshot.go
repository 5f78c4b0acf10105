package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-drift/inspect/pkg/accessor"
	"github.com/go-drift/inspect/pkg/config"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the attribute tree of the pumped widget: its fields,
// the bodies of custom widgets and the modifiers applied to it.
type Snapshot struct {
	// Root is the import-path qualified type of the root node, relative to
	// the module under test.
	Root string         `json:"root"`
	Tree *accessor.Node `json:"tree"`

	update bool
}

// CaptureSnapshot captures the attribute tree of the pumped widget. It
// returns an empty snapshot before PumpWidget.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{update: t.config.UpdateSnapshots}
	if t.root == nil {
		return snap
	}
	snap.Root = t.config.TrimModule(accessor.Default.NamespacedTypeName(t.root.Node()))
	snap.Tree = t.root.Tree()
	return snap
}

// MatchSnapshot compares the pumped tree against the snapshot called name
// in the configured snapshot directory.
func (t *WidgetTester) MatchSnapshot(tt TestingT, name string) {
	tt.Helper()
	t.CaptureSnapshot().MatchesFile(tt, t.config.SnapshotPath(name))
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When DRIFT_UPDATE_SNAPSHOTS=1
// is set, or snapshot.update in inspect.yaml, the file is silently updated
// instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if s.update {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, config.UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, config.UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns the difference between other (expected) and this snapshot
// (actual), or the empty string if they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(other, s, cmpopts.IgnoreUnexported(Snapshot{}))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
