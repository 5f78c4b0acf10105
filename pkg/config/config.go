// Package config reads the optional inspect.yaml that tunes searches, trees
// and snapshots for a module's widget tests.
//
//	search:
//	  order: depthFirst
//	  maxDepth: 64
//	snapshot:
//	  dir: testdata/snapshots
//	tree:
//	  maxDepth: 16
//
// Every key is optional. Setting DRIFT_UPDATE_SNAPSHOTS=1 in the environment
// turns on snapshot.update.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/inspect/pkg/accessor"
	"github.com/go-drift/inspect/pkg/inspect"
)

// FileName is the name of the configuration file.
const FileName = "inspect.yaml"

// UpdateSnapshotsEnv overrides snapshot.update when set to "1".
const UpdateSnapshotsEnv = "DRIFT_UPDATE_SNAPSHOTS"

// DefaultSnapshotDir is where snapshots go when snapshot.dir is unset.
const DefaultSnapshotDir = "testdata"

// Config represents the optional inspect.yaml configuration.
type Config struct {
	Search   SearchConfig   `yaml:"search"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Tree     TreeConfig     `yaml:"tree"`
}

// SearchConfig contains search settings.
type SearchConfig struct {
	Order    string `yaml:"order,omitempty"`
	MaxDepth int    `yaml:"maxDepth,omitempty"`
}

// SnapshotConfig contains snapshot settings.
type SnapshotConfig struct {
	Dir    string `yaml:"dir,omitempty"`
	Update bool   `yaml:"update,omitempty"`
}

// TreeConfig contains attribute tree settings.
type TreeConfig struct {
	MaxDepth int `yaml:"maxDepth,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Root is the directory the configuration was resolved for.
	Root string
	// ModulePath is the path declared by the nearest go.mod, empty outside
	// a module.
	ModulePath string
	// ModuleName is the last element of ModulePath without a major version
	// suffix.
	ModuleName      string
	SearchOrder     inspect.Traversal
	SearchMaxDepth  int
	SnapshotDir     string
	UpdateSnapshots bool
	TreeMaxDepth    int
}

// Default returns the configuration used when no file is present.
func Default() *Resolved {
	return &Resolved{
		Root:            ".",
		SearchOrder:     inspect.BreadthFirst,
		SearchMaxDepth:  inspect.DefaultMaxDepth,
		SnapshotDir:     DefaultSnapshotDir,
		UpdateSnapshots: os.Getenv(UpdateSnapshotsEnv) == "1",
		TreeMaxDepth:    accessor.DefaultTreeDepth,
	}
}

// LoadOptional reads inspect.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads inspect.yaml from dir (if present) and resolves defaults.
// The module path comes from the nearest go.mod at or above dir.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	res := Default()
	res.Root = dir

	if root, err := FindModuleRoot(dir); err == nil {
		path, err := modulePath(root)
		if err != nil {
			return nil, err
		}
		res.ModulePath = path
		res.ModuleName = moduleName(path)
	}

	if order := strings.TrimSpace(cfg.Search.Order); order != "" {
		t, err := inspect.ParseTraversal(order)
		if err != nil {
			return nil, fmt.Errorf("search.order: %w", err)
		}
		res.SearchOrder = t
	}
	if cfg.Search.MaxDepth < 0 {
		return nil, fmt.Errorf("search.maxDepth must not be negative (got %d)", cfg.Search.MaxDepth)
	}
	if cfg.Search.MaxDepth > 0 {
		res.SearchMaxDepth = cfg.Search.MaxDepth
	}
	if cfg.Tree.MaxDepth < 0 {
		return nil, fmt.Errorf("tree.maxDepth must not be negative (got %d)", cfg.Tree.MaxDepth)
	}
	if cfg.Tree.MaxDepth > 0 {
		res.TreeMaxDepth = cfg.Tree.MaxDepth
	}
	if snapDir := strings.TrimSpace(cfg.Snapshot.Dir); snapDir != "" {
		res.SnapshotDir = snapDir
	}
	res.UpdateSnapshots = res.UpdateSnapshots || cfg.Snapshot.Update

	return res, nil
}

// FindModuleRoot walks up from dir to the directory holding go.mod.
func FindModuleRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
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

// Options returns the inspect options the configuration selects.
func (r *Resolved) Options() []inspect.Option {
	return []inspect.Option{
		inspect.WithSearchOrder(r.SearchOrder),
		inspect.WithMaxDepth(r.SearchMaxDepth),
		inspect.WithTreeDepth(r.TreeMaxDepth),
	}
}

// SnapshotPath returns the file a snapshot called name is stored in.
func (r *Resolved) SnapshotPath(name string) string {
	return filepath.Join(r.SnapshotDir, name+".snapshot.json")
}

// TrimModule removes the module path from an import-path qualified name,
// so "github.com/acme/app/ui.Card" becomes "ui.Card".
func (r *Resolved) TrimModule(name string) string {
	if r.ModulePath == "" {
		return name
	}
	return strings.ReplaceAll(name, r.ModulePath+"/", "")
}

func modulePath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	if err := module.CheckImportPath(path); err != nil {
		return "", fmt.Errorf("invalid module path in go.mod: %w", err)
	}
	return path, nil
}

func moduleName(path string) string {
	prefix, _, ok := module.SplitPathVersion(path)
	if !ok {
		prefix = path
	}
	parts := strings.Split(prefix, "/")
	return parts[len(parts)-1]
}
