package testing

import (
	"errors"
	"testing"

	"github.com/go-drift/inspect/pkg/ambient"
	"github.com/go-drift/inspect/pkg/config"
	"github.com/go-drift/inspect/pkg/core"
	"github.com/go-drift/inspect/pkg/inspect"
)

// ErrNotPumped is returned by operations that need a pumped widget.
var ErrNotPumped = errors.New("no widget pumped: call PumpWidget first")

// WidgetTester inspects a widget tree the way an app would build it, with
// the ambient dependencies a test provides instead of the running app.
type WidgetTester struct {
	registry *ambient.Registry
	kinds    *inspect.Kinds
	config   *config.Resolved
	widget   core.Widget
	root     *inspect.View
}

// NewWidgetTester creates a tester with the default configuration.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		registry: ambient.NewRegistry(),
		kinds:    inspect.DefaultKinds(),
		config:   config.Default(),
	}
}

// NewWidgetTesterWithT creates a tester configured from the inspect.yaml
// of the test's working directory, if there is one, that cleans up via
// t.Cleanup(). This is the recommended constructor for tests.
func NewWidgetTesterWithT(t testing.TB) *WidgetTester {
	t.Helper()
	tester := NewWidgetTester()
	cfg, err := config.Resolve(".")
	if err != nil {
		t.Fatalf("inspect config: %v", err)
	}
	tester.config = cfg
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup drops the pumped tree.
func (t *WidgetTester) Cleanup() {
	t.widget = nil
	t.root = nil
}

// Config returns the configuration the tester inspects with.
func (t *WidgetTester) Config() *config.Resolved {
	return t.config
}

// SetConfig replaces the configuration. Must be called before PumpWidget.
func (t *WidgetTester) SetConfig(cfg *config.Resolved) {
	t.config = cfg
}

// Kinds returns the kind registry used to classify nodes. Register custom
// kinds on it before PumpWidget.
func (t *WidgetTester) Kinds() *inspect.Kinds {
	return t.kinds
}

// Provide makes instance available to widgets declaring an ambient
// dependency of its type.
func (t *WidgetTester) Provide(instance any) string {
	return t.registry.Provide(instance)
}

// Register makes value available under key.
func (t *WidgetTester) Register(key string, value any) {
	t.registry.Register(key, value)
}

// PumpWidget stores widget as the tree under test and inspects it.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	t.widget = widget
	return t.Pump()
}

// Pump inspects the stored widget again, picking up changes made by taps
// and newly provided dependencies.
func (t *WidgetTester) Pump() error {
	t.root = nil
	if t.widget == nil {
		return ErrNotPumped
	}
	opts := append(t.config.Options(),
		inspect.WithRegistry(t.registry),
		inspect.WithKinds(t.kinds),
	)
	root, err := inspect.Inspect(t.widget, opts...)
	if err != nil {
		return err
	}
	t.root = root
	return nil
}

// Root returns the root view of the pumped tree, nil before PumpWidget.
func (t *WidgetTester) Root() *inspect.View {
	return t.root
}

// Find evaluates a finder against the pumped tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder, err: ErrNotPumped}
	}
	views, err := finder.Evaluate(t.root)
	return FinderResult{views: views, finder: finder, err: err}
}
