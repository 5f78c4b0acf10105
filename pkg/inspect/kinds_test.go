package inspect

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/inspect/pkg/accessor"
	"github.com/go-drift/inspect/pkg/widgets"
)

func TestLowerCamel(t *testing.T) {
	tests := map[string]string{
		"Container":   "container",
		"HTTPView":    "httpView",
		"URL":         "url",
		"text":        "text",
		"A":           "a",
		"":            "",
		"IOReaderBox": "ioReaderBox",
	}
	for in, want := range tests {
		if got := lowerCamel(in); got != want {
			t.Errorf("lowerCamel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchesPrefix(t *testing.T) {
	tests := []struct {
		full, prefix string
		want         bool
	}{
		{"Text", "Text", true},
		{"TextField", "Text", false},
		{"Modified[Text,Opacity]", "Modified", true},
		{"Modified[Text,Opacity]", "Modified[Text", true},
		{"Modified[TextField,Opacity]", "Modified[Text", false},
		{"Modified[Text,Opacity]", "Modified[", true},
		{"Tuple2[Text,Text]", "Tuple", false},
		{"Text", "", false},
	}
	for _, tt := range tests {
		if got := matchesPrefix(tt.full, tt.prefix); got != tt.want {
			t.Errorf("matchesPrefix(%q, %q) = %v, want %v", tt.full, tt.prefix, got, tt.want)
		}
	}
}

func TestKindsLookup(t *testing.T) {
	kinds := DefaultKinds()
	if kind, _ := kinds.Lookup(accessor.Default, widgets.WithOpacity(text("x"), 1)); kind.TypePrefix != "Modified" {
		t.Errorf("Lookup(Modified[Text,...]) = %+v, want the exact type name", kind)
	}

	kinds = NewKinds()
	kinds.Register(
		Kind{TypePrefix: "Modified[", Category: CategoryModified},
		Kind{TypePrefix: "Modified[Text", Category: CategoryLeaf, Call: "styledText"},
	)
	modified := widgets.WithOpacity(text("x"), 1)
	kind, ok := kinds.Lookup(accessor.Default, modified)
	if !ok || kind.TypePrefix != "Modified[Text" {
		t.Errorf("Lookup(Modified[Text,...]) = %+v, %v; want the longer prefix", kind, ok)
	}
	kind, _ = kinds.Lookup(accessor.Default, widgets.WithOpacity(widgets.Icon{}, 1))
	if kind.TypePrefix != "Modified[" {
		t.Errorf("Lookup(Modified[Icon,...]) = %+v", kind)
	}
	if _, ok := DefaultKinds().Lookup(accessor.Default, widgets.TextStyle{}); ok {
		t.Error("TextStyle should not match the Text kind")
	}
	if _, ok := (*Kinds)(nil).Lookup(accessor.Default, text("x")); ok {
		t.Error("nil registry should not match")
	}

	root := mustInspect(t, modified, WithKinds(kinds))
	if root.PathToRoot() != "styledText()" || root.Category() != CategoryLeaf {
		t.Errorf("root = %s (%s)", root, root.Category())
	}
}

func TestKindsRegisterCustomLabels(t *testing.T) {
	kinds := DefaultKinds()
	kinds.Register(Kind{TypePrefix: "card", Category: CategorySingle, ChildLabels: []string{"Body"}})

	root := mustInspect(t, card{Body: widgets.Centered(text("in"))}, WithKinds(kinds))
	body, err := root.Child()
	if err != nil {
		t.Fatal(err)
	}
	if body.TypeName() != "Center" {
		t.Errorf("TypeName() = %q", body.TypeName())
	}
}

func TestKindsClone(t *testing.T) {
	base := NewKinds()
	base.Register(Kind{TypePrefix: "Text", Category: CategoryLeaf})
	clone := base.Clone()
	clone.Register(Kind{TypePrefix: "Row", Category: CategoryMulti})

	if diff := cmp.Diff([]string{"Text"}, base.Prefixes()); diff != "" {
		t.Errorf("base prefixes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Row", "Text"}, clone.Prefixes()); diff != "" {
		t.Errorf("clone prefixes (-want +got):\n%s", diff)
	}
}

func TestCategory(t *testing.T) {
	transparent := map[Category]bool{
		CategoryLeaf:     false,
		CategoryWrapper:  true,
		CategoryModified: true,
		CategoryOptional: true,
		CategoryTuple:    false,
		CategoryMulti:    false,
		CategorySingle:   false,
	}
	for c, want := range transparent {
		if c.Transparent() != want {
			t.Errorf("%s.Transparent() = %v", c, !want)
		}
		if c.String() == "unknown" {
			t.Errorf("Category(%d) has no name", c)
		}
	}
}

func TestPath(t *testing.T) {
	p := RootPath("container")
	child := p.Append(childAtStep(1))
	mod := child.Append(modifierStep("Opacity", 0))
	attr := mod.Append(attributeStep("Value"))

	if p.String() != "container()" {
		t.Errorf("root = %q", p)
	}
	if got := attr.String(); got != "container().child(1).modifier(Opacity, 0).attribute(Value)" {
		t.Errorf("path = %q", got)
	}
	if child.Len() != 2 || p.Len() != 1 {
		t.Error("Append should not modify the receiver")
	}
	steps := attr.Steps()
	steps[0].Name = "changed"
	if attr.Steps()[0].Name != "container" {
		t.Error("Steps() should return a copy")
	}
}

// countingAccessor counts type name lookups.
type countingAccessor struct {
	accessor.Reflect
	calls *int
}

func (c countingAccessor) TypeName(v any) string {
	*c.calls++
	return c.Reflect.TypeName(v)
}

func TestWithAccessor(t *testing.T) {
	calls := 0
	root := mustInspect(t, column(text("a")), WithAccessor(countingAccessor{calls: &calls}))
	if _, err := root.ChildAt(0); err != nil {
		t.Fatal(err)
	}
	if calls == 0 {
		t.Error("custom accessor was not used")
	}
}
