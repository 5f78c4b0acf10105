package core

import (
	"reflect"
	"testing"

	"github.com/go-drift/inspect/pkg/errors"
)

type leaf struct {
	StatelessBase
	name string
}

func (l leaf) Build(BuildContext) Widget { return nil }

type keyed struct{ key string }

func (k keyed) Key() any { return k.key }

type scope struct {
	InheritedBase
	Value int
	Child Widget
}

func (s scope) ChildWidget() Widget { return s.Child }

func (s scope) UpdateShouldNotify(old InheritedWidget) bool {
	return s.Value != old.(scope).Value
}

type mapContext map[reflect.Type]any

func (m mapContext) DependOnInherited(t reflect.Type, _ any) any { return m[t] }

func TestOptionalIf(t *testing.T) {
	if got := OptionalIf(false, leaf{name: "a"}); got.some != nil {
		t.Error("OptionalIf(false) should be absent")
	}
	got := OptionalIf(true, leaf{name: "a"})
	if got.some == nil || got.some.name != "a" {
		t.Errorf("OptionalIf(true) = %+v", got)
	}
}

func TestConditionalOf(t *testing.T) {
	yes := ConditionalOf(true, leaf{name: "t"}, keyed{key: "f"})
	if s, ok := yes.storage.(trueContent[leaf]); !ok || s.view.name != "t" {
		t.Errorf("true branch storage = %#v", yes.storage)
	}
	no := ConditionalOf(false, leaf{name: "t"}, keyed{key: "f"})
	if s, ok := no.storage.(falseContent[keyed]); !ok || s.view.key != "f" {
		t.Errorf("false branch storage = %#v", no.storage)
	}
}

func TestAnyWidgetForwardsKey(t *testing.T) {
	if got := AnyWidgetOf(keyed{key: "k"}).Key(); got != "k" {
		t.Errorf("Key() = %v, want k", got)
	}
	if got := (AnyWidget{}).Key(); got != nil {
		t.Errorf("zero AnyWidget Key() = %v", got)
	}
	if got := ModifiedOf(keyed{key: "m"}, 1).Key(); got != "m" {
		t.Errorf("Modified Key() = %v, want m", got)
	}
}

func TestTuples(t *testing.T) {
	t3 := Tuple3Of(leaf{name: "a"}, keyed{key: "b"}, leaf{name: "c"})
	if t3.v0.name != "a" || t3.v1.key != "b" || t3.v2.name != "c" {
		t.Errorf("Tuple3Of = %+v", t3)
	}
	t4 := Tuple4Of(leaf{}, leaf{}, leaf{}, keyed{key: "d"})
	if t4.v3.key != "d" {
		t.Errorf("Tuple4Of = %+v", t4)
	}
}

func TestAmbientGetPanicsWhenUnfilled(t *testing.T) {
	var a Ambient[*int]
	if a.Present() {
		t.Fatal("zero Ambient should not be present")
	}
	defer func() {
		if recover() == nil {
			t.Error("Get on an unfilled Ambient should panic")
		}
	}()
	a.Get()
}

func TestAmbientFill(t *testing.T) {
	var a Ambient[string]
	if a.AmbientKey() != "string" {
		t.Errorf("AmbientKey() = %q", a.AmbientKey())
	}
	filled, err := a.Fill("hello")
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if got := filled.(Ambient[string]).Get(); got != "hello" {
		t.Errorf("Get() = %q", got)
	}
	if a.Present() {
		t.Error("Fill must not modify the receiver")
	}

	_, err = a.Fill(42)
	var mismatch *errors.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Fill(42) error = %v, want TypeMismatchError", err)
	}
	if mismatch.Expected != "string" || mismatch.Actual != "int" {
		t.Errorf("mismatch = %+v", mismatch)
	}
}

func TestDependOn(t *testing.T) {
	ctx := mapContext{reflect.TypeFor[scope](): scope{Value: 3}}
	got, ok := DependOn[scope](ctx)
	if !ok || got.Value != 3 {
		t.Errorf("DependOn = %+v, %v", got, ok)
	}
	if _, ok := DependOn[scope](mapContext{}); ok {
		t.Error("DependOn should fail without an enclosing scope")
	}
	if _, ok := DependOn[scope](nil); ok {
		t.Error("DependOn(nil) should fail")
	}
}

func TestStateful(t *testing.T) {
	w := Stateful(
		func() int { return 7 },
		func(n int, ctx BuildContext) Widget { return keyed{key: string(rune('0' + n))} },
	)
	sw, ok := w.(StatefulWidget)
	if !ok {
		t.Fatalf("Stateful returned %T", w)
	}
	state := sw.CreateState()
	state.(Initializer).InitState()
	if got := state.Build(nil).Key(); got != "7" {
		t.Errorf("Build().Key() = %v, want 7", got)
	}
}

func TestStateBase(t *testing.T) {
	var s StateBase
	w := Stateful(func() int { return 0 }, func(int, BuildContext) Widget { return nil }).(StatefulWidget)
	s.AttachWidget(w)
	if s.Widget() != w {
		t.Error("Widget() should return the attached widget")
	}
}
