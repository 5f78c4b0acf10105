package inspect

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/inspect/pkg/ambient"
	"github.com/go-drift/inspect/pkg/core"
	"github.com/go-drift/inspect/pkg/errors"
	"github.com/go-drift/inspect/pkg/widgets"
)

func mustInspect(t *testing.T, node any, opts ...Option) *View {
	t.Helper()
	v, err := Inspect(node, opts...)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	return v
}

func modifierKinds(v *View) []string {
	var kinds []string
	for _, m := range v.Modifiers() {
		kinds = append(kinds, m.Kind)
	}
	return kinds
}

func TestContainerScenario(t *testing.T) {
	tree := container{Children: []core.Widget{
		text("A"),
		widgets.WithBackground(text("B"), widgets.ColorRed),
		text("C"),
	}}
	root := mustInspect(t, tree)

	match, err := Find(root, HasText("B"))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got := match.Path(); got != "container().child(1)" {
		t.Errorf("Path() = %q, want container().child(1)", got)
	}
	if diff := cmp.Diff([]string{"Background"}, modifierKinds(match.View())); diff != "" {
		t.Errorf("modifiers mismatch (-want +got):\n%s", diff)
	}
	if n := match.View().ModifierCount("Background"); n != 1 {
		t.Errorf("ModifierCount = %d, want 1", n)
	}
}

func TestResetInvariant(t *testing.T) {
	tree := widgets.WithOpacity(
		widgets.Padded(widgets.EdgeInsetsAll(4), widgets.WithBackground(text("x"), widgets.ColorBlue)),
		0.5,
	)
	root := mustInspect(t, tree)
	if diff := cmp.Diff([]string{"Opacity"}, modifierKinds(root)); diff != "" {
		t.Errorf("root modifiers mismatch (-want +got):\n%s", diff)
	}
	child, err := root.Child()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Background"}, modifierKinds(child)); diff != "" {
		t.Errorf("single child must not inherit modifiers (-want +got):\n%s", diff)
	}

	plain := mustInspect(t, widgets.WithOpacity(column(text("a"), text("b")), 0.1))
	for i := 0; i < 2; i++ {
		c, err := plain.ChildAt(i)
		if err != nil {
			t.Fatal(err)
		}
		if len(c.Modifiers()) != 0 {
			t.Errorf("child %d modifiers = %v, want none", i, c.Modifiers())
		}
	}

	tuple := mustInspect(t, widgets.WithFrame(widgets.Group{Content: core.Tuple2Of(text("a"), text("b"))}, 1, 1))
	c, err := tuple.ChildAt(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Modifiers()) != 0 {
		t.Errorf("tuple child modifiers = %v, want none", c.Modifiers())
	}
}

func TestModifierOrder(t *testing.T) {
	tree := widgets.Keyed(widgets.WithBackground(widgets.WithOpacity(text("x"), 0.3), widgets.ColorRed), "k")
	v := mustInspect(t, tree)
	want := []string{"Opacity", "Background", "KeyModifier"}
	if diff := cmp.Diff(want, modifierKinds(v)); diff != "" {
		t.Errorf("modifiers must be in application order (-want +got):\n%s", diff)
	}
	if v.TypeName() != "Text" || v.PathToRoot() != "text()" {
		t.Errorf("view = %s", v)
	}
}

func TestPathIsDeterministic(t *testing.T) {
	build := func() any {
		return column(
			widgets.Padded(widgets.EdgeInsetsAll(1), text("a")),
			widgets.Group{Content: core.Tuple2Of(text("b"), widgets.Centered(text("target")))},
		)
	}
	var paths []string
	for i := 0; i < 3; i++ {
		match, err := Find(mustInspect(t, build()), HasText("target"))
		if err != nil {
			t.Fatal(err)
		}
		paths = append(paths, match.Path())
	}
	want := "column().child(1).child(1).child()"
	for _, p := range paths {
		if p != want {
			t.Errorf("Path() = %q, want %q", p, want)
		}
	}
}

func TestIndexOutOfBounds(t *testing.T) {
	for n := 0; n <= 4; n++ {
		children := make([]core.Widget, n)
		for i := range children {
			children[i] = text(fmt.Sprint(i))
		}
		v := mustInspect(t, column(children...))
		if count, _ := v.ChildCount(); count != n {
			t.Errorf("ChildCount = %d, want %d", count, n)
		}
		_, err := v.ChildAt(n)
		var bounds *errors.IndexOutOfBoundsError
		if !errors.As(err, &bounds) {
			t.Fatalf("N=%d: error = %v, want IndexOutOfBoundsError", n, err)
		}
		wantRange := fmt.Sprintf("0..<%d", n)
		if bounds.Range() != wantRange || !strings.Contains(err.Error(), wantRange) {
			t.Errorf("N=%d: error %q should name range %s", n, err, wantRange)
		}
		if !strings.HasPrefix(err.Error(), "column(): ") {
			t.Errorf("error %q should start with the path", err)
		}
	}
}

func TestOptionalFlip(t *testing.T) {
	build := func(show bool) any {
		return column(core.OptionalIf(show, text("shown")))
	}

	hidden := mustInspect(t, build(false))
	_, err := hidden.ChildAt(0)
	if errors.KindOf(err) != errors.KindViewNotFound {
		t.Fatalf("error = %v, want view not found", err)
	}
	if !strings.Contains(err.Error(), "'some'") {
		t.Errorf("error %q should name the absent branch", err)
	}
	if _, err := Inspect(core.OptionalNone[widgets.Text]()); errors.KindOf(err) != errors.KindViewNotFound {
		t.Errorf("Inspect(absent) error = %v", err)
	}

	shown := mustInspect(t, build(true))
	child, err := shown.ChildAt(0)
	if err != nil {
		t.Fatalf("ChildAt after flip: %v", err)
	}
	if got, _ := child.Text(); got != "shown" {
		t.Errorf("Text() = %q", got)
	}
}

func TestConditionalBranch(t *testing.T) {
	v := mustInspect(t, core.ConditionalOf(true, text("yes"), widgets.Button{Label: "no"}))
	if v.TypeName() != "Text" || v.Category() != CategoryLeaf {
		t.Fatalf("view = %s (%s)", v, v.Category())
	}
	branch, err := v.Branch(BranchTrue)
	if err != nil {
		t.Fatal(err)
	}
	if got := branch.PathToRoot(); got != "text().branch(trueContent)" {
		t.Errorf("PathToRoot() = %q", got)
	}
	_, err = v.Branch(BranchFalse)
	var vnf *errors.ViewNotFoundError
	if !errors.As(err, &vnf) || vnf.Name != BranchFalse {
		t.Errorf("absent branch error = %v", err)
	}

	other := mustInspect(t, core.ConditionalOf(false, text("yes"), widgets.Button{Label: "no"}))
	if label, err := other.ButtonLabel(); err != nil || label != "no" {
		t.Errorf("ButtonLabel() = %q, %v", label, err)
	}

	if _, err := mustInspect(t, text("x")).Branch(BranchSome); errors.KindOf(err) != errors.KindNotSupported {
		t.Errorf("Branch on a leaf error = %v", err)
	}
}

func TestTypeErasedWrapper(t *testing.T) {
	v := mustInspect(t, column(core.AnyWidgetOf(widgets.WithOpacity(widgets.Button{Label: "erased"}, 0.2))))
	child, err := v.ChildAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if child.TypeName() != "Button" {
		t.Errorf("TypeName() = %q, want the recovered runtime type", child.TypeName())
	}
	if _, err := child.As("Button"); err != nil {
		t.Errorf("As(Button): %v", err)
	}
	if got, _ := child.Opacity(); got != 0.2 {
		t.Errorf("Opacity() = %v", got)
	}
}

func TestInferredKinds(t *testing.T) {
	v := mustInspect(t, card{Title: "t", Body: text("body")})
	if v.Category() != CategorySingle {
		t.Fatalf("card category = %s", v.Category())
	}
	child, err := v.Child()
	if err != nil {
		t.Fatal(err)
	}
	if got := child.PathToRoot(); got != "card().child()" {
		t.Errorf("PathToRoot() = %q", got)
	}

	if _, err := mustInspect(t, card{}).Child(); errors.KindOf(err) != errors.KindViewNotFound {
		t.Errorf("nil child error = %v", err)
	}
	if c := mustInspect(t, container{}).Category(); c != CategoryMulti {
		t.Errorf("container category = %s", c)
	}
	if c := mustInspect(t, session{}).Category(); c != CategoryLeaf {
		t.Errorf("session category = %s", c)
	}
}

func TestWrongCategory(t *testing.T) {
	leaf := mustInspect(t, text("x"))
	if _, err := leaf.Child(); errors.KindOf(err) != errors.KindNotSupported {
		t.Errorf("Child on a leaf error = %v", err)
	}
	if _, err := leaf.ChildAt(0); errors.KindOf(err) != errors.KindNotSupported {
		t.Errorf("ChildAt on a leaf error = %v", err)
	}
	multi := mustInspect(t, column(text("a")))
	_, err := multi.Child()
	if err == nil || !strings.Contains(err.Error(), "use ChildAt") {
		t.Errorf("Child on a multi node error = %v", err)
	}
}

func TestAttributes(t *testing.T) {
	v := mustInspect(t, widgets.Text{Content: "hi", MaxLines: 2, Style: widgets.TextStyle{FontSize: 14}})

	attr, err := v.Attribute("MaxLines")
	if err != nil {
		t.Fatal(err)
	}
	if attr.PathToRoot() != "text().attribute(MaxLines)" || attr.Value() != 2 {
		t.Errorf("attribute = %s = %v", attr, attr.Value())
	}
	size, err := AttributeAs[float64](v, "Style|FontSize")
	if err != nil || size != 14 {
		t.Errorf("AttributeAs = %v, %v", size, err)
	}
	style, err := v.AttributePath("Style")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValueAs[widgets.TextStyle](style); err != nil {
		t.Errorf("ValueAs: %v", err)
	}

	_, err = v.Attribute("Missing")
	var lnf *errors.LabelNotFoundError
	if !errors.As(err, &lnf) || lnf.Label != "Missing" {
		t.Errorf("missing attribute error = %v", err)
	}
	if _, err := AttributeAs[string](v, "MaxLines"); errors.KindOf(err) != errors.KindTypeMismatch {
		t.Errorf("AttributeAs wrong type error = %v", err)
	}
}

func TestModifierAccess(t *testing.T) {
	v := mustInspect(t, widgets.WithOpacity(widgets.WithOpacity(text("x"), 0.2), 0.7))
	if got, _ := v.Opacity(); got != 0.7 {
		t.Errorf("Opacity() = %v, want the last applied value", got)
	}
	first, err := v.Modifier("Opacity", 0)
	if err != nil {
		t.Fatal(err)
	}
	if first.PathToRoot() != "text().modifier(Opacity, 0)" {
		t.Errorf("PathToRoot() = %q", first.PathToRoot())
	}
	if got, _ := AttributeAs[float64](first, "Value"); got != 0.2 {
		t.Errorf("first Opacity = %v", got)
	}
	if _, err := v.Modifier("Opacity", 2); errors.KindOf(err) != errors.KindIndexOutOfBounds {
		t.Errorf("Modifier out of range error = %v", err)
	}
	if _, err := v.Modifier("Frame", 0); errors.KindOf(err) != errors.KindViewNotFound {
		t.Errorf("absent modifier error = %v", err)
	}
	if _, err := mustInspect(t, text("x")).Opacity(); err == nil {
		t.Error("Opacity without modifier should fail")
	}
}

func TestAsTypeGuard(t *testing.T) {
	v := mustInspect(t, column(text("x")))
	if _, err := v.As("Column"); err != nil {
		t.Errorf("As(Column): %v", err)
	}
	_, err := v.As("Row")
	var ie *errors.InspectionError
	if !errors.As(err, &ie) {
		t.Fatalf("error = %v", err)
	}
	if ie.Kind != errors.KindTypeMismatch || ie.Path != "column()" || ie.Hint == "" {
		t.Errorf("error = %+v", ie)
	}
}

func TestKey(t *testing.T) {
	v := mustInspect(t, column(text("a"), widgets.Keyed(text("b"), "second")))
	match, err := Find(v, HasKey("second"))
	if err != nil {
		t.Fatal(err)
	}
	if match.Path() != "column().child(1)" {
		t.Errorf("Path() = %q", match.Path())
	}
	if v.Key() != nil {
		t.Errorf("Key() = %v", v.Key())
	}
}

func TestTap(t *testing.T) {
	taps := 0
	tap := func() { taps++ }

	nodes := []any{
		widgets.Button{Label: "b", OnTap: tap},
		widgets.Tap(tap, text("g")),
		widgets.OnTapped(text("m"), tap),
	}
	for _, n := range nodes {
		if err := mustInspect(t, n).Tap(); err != nil {
			t.Errorf("Tap(%T): %v", n, err)
		}
	}
	if taps != 3 {
		t.Errorf("taps = %d, want 3", taps)
	}

	err := mustInspect(t, widgets.Button{Label: "off", OnTap: tap, Disabled: true}).Tap()
	if errors.KindOf(err) != errors.KindNotSupported {
		t.Errorf("disabled Tap error = %v", err)
	}
	if err := mustInspect(t, text("x")).Tap(); errors.KindOf(err) != errors.KindNotSupported {
		t.Errorf("Tap on text error = %v", err)
	}
}

func TestTapPanicIsRecovered(t *testing.T) {
	var reported *errors.PanicError
	defer errors.Swap(&recordingHandler{onPanic: func(p *errors.PanicError) { reported = p }})()

	err := mustInspect(t, widgets.Button{Label: "x", OnTap: func() { panic("tap failed") }}).Tap()
	if errors.KindOf(err) != errors.KindPanic {
		t.Fatalf("error = %v", err)
	}
	if reported == nil || reported.Value != "tap failed" {
		t.Errorf("reported = %+v", reported)
	}
}

func TestLongPress(t *testing.T) {
	var reported *errors.PanicError
	defer errors.Swap(&recordingHandler{onPanic: func(p *errors.PanicError) { reported = p }})()

	pressed := false
	ok := widgets.GestureDetector{OnLongPress: func() { pressed = true }, Child: text("x")}
	if err := mustInspect(t, ok).LongPress(); err != nil || !pressed {
		t.Fatalf("LongPress() = %v, pressed = %v", err, pressed)
	}

	boom := widgets.GestureDetector{OnLongPress: func() { panic("hold") }, Child: text("x")}
	err := mustInspect(t, boom).LongPress()
	if errors.KindOf(err) != errors.KindPanic || !strings.HasPrefix(err.Error(), "gestureDetector(): ") {
		t.Fatalf("error = %v", err)
	}
	if reported == nil || reported.Value != "hold" {
		t.Errorf("reported = %+v", reported)
	}

	if err := mustInspect(t, text("x")).LongPress(); errors.KindOf(err) != errors.KindTypeMismatch {
		t.Errorf("LongPress on text error = %v", err)
	}
}

func TestCustomViewBuild(t *testing.T) {
	reg := ambient.NewRegistry()
	reg.Provide(&session{user: "ada"})

	v := mustInspect(t, profile{}, WithRegistry(reg))
	body, err := v.Child()
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := body.Text(); got != "ada" {
		t.Errorf("Text() = %q", got)
	}
	if body.PathToRoot() != "profile().child()" {
		t.Errorf("PathToRoot() = %q", body.PathToRoot())
	}

	_, err = mustInspect(t, profile{}).Child()
	var missing *errors.MissingAmbientError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v", err)
	}
	if diff := cmp.Diff([]string{"Session: *inspect.session"}, missing.Keys); diff != "" {
		t.Errorf("missing keys (-want +got):\n%s", diff)
	}
	if !strings.Contains(err.Error(), "hint: ") {
		t.Errorf("error %q should carry a hint", err)
	}
}

func TestInheritedScope(t *testing.T) {
	v := mustInspect(t, theme{Name: "dark", Child: widgets.Centered(themed{})})
	match, err := Find(v, IsType("Text"))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := match.View().Text(); got != "dark" {
		t.Errorf("Text() = %q", got)
	}
	if match.Path() != "theme().child().child().child()" {
		t.Errorf("Path() = %q", match.Path())
	}

	fallback, err := mustInspect(t, themed{}).Child()
	if err != nil {
		t.Fatalf("a view handling the missing theme should build: %v", err)
	}
	if got, _ := fallback.Text(); got != "unthemed" {
		t.Errorf("Text() = %q", got)
	}

	_, err = mustInspect(t, strictThemed{}).Child()
	var missing *errors.MissingAmbientError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v", err)
	}
	if diff := cmp.Diff([]string{"inspect.theme"}, missing.Keys); diff != "" {
		t.Errorf("missing keys (-want +got):\n%s", diff)
	}
}

func TestBuildPanicIsReported(t *testing.T) {
	var reported *errors.BuildError
	defer errors.Swap(&recordingHandler{onBuild: func(b *errors.BuildError) { reported = b }})()

	_, err := mustInspect(t, exploding{}).Child()
	if errors.KindOf(err) != errors.KindBuild {
		t.Fatalf("error = %v", err)
	}
	if reported == nil || reported.Recovered != "boom" {
		t.Errorf("reported = %+v", reported)
	}
}

func TestStatefulBuild(t *testing.T) {
	counter := core.Stateful(
		func() int { return 3 },
		func(n int, _ core.BuildContext) core.Widget { return text(fmt.Sprint(n)) },
	)
	body, err := mustInspect(t, counter).Child()
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := body.Text(); got != "3" {
		t.Errorf("Text() = %q", got)
	}
}

func TestParentAndFindParent(t *testing.T) {
	root := mustInspect(t, column(widgets.Padded(widgets.EdgeInsetsAll(1), text("deep"))))
	match, err := Find(root, HasText("deep"))
	if err != nil {
		t.Fatal(err)
	}
	parent, err := FindParent(match.View(), IsType("Column"))
	if err != nil {
		t.Fatal(err)
	}
	if parent.View() != root {
		t.Error("FindParent should return the root view")
	}
	if match.View().Parent().TypeName() != "Padding" {
		t.Errorf("Parent() = %s", match.View().Parent())
	}
	if _, err := FindParent(root, IsType("Column")); errors.KindOf(err) != errors.KindNotFound {
		t.Errorf("FindParent from root error = %v", err)
	}
}

func TestDump(t *testing.T) {
	reg := ambient.NewRegistry()
	reg.Provide(&session{user: "ada"})
	out := mustInspect(t, widgets.WithOpacity(column(profile{}), 0.5), WithRegistry(reg)).Dump()

	for _, want := range []string{
		"Column\n",
		"  ChildrenWidgets: []Widget\n",
		"body: Text\n",
		`Content: string = "ada"`,
		"  modifier: Opacity\n",
		"    Value: float64 = 0.5\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() missing %q:\n%s", want, out)
		}
	}
}

func TestEnvelopeIsACopy(t *testing.T) {
	v := mustInspect(t, widgets.WithOpacity(text("x"), 1))
	env := v.Envelope()
	env.Modifiers[0].Kind = "changed"
	if v.Modifiers()[0].Kind != "Opacity" {
		t.Error("Envelope() should not expose the view's modifier stack")
	}
	if env.Ambient == nil {
		t.Error("envelope should carry a scope")
	}
}

type recordingHandler struct {
	onError func(*errors.InspectionError)
	onPanic func(*errors.PanicError)
	onBuild func(*errors.BuildError)
}

func (h *recordingHandler) HandleError(err *errors.InspectionError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *recordingHandler) HandleBuildError(err *errors.BuildError) {
	if h.onBuild != nil {
		h.onBuild(err)
	}
}
