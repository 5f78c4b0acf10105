package inspect

import (
	"strconv"
	"strings"
	"unicode"
)

// Step is one accessor call on the way from the root to a view.
type Step struct {
	// Name is the accessor name, e.g. "child" or "modifier".
	Name string
	// Args are the rendered call arguments.
	Args []string
}

func (s Step) String() string {
	return s.Name + "(" + strings.Join(s.Args, ", ") + ")"
}

// Path records how a view was reached. Paths are immutable; Append returns
// a new Path.
type Path struct {
	steps []Step
}

// RootPath returns a path with the single root step.
func RootPath(name string) Path {
	return Path{steps: []Step{{Name: name}}}
}

// Append returns a copy of p with step added.
func (p Path) Append(step Step) Path {
	steps := make([]Step, len(p.steps), len(p.steps)+1)
	copy(steps, p.steps)
	return Path{steps: append(steps, step)}
}

// Steps returns a copy of the steps.
func (p Path) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Len returns the number of steps.
func (p Path) Len() int { return len(p.steps) }

// String renders the path as a call chain: "container().child(1)".
func (p Path) String() string {
	parts := make([]string, len(p.steps))
	for i, s := range p.steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

func childStep() Step { return Step{Name: "child"} }

func childAtStep(i int) Step { return Step{Name: "child", Args: []string{strconv.Itoa(i)}} }

func modifierStep(kind string, i int) Step {
	return Step{Name: "modifier", Args: []string{kind, strconv.Itoa(i)}}
}

func attributeStep(label string) Step {
	return Step{Name: "attribute", Args: []string{label}}
}

func branchStep(name string) Step {
	return Step{Name: "branch", Args: []string{name}}
}

// lowerCamel turns a type name into an accessor name: "Container" becomes
// "container" and "HTTPView" becomes "httpView".
func lowerCamel(name string) string {
	runes := []rune(name)
	for i := 0; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			break
		}
		// Keep the last capital of an acronym when a lowercase letter follows.
		if i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
