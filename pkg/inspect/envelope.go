package inspect

import "github.com/go-drift/inspect/pkg/ambient"

// Modifier is one modifier applied to a node.
type Modifier struct {
	// Kind is the modifier's type name, e.g. "Opacity".
	Kind string
	// Payload is the modifier value.
	Payload any
}

// Envelope is a node together with the context collected on the way to it.
type Envelope struct {
	// Node is the node itself.
	Node any
	// Modifiers are the modifiers applied to Node in application order,
	// the first one applied first.
	Modifiers []Modifier
	// Ambient resolves the dependencies visible at Node.
	Ambient *ambient.Scope
}

// withInnerModifier returns a copy of e with m placed before every modifier
// already in the stack. Unwrapping a Modified chain meets the last applied
// modifier first and each further unwrap meets one applied earlier.
func (e Envelope) withInnerModifier(m Modifier) Envelope {
	mods := make([]Modifier, 0, len(e.Modifiers)+1)
	mods = append(mods, m)
	mods = append(mods, e.Modifiers...)
	e.Modifiers = mods
	return e
}

// child returns the envelope of a structural child: same scope, empty
// modifier stack.
func (e Envelope) child(node any) Envelope {
	return Envelope{Node: node, Ambient: e.Ambient}
}

func (e Envelope) withScope(key string, value any) Envelope {
	e.Ambient = e.Ambient.With(key, value)
	return e
}
