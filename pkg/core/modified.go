package core

// Modified pairs a widget with one modifier applied to it. Chains of
// modifiers nest: the innermost Modified holds the first modifier applied.
type Modified[W Widget, M any] struct {
	content  W
	modifier M
}

// ModifiedOf applies modifier to content.
func ModifiedOf[W Widget, M any](content W, modifier M) Modified[W, M] {
	return Modified[W, M]{content: content, modifier: modifier}
}

// Key returns the content's key.
func (m Modified[W, M]) Key() any {
	return m.content.Key()
}
