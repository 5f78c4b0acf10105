package core

// Optional is a widget that may be absent, as produced by an if statement
// without an else branch.
type Optional[W Widget] struct {
	some *W
}

// OptionalOf returns a present Optional holding w.
func OptionalOf[W Widget](w W) Optional[W] {
	return Optional[W]{some: &w}
}

// OptionalNone returns an absent Optional.
func OptionalNone[W Widget]() Optional[W] {
	return Optional[W]{}
}

// OptionalIf returns an Optional holding w only when cond is true.
func OptionalIf[W Widget](cond bool, w W) Optional[W] {
	if !cond {
		return OptionalNone[W]()
	}
	return OptionalOf(w)
}

// Key returns nil (no key).
func (o Optional[W]) Key() any { return nil }

// Conditional holds exactly one of two branches, as produced by an if/else
// statement. Which branch is present is only recorded in the storage type.
type Conditional[T, F Widget] struct {
	storage conditionalStorage
}

type conditionalStorage interface {
	isConditionalStorage()
}

type trueContent[T Widget] struct {
	view T
}

func (trueContent[T]) isConditionalStorage() {}

type falseContent[F Widget] struct {
	view F
}

func (falseContent[F]) isConditionalStorage() {}

// ConditionalOf keeps whenTrue if cond holds and whenFalse otherwise.
func ConditionalOf[T, F Widget](cond bool, whenTrue T, whenFalse F) Conditional[T, F] {
	if cond {
		return Conditional[T, F]{storage: trueContent[T]{view: whenTrue}}
	}
	return Conditional[T, F]{storage: falseContent[F]{view: whenFalse}}
}

// Key returns nil (no key).
func (c Conditional[T, F]) Key() any { return nil }
