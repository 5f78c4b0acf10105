package core

// Tuple2 groups two adjacent sibling widgets.
type Tuple2[A, B Widget] struct {
	v0 A
	v1 B
}

// Tuple2Of groups a and b.
func Tuple2Of[A, B Widget](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{v0: a, v1: b}
}

// Key returns nil (no key).
func (Tuple2[A, B]) Key() any { return nil }

// Tuple3 groups three adjacent sibling widgets.
type Tuple3[A, B, C Widget] struct {
	v0 A
	v1 B
	v2 C
}

// Tuple3Of groups a, b and c.
func Tuple3Of[A, B, C Widget](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{v0: a, v1: b, v2: c}
}

// Key returns nil (no key).
func (Tuple3[A, B, C]) Key() any { return nil }

// Tuple4 groups four adjacent sibling widgets.
type Tuple4[A, B, C, D Widget] struct {
	v0 A
	v1 B
	v2 C
	v3 D
}

// Tuple4Of groups a, b, c and d.
func Tuple4Of[A, B, C, D Widget](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{v0: a, v1: b, v2: c, v3: d}
}

// Key returns nil (no key).
func (Tuple4[A, B, C, D]) Key() any { return nil }
