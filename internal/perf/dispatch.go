package perf

// Number is a deliberately abstract field type. Storing one in a
// struct forces an interface header per field and a dynamic call per
// access, which is the statically-typed cousin of an untyped field in
// a dynamic language.
type Number interface {
	Float() float64
}

type boxedFloat float64

func (b boxedFloat) Float() float64 { return float64(b) }

// Box wraps a float64 in the Number interface.
func Box(v float64) Number { return boxedFloat(v) }

// BoxedPoint carries its coordinates behind interface values.
type BoxedPoint struct {
	X, Y Number
}

// Point carries concrete coordinates; the compiler can keep them in
// registers and the slice is one contiguous block.
type Point struct {
	X, Y float64
}

// SumBoxed accumulates coordinate sums through dynamic dispatch.
func SumBoxed(pts []BoxedPoint) float64 {
	sum := 0.0
	for _, p := range pts {
		sum += p.X.Float() + p.Y.Float()
	}
	return sum
}

// SumConcrete accumulates the same sums over concrete fields.
func SumConcrete(pts []Point) float64 {
	sum := 0.0
	for _, p := range pts {
		sum += p.X + p.Y
	}
	return sum
}
