package perf

import "testing"

const benchN = 4096

func makePoints() ([]BoxedPoint, []Point) {
	boxed := make([]BoxedPoint, benchN)
	plain := make([]Point, benchN)
	for i := 0; i < benchN; i++ {
		x, y := float64(i), float64(-i)
		boxed[i] = BoxedPoint{X: Box(x), Y: Box(y)}
		plain[i] = Point{X: x, Y: y}
	}
	return boxed, plain
}

func BenchmarkSumBoxed(b *testing.B) {
	boxed, _ := makePoints()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SumBoxed(boxed)
	}
}

func BenchmarkSumConcrete(b *testing.B) {
	_, plain := makePoints()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SumConcrete(plain)
	}
}

func makeVec() []float64 {
	xs := make([]float64, benchN)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

func BenchmarkScaleCopy(b *testing.B) {
	xs := makeVec()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScaleCopy(xs, 1.0001)
	}
}

func BenchmarkScaleInPlace(b *testing.B) {
	xs := makeVec()
	dst := make([]float64, benchN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScaleInPlace(dst, xs, 1.0001)
	}
}

func BenchmarkAxpyChained(b *testing.B) {
	x, y := makeVec(), makeVec()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AxpyChained(2.0, x, y)
	}
}

func BenchmarkAxpyFused(b *testing.B) {
	x, y := makeVec(), makeVec()
	dst := make([]float64, benchN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AxpyFused(dst, 2.0, x, y)
	}
}

func makeBenchMatrix() *Matrix {
	m := NewMatrix(1024, 1024)
	for i := range m.Data {
		m.Data[i] = float64(i)
	}
	return m
}

func BenchmarkSumRowMajor(b *testing.B) {
	m := makeBenchMatrix()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SumRowMajor(m)
	}
}

func BenchmarkSumColMajor(b *testing.B) {
	m := makeBenchMatrix()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SumColMajor(m)
	}
}

func BenchmarkStepGlobal(b *testing.B) {
	xs := makeVec()
	ResetGlobal()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		StepGlobal(xs)
	}
}

func BenchmarkStepLocal(b *testing.B) {
	xs := makeVec()
	acc := 0.0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc = StepLocal(acc, xs)
	}
	_ = acc
}
