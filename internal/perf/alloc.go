package perf

// ScaleCopy returns a fresh slice per call. In a stepping loop this
// allocates every iteration and keeps the garbage collector busy.
func ScaleCopy(xs []float64, a float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = a * v
	}
	return out
}

// ScaleInPlace writes into a caller-provided buffer.
func ScaleInPlace(dst, xs []float64, a float64) {
	for i, v := range xs {
		dst[i] = a * v
	}
}

// AxpyChained computes a*x + y the "vectorized" way: each intermediate
// expression materializes a temporary slice.
func AxpyChained(a float64, x, y []float64) []float64 {
	ax := ScaleCopy(x, a)
	out := make([]float64, len(x))
	for i := range out {
		out[i] = ax[i] + y[i]
	}
	return out
}

// AxpyFused computes the same result in one pass with no temporaries.
func AxpyFused(dst []float64, a float64, x, y []float64) {
	for i := range dst {
		dst[i] = a*x[i] + y[i]
	}
}
