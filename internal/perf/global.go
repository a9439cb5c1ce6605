package perf

// globalAcc is the mutable package-level state that StepGlobal leans
// on. Beyond the concurrency hazard, the indirection through a global
// blocks several compiler optimizations that the local version gets
// for free.
var globalAcc float64

// ResetGlobal clears the package-level accumulator.
func ResetGlobal() { globalAcc = 0 }

// GlobalValue reads the package-level accumulator.
func GlobalValue() float64 { return globalAcc }

// StepGlobal accumulates into the package-level variable.
func StepGlobal(xs []float64) {
	for _, v := range xs {
		globalAcc += v * v
	}
}

// StepLocal accumulates into caller-owned state and returns it.
func StepLocal(acc float64, xs []float64) float64 {
	for _, v := range xs {
		acc += v * v
	}
	return acc
}
