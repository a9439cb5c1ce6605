package analysis

import "github.com/san-kum/mdlab/internal/md"

// MeanSquareDisplacement computes the MSD curve over lag times for a
// recorded trajectory of split-layout frames. The zeroth entry is
// always zero; for a diffusive system the curve grows linearly and its
// slope estimates the self-diffusion coefficient.
func MeanSquareDisplacement(states []md.State, numParticles int) []float64 {
	frames := len(states)
	if frames == 0 {
		return nil
	}

	msd := make([]float64, frames)

	for lag := 1; lag < frames; lag++ {
		sum := 0.0
		count := 0
		for t0 := 0; t0+lag < frames; t0++ {
			a := states[t0]
			b := states[t0+lag]
			for i := 0; i < numParticles; i++ {
				dx := b[i*2] - a[i*2]
				dy := b[i*2+1] - a[i*2+1]
				sum += dx*dx + dy*dy
			}
			count += numParticles
		}
		if count > 0 {
			msd[lag] = sum / float64(count)
		}
	}

	return msd
}

// DiffusionCoefficient estimates D from the tail slope of an MSD curve
// with the given frame interval: MSD ~ 4 D t in two dimensions.
func DiffusionCoefficient(msd []float64, dt float64) float64 {
	n := len(msd)
	if n < 4 || dt <= 0 {
		return 0
	}

	// least-squares slope over the second half of the curve
	start := n / 2
	var sumT, sumM, sumTT, sumTM float64
	count := 0.0
	for k := start; k < n; k++ {
		t := float64(k) * dt
		sumT += t
		sumM += msd[k]
		sumTT += t * t
		sumTM += t * msd[k]
		count++
	}

	denom := count*sumTT - sumT*sumT
	if denom == 0 {
		return 0
	}
	slope := (count*sumTM - sumT*sumM) / denom
	return slope / 4
}
