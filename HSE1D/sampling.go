package HSE1D

import (
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// MeasurementSample aggregates a fixed shot budget of position measurements
// drawn from the final density. Counts holds per-grid-point hit counts;
// Mean and Variance are the shot-weighted position statistics.
type MeasurementSample struct {
	Counts   []int
	Shots    int
	Mean     float64
	Variance float64
}

// SampleMeasurements draws shots independent position measurements from the
// state's total density. Each worker is an independent trial pool with its
// own deterministic RNG stream, so results are reproducible for a fixed
// seed and worker count, and trials never share mutable state.
func SampleMeasurements(w *WaveState, cfg *Configuration, shots, workers int, seed int64) (ms MeasurementSample) {
	var (
		n    = w.N()
		rhoP = w.Plus.AbsSq()
		rhoM = w.Minus.AbsSq()
	)
	if workers < 1 {
		workers = 1
	}
	// Cumulative distribution over grid points.
	cdf := make([]float64, n)
	var total float64
	for i := 0; i < n; i++ {
		total += rhoP[i] + rhoM[i]
		cdf[i] = total
	}
	for i := range cdf {
		cdf[i] /= total
	}

	counts := make([][]int, workers)
	var wg sync.WaitGroup
	for p := 0; p < workers; p++ {
		counts[p] = make([]int, n)
		quota := shots / workers
		if p < shots%workers {
			quota++
		}
		wg.Add(1)
		go func(p, quota int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(p)))
			for s := 0; s < quota; s++ {
				r := rng.Float64()
				// first index with cdf >= r
				lo, hi := 0, n-1
				for lo < hi {
					mid := (lo + hi) / 2
					if cdf[mid] < r {
						lo = mid + 1
					} else {
						hi = mid
					}
				}
				counts[p][lo]++
			}
		}(p, quota)
	}
	wg.Wait()

	ms = MeasurementSample{Counts: make([]int, n), Shots: shots}
	x := make([]float64, n)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		for p := 0; p < workers; p++ {
			ms.Counts[i] += counts[p][i]
		}
		x[i] = float64(i) * cfg.Dx
		weights[i] = float64(ms.Counts[i])
	}
	ms.Mean = stat.Mean(x, weights)
	ms.Variance = stat.Variance(x, weights)
	return
}
