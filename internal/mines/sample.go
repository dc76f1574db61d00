package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

// RandomSource yields uniform floats in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a PCG-backed source. Equal seeds give equal boards.
func NewRandomSource(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// NewRandomSourceFromEntropy seeds a PCG source from the runtime's hash seed.
func NewRandomSourceFromEntropy() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// SelectIndices picks k distinct indices from [0, n), every k-subset being
// equally likely. The result is sorted ascending.
//
// Each candidate i is kept with probability needed/remaining, which needs one
// draw per candidate and never materializes the population.
func SelectIndices(n, k int, rng RandomSource) ([]int, error) {
	return selectIndices(n, k, -1, rng)
}

// SelectIndicesExcluding is [SelectIndices] over [0, n) with excluded removed
// from the population, so at most n-1 indices can be selected.
func SelectIndicesExcluding(n, k, excluded int, rng RandomSource) ([]int, error) {
	if excluded < 0 || excluded >= n {
		return nil, fmt.Errorf(
			"excluded index %d not in [0, %d): %w", excluded, n, ErrInvalidArgument,
		)
	}
	return selectIndices(n, k, excluded, rng)
}

func selectIndices(n, k, excluded int, rng RandomSource) ([]int, error) {
	population := n
	if excluded >= 0 {
		population--
	}
	if n < 0 || k < 0 || k > population {
		return nil, fmt.Errorf(
			"cannot select %d of %d indices: %w", k, population, ErrInvalidArgument,
		)
	}

	selected := make([]int, 0, k)
	remaining := population
	for i := 0; i < n && len(selected) < k; i++ {
		if i == excluded {
			continue
		}
		needed := k - len(selected)
		if rng.Float64()*float64(remaining) < float64(needed) {
			selected = append(selected, i)
		}
		remaining--
	}
	return selected, nil
}
