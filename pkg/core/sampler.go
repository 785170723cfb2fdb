package core

import "math/rand"

// Sampler provides random values for sampling algorithms.
// Can be swapped out for deterministic testing or different sampling patterns.
// Implementations are not safe for concurrent use; each goroutine owns its own.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// haltonPrimes is the base cycle of the HaltonSampler's dimension walk
var haltonPrimes = [...]uint64{2, 3, 5, 7, 11, 13}

// HaltonSampler generates a deterministic low-discrepancy sequence using
// radical inverses. Each draw consumes the next prime base at the current
// sequence index; when the base cycle is exhausted the index advances. Every
// base within a cycle is distinct, so any run of draws shorter than the
// cycle forms a jointly well-distributed Halton tuple: a branch selector
// drawn with Get1D cannot bias the Get2D sample that follows it. Two
// samplers created with the same starting index produce identical values.
type HaltonSampler struct {
	index uint64
	dim   int
}

// NewHaltonSampler creates a Halton sampler starting at the given sequence index
func NewHaltonSampler(startIndex uint64) *HaltonSampler {
	// Index 0 yields (0, 0), which makes a poor first sample
	if startIndex == 0 {
		startIndex = 1
	}
	return &HaltonSampler{index: startIndex}
}

// nextDims reserves n consecutive dimensions, advancing the sequence index
// when the cycle cannot hold them
func (h *HaltonSampler) nextDims(n int) int {
	if h.dim+n > len(haltonPrimes) {
		h.index++
		h.dim = 0
	}
	d := h.dim
	h.dim += n
	return d
}

// Get1D returns the radical inverse of the next dimension in [0, 1)
func (h *HaltonSampler) Get1D() float64 {
	d := h.nextDims(1)
	return radicalInverse(h.index, haltonPrimes[d])
}

// Get2D returns the radical inverses of the next two dimensions in [0, 1)²
func (h *HaltonSampler) Get2D() Vec2 {
	d := h.nextDims(2)
	return NewVec2(
		radicalInverse(h.index, haltonPrimes[d]),
		radicalInverse(h.index, haltonPrimes[d+1]))
}

// radicalInverse reflects the digits of n in the given base about the decimal point
func radicalInverse(n uint64, base uint64) float64 {
	invBase := 1.0 / float64(base)
	reversed := uint64(0)
	invBaseN := 1.0
	for n > 0 {
		next := n / base
		digit := n - next*base
		reversed = reversed*base + digit
		invBaseN *= invBase
		n = next
	}
	return float64(reversed) * invBaseN
}
