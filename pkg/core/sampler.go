package core

import (
	"math/rand/v2"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// pcgStream is the fixed PCG increment; only the state half is seeded.
const pcgStream = 0xda3e39cb94b95bdb

// RandomSampler is a re-seedable PCG stream. It is not safe for concurrent use:
// every concurrently traced path owns its own instance.
type RandomSampler struct {
	source *rand.PCG
	random *rand.Rand
}

// NewSampler creates a sampler seeded with seed
func NewSampler(seed uint64) *RandomSampler {
	source := rand.NewPCG(seed, pcgStream)
	return &RandomSampler{
		source: source,
		random: rand.New(source),
	}
}

// SetSeed restarts the stream from seed
func (s *RandomSampler) SetSeed(seed uint64) {
	s.source.Seed(seed, pcgStream)
}

// Get1D returns a random float64 in [0, 1)
func (s *RandomSampler) Get1D() float64 {
	return s.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (s *RandomSampler) Get2D() Vec2 {
	x := s.random.Float64()
	y := s.random.Float64()
	return NewVec2(x, y)
}

// PixelSeed derives a deterministic per-pixel seed so that the rendered result does
// not depend on which worker handles which pixel.
func PixelSeed(x, y int, frameSeed uint64) uint64 {
	h := frameSeed ^ 0x9e3779b97f4a7c15
	h = splitMix64(h ^ uint64(uint32(x)))
	h = splitMix64(h ^ uint64(uint32(y))<<32)
	return h
}

func splitMix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
