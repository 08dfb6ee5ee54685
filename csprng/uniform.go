package csprng

import (
	"crypto/rand"
	"math"

	"golang.org/x/crypto/blake2b"
)

// UniformSampler samples values from uniform distribution.
// This uses blake2b as a underlying prng,
// so equal seeds yield equal streams.
type UniformSampler struct {
	prng blake2b.XOF
	seed []byte
	stream
}

// NewUniformSampler creates a new UniformSampler with a random seed.
//
// Panics when read from crypto/rand or blake2b initialization fails.
func NewUniformSampler() *UniformSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewUniformSamplerWithSeed(seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler, with user supplied seed.
//
// Panics when blake2b initialization fails.
func NewUniformSamplerWithSeed(seed []byte) *UniformSampler {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}

	if _, err = prng.Write(seed); err != nil {
		panic(err)
	}

	s := &UniformSampler{
		prng: prng,
		seed: append([]byte(nil), seed...),
	}
	s.empty()
	return s
}

// Restart returns a new sampler at the start of the stream of s.
// s is left unchanged.
func (s *UniformSampler) Restart() *UniformSampler {
	return NewUniformSamplerWithSeed(s.seed)
}

func (s *UniformSampler) fill(p []byte) {
	if _, err := s.prng.Read(p); err != nil {
		panic(err)
	}
}

// Read implements the [io.Reader] interface.
// It consumes the same stream as Sample, so the two may be mixed freely.
func (s *UniformSampler) Read(p []byte) (n int, err error) {
	s.read(s, p)
	return len(p), nil
}

// Reset rewinds the sampler to the start of its stream.
func (s *UniformSampler) Reset() {
	s.prng.Reset()
	if _, err := s.prng.Write(s.seed); err != nil {
		panic(err)
	}
	s.empty()
}

// Sample uniformly samples a random uint64.
func (s *UniformSampler) Sample() uint64 {
	return s.next(s)
}

// SampleN uniformly samples a random integer in [0, N).
func (s *UniformSampler) SampleN(N uint64) uint64 {
	bound := math.MaxUint64 - (math.MaxUint64 % N)
	for {
		res := s.Sample()
		if res < bound {
			return res % N
		}
	}
}
