package csprng

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
)

// StreamSampler is a Source backed by AES-256 in CTR mode under a random key.
// It is faster than UniformSampler, but cannot be seeded,
// so it serves benchmarks and tools rather than reproducible tests.
type StreamSampler struct {
	prng cipher.Stream
	stream
}

// NewStreamSampler creates a new StreamSampler.
//
// Panics when read from crypto/rand or AES initialization fails.
func NewStreamSampler() *StreamSampler {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	iv := make([]byte, block.BlockSize())
	if _, err := rand.Read(iv); err != nil {
		panic(err)
	}

	s := &StreamSampler{prng: cipher.NewCTR(block, iv)}
	s.empty()
	return s
}

func (s *StreamSampler) fill(p []byte) {
	clear(p)
	s.prng.XORKeyStream(p, p)
}

// Read implements the [io.Reader] interface.
// It consumes the same keystream as Sample.
func (s *StreamSampler) Read(p []byte) (n int, err error) {
	s.read(s, p)
	return len(p), nil
}

// Sample returns the next uint64 of the keystream.
func (s *StreamSampler) Sample() uint64 {
	return s.next(s)
}
