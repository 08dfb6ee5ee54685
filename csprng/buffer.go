package csprng

import "encoding/binary"

// bufSize is the buffer size of the samplers.
const bufSize = 8192

// filler refills a buffer from the underlying prng.
type filler interface {
	fill(p []byte)
}

// stream buffers the output of a prng.
// Bytes are consumed in order, whether through read or next.
type stream struct {
	buf [bufSize]byte
	ptr int
}

// empty discards the buffered bytes.
func (s *stream) empty() {
	s.ptr = bufSize
}

// read fills p with the next len(p) bytes.
func (s *stream) read(f filler, p []byte) {
	for len(p) > 0 {
		if s.ptr == bufSize {
			f.fill(s.buf[:])
			s.ptr = 0
		}
		n := copy(p, s.buf[s.ptr:])
		s.ptr += n
		p = p[n:]
	}
}

// next returns the next 8 bytes as a little-endian uint64.
func (s *stream) next(f filler) uint64 {
	if s.ptr+8 <= bufSize {
		res := binary.LittleEndian.Uint64(s.buf[s.ptr : s.ptr+8])
		s.ptr += 8
		return res
	}

	var w [8]byte
	s.read(f, w[:])
	return binary.LittleEndian.Uint64(w[:])
}
