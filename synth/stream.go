package synth

import (
	"github.com/faiface/beep"

	"github.com/neurlang/imgwav/tone"
)

// Stream renders every column of an image, left to right, as a mono
// beep.Streamer. Both channels of each emitted frame carry the same value.
//
// Samples leave the stream already clamped to [-1, 1], so a 16-bit encoder
// that computes int16(v * 32767) produces exactly Quantize(v).
type Stream struct {
	src        tone.Intensities
	builder    *tone.Builder
	sampleRate float64
	perColumn  int

	col     int
	offset  int
	bank    tone.Bank
	clipped int

	// OnColumn, when set, is called before the first sample of each column.
	OnColumn func(col, cols int)
}

var _ beep.Streamer = (*Stream)(nil)

// NewStream returns a Stream over src that emits perColumn samples for each
// column at sampleRate.
func NewStream(src tone.Intensities, builder *tone.Builder, sampleRate, perColumn int) *Stream {
	return &Stream{
		src:        src,
		builder:    builder,
		sampleRate: float64(sampleRate),
		perColumn:  perColumn,
	}
}

// Stream fills samples and reports false once every column has been emitted.
func (s *Stream) Stream(samples [][2]float64) (n int, ok bool) {
	cols := s.src.Cols()
	for n < len(samples) && s.col < cols {
		if s.bank == nil {
			if s.OnColumn != nil {
				s.OnColumn(s.col, cols)
			}
			s.bank = s.builder.Bank(s.src, s.col)
		}
		if s.offset >= s.perColumn {
			s.col++
			s.offset = 0
			s.bank = nil
			continue
		}
		v, clipped := Clamp(Mix(s.bank, s.offset, s.sampleRate))
		if clipped {
			s.clipped++
		}
		samples[n][0], samples[n][1] = v, v
		s.offset++
		n++
	}
	return n, n > 0
}

// Err always returns nil; synthesis cannot fail once the stream is built.
func (s *Stream) Err() error {
	return nil
}

// Len returns the total number of frames the stream emits.
func (s *Stream) Len() int {
	return s.src.Cols() * s.perColumn
}

// Clipped returns how many samples so far had to be clamped.
func (s *Stream) Clipped() int {
	return s.clipped
}
