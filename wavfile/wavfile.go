package wavfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

var ErrWrite = errors.New("wavNotWritten")

// Format returns the mono 16-bit format used for every file.
func Format(sampleRate int) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 1,
		Precision:   2,
	}
}

// Encode writes the header, then every sample of s, then patches the header
// sizes. Only the first channel of s is used.
func Encode(w io.WriteSeeker, s beep.Streamer, sampleRate int) error {
	if err := wav.Encode(w, s, Format(sampleRate)); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Write creates (or truncates) the file at path and encodes s into it.
// The file is always closed; on failure it is also removed.
func Write(path string, s beep.Streamer, sampleRate int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWrite, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return Encode(f, s, sampleRate)
}
