package sonify

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/neurlang/imgwav/picture"
	"github.com/neurlang/imgwav/synth"
	"github.com/neurlang/imgwav/tone"
	"github.com/neurlang/imgwav/wavfile"
)

var (
	ErrLoad            = picture.ErrLoad
	ErrDegenerateInput = picture.ErrDegenerate
	ErrWrite           = wavfile.ErrWrite
)

// Sonify represents the configuration for converting images to audio.
type Sonify struct {
	// Resolution is the number of rows the image is resized to, which is
	// also the number of tones per column.
	Resolution int
	// Stretch scales the output duration.
	Stretch float64
	// Log selects logarithmic row-to-frequency mapping.
	Log bool

	FreqMin    float64
	FreqMax    float64
	SampleRate int

	// Progress receives a percentage counter, one update per column.
	// Nil disables it.
	Progress io.Writer
	// Logger receives diagnostics. Nil disables them.
	Logger *log.Logger
}

// NewSonify creates a new Sonify instance with default values.
func NewSonify() *Sonify {
	return &Sonify{
		Resolution: 200,
		Stretch:    1,
		FreqMin:    tone.FreqMin,
		FreqMax:    tone.FreqMax,
		SampleRate: synth.SampleRate,
	}
}

// Plan describes the output of a conversion.
type Plan struct {
	Rows             int
	Cols             int
	Duration         float64
	SamplesPerColumn int
	Frames           int
}

// Mapping returns the row-to-frequency mapping in use.
func (s *Sonify) Mapping() tone.Mapping {
	if s.Log {
		return tone.Logarithmic
	}
	return tone.Linear
}

// Validate reports configuration values that cannot produce any audio.
func (s *Sonify) Validate() error {
	switch {
	case s.Resolution <= 0:
		return fmt.Errorf("%w: resolution %d", ErrDegenerateInput, s.Resolution)
	case !(s.Stretch > 0) || math.IsInf(s.Stretch, 0):
		return fmt.Errorf("%w: stretch %v", ErrDegenerateInput, s.Stretch)
	case s.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrDegenerateInput, s.SampleRate)
	case !(s.FreqMin > 0) || !(s.FreqMax > s.FreqMin):
		return fmt.Errorf("%w: frequency range [%v, %v]", ErrDegenerateInput, s.FreqMin, s.FreqMax)
	}
	return nil
}

// Plan computes the output layout for img.
func (s *Sonify) Plan(img *picture.Image) Plan {
	p := Plan{
		Rows:     img.Rows(),
		Cols:     img.Cols(),
		Duration: synth.Duration(s.Stretch, img.Width, img.Height),
	}
	p.SamplesPerColumn = synth.SamplesPerColumn(p.Duration, s.SampleRate, p.Cols)
	p.Frames = p.Cols * p.SamplesPerColumn
	return p
}

// Stream builds the sample stream for img.
func (s *Sonify) Stream(img *picture.Image) (*synth.Stream, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	builder, err := tone.NewBuilder(img.Rows(), s.Mapping(), s.FreqMin, s.FreqMax)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateInput, err)
	}
	p := s.Plan(img)
	if p.Frames == 0 {
		return nil, fmt.Errorf("%w: %d columns of %d samples", ErrDegenerateInput, p.Cols, p.SamplesPerColumn)
	}
	st := synth.NewStream(img, builder, s.SampleRate, p.SamplesPerColumn)
	if s.Progress != nil {
		st.OnColumn = func(col, cols int) {
			fmt.Fprintf(s.Progress, "\rProgress: %.2f%%  ", float64(col)/float64(cols)*100)
		}
	}
	return st, nil
}

// ToWav writes the audio of an already loaded image to outputFile.
func (s *Sonify) ToWav(img *picture.Image, outputFile string) error {
	st, err := s.Stream(img)
	if err != nil {
		return err
	}

	p := s.Plan(img)
	s.logf("%dx%d image -> %d columns x %d tones (%v), %.2fs, %d samples per column",
		img.Width, img.Height, p.Cols, p.Rows, s.Mapping(), p.Duration, p.SamplesPerColumn)

	if err := wavfile.Write(outputFile, st, s.SampleRate); err != nil {
		if s.Progress != nil {
			fmt.Fprintln(s.Progress)
		}
		return err
	}
	if s.Progress != nil {
		fmt.Fprintf(s.Progress, "\rProgress: %.2f%%  \n", 100.0)
	}

	if n := st.Clipped(); n > 0 {
		s.logf("warning: %d of %d samples clipped to the 16-bit range", n, p.Frames)
	}
	return nil
}

// ToWavImage converts the image at inputFile to a WAV file at outputFile.
// Nothing is written when the image cannot be loaded.
func (s *Sonify) ToWavImage(inputFile, outputFile string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	img, err := picture.Load(inputFile, s.Resolution)
	if err != nil {
		return err
	}
	return s.ToWav(img, outputFile)
}

func (s *Sonify) logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
