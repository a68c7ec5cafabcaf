package tone

import "errors"
import "fmt"
import "math"

// Default frequency range of a bank, in Hz.
const (
	FreqMin = 200
	FreqMax = 20000
)

var ErrDegenerate = errors.New("degenerateToneBank")

// Tone is a single sinusoid of a bank.
type Tone struct {
	Frequency float64
	Amplitude float64
}

// Sample returns the value of the tone at sample index i.
func (t Tone) Sample(i int, sampleRate float64) float64 {
	return math.Sin(float64(i)/sampleRate*2*math.Pi*t.Frequency) * t.Amplitude
}

// Bank holds the tones of one image column, ordered by row.
type Bank []Tone

// Intensities is a grid of brightness values in [0, 1].
type Intensities interface {
	Rows() int
	Cols() int
	Intensity(row, col int) float64
}

// MapRange linearly maps value from [oldMin, oldMax] to [newMin, newMax].
func MapRange(value, oldMin, oldMax, newMin, newMax float64) float64 {
	return (value-oldMin)/(oldMax-oldMin)*(newMax-newMin) + newMin
}

// Mapping selects how row indices are spread over the frequency range.
type Mapping int

const (
	Linear Mapping = iota
	Logarithmic
)

func (m Mapping) String() string {
	switch m {
	case Linear:
		return "linear"
	case Logarithmic:
		return "log"
	}
	return fmt.Sprintf("Mapping(%d)", int(m))
}

// Frequency returns the frequency of row in a bank of rows tones.
// Row 0 maps to fmax; the (virtual) row rows maps to fmin.
func (m Mapping) Frequency(row, rows int, fmin, fmax float64) float64 {
	if m == Logarithmic {
		return MapRange(math.Log(float64(row+1)), math.Log(float64(rows+1)), 0, fmin, fmax)
	}
	return MapRange(float64(row), float64(rows), 0, fmin, fmax)
}

// Builder produces the tone bank of each column. The row frequencies do
// not depend on the column, so they are computed once.
type Builder struct {
	Mapping Mapping
	freqs   []float64
}

// NewBuilder creates a Builder for banks of rows tones between fmin and fmax.
func NewBuilder(rows int, mapping Mapping, fmin, fmax float64) (*Builder, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: %d rows", ErrDegenerate, rows)
	}
	if !(fmin > 0) || !(fmax > fmin) {
		return nil, fmt.Errorf("%w: frequency range [%v, %v]", ErrDegenerate, fmin, fmax)
	}
	b := &Builder{Mapping: mapping, freqs: make([]float64, rows)}
	for row := range b.freqs {
		b.freqs[row] = mapping.Frequency(row, rows, fmin, fmax)
	}
	return b, nil
}

// Rows returns the number of tones in every bank.
func (b *Builder) Rows() int {
	return len(b.freqs)
}

// Frequencies returns a copy of the row frequencies.
func (b *Builder) Frequencies() []float64 {
	return append([]float64(nil), b.freqs...)
}

// Bank builds a fresh tone bank for column col of src.
// src must have at least Rows() rows.
func (b *Builder) Bank(src Intensities, col int) Bank {
	bank := make(Bank, len(b.freqs))
	for row, freq := range b.freqs {
		bank[row] = Tone{Frequency: freq, Amplitude: src.Intensity(row, col)}
	}
	return bank
}
