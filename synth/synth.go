package synth

import (
	"math"

	"github.com/neurlang/imgwav/tone"
)

// BaseDuration is the length in seconds of an image with a 1:1 aspect ratio
// at stretch 1.
const BaseDuration = 10

// SampleRate is the default output sample rate in Hz.
const SampleRate = 44100

// Duration returns the output length in seconds for an image of the given
// original size.
func Duration(stretch float64, width, height int) float64 {
	return BaseDuration * stretch * float64(width) / float64(height)
}

// SamplesPerColumn returns how many samples each of cols columns gets.
// Halves round to even.
func SamplesPerColumn(duration float64, sampleRate, cols int) int {
	if cols <= 0 {
		return 0
	}
	n := math.RoundToEven(duration * float64(sampleRate) / float64(cols))
	if n < 0 {
		return 0
	}
	return int(n)
}

// Mix sums the tones of bank at sample offset i and divides by the number
// of tones.
func Mix(bank tone.Bank, i int, sampleRate float64) float64 {
	if len(bank) == 0 {
		return 0
	}
	var sample float64
	for _, t := range bank {
		sample += t.Sample(i, sampleRate)
	}
	return sample / float64(len(bank))
}

// Clamp limits sample to [-1, 1] and reports whether it had to.
func Clamp(sample float64) (float64, bool) {
	switch {
	case sample > 1:
		return 1, true
	case sample < -1:
		return -1, true
	}
	return sample, false
}

// Quantize converts sample to a signed 16-bit value, truncating toward zero.
// Out of range samples are clamped.
func Quantize(sample float64) (int16, bool) {
	v, clipped := Clamp(sample)
	return int16(v * math.MaxInt16), clipped
}

// Column renders count quantized samples of bank, starting at offset zero.
func Column(bank tone.Bank, count int, sampleRate float64) []int16 {
	out := make([]int16, count)
	for i := range out {
		out[i], _ = Quantize(Mix(bank, i, sampleRate))
	}
	return out
}
