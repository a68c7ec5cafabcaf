// Package synth renders tone banks into PCM samples by additive synthesis.
//
// Each column of an image is rendered as a fixed number of samples. Every
// sample is the average of all the tones of the column's bank, clamped to
// [-1, 1] and quantized to 16 bits. The tone phase restarts at offset zero for
// every column. Stream exposes the whole image as a beep.Streamer so the
// samples can be encoded without buffering the full waveform.
package synth
