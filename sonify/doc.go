// Package sonify turns images into audio whose spectrogram resembles the image.
//
// This package wires the image loader, the tone bank builder, the additive
// synthesizer and the WAV writer into one streaming conversion. It supports:
//   - Converting PNG/JPEG/GIF/BMP/TIFF/WebP images to mono 16-bit WAV files
//   - Configurable vertical resolution (the number of tones per column)
//   - Horizontal stretch of the output duration
//   - Linear or logarithmic row-to-frequency mapping
//
// Columns are synthesized and written one at a time; the full waveform is
// never held in memory.
package sonify
