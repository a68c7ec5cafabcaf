// Package tone maps image rows to sine tones.
//
// Every column of an image is turned into a Bank: one Tone per row, where the
// row position selects the frequency and the pixel brightness selects the
// amplitude. It supports:
//   - Linear row-to-frequency mapping (row 0 is the highest frequency)
//   - Logarithmic mapping for spectrogram viewers that already use a log axis
//   - Per-sample evaluation of a single tone at a given sample rate
package tone
