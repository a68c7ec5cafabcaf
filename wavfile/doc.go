// Package wavfile writes mono 16-bit linear PCM WAV files from a
// beep.Streamer.
package wavfile
