// Command towav converts images to audio files (WAV) whose spectrogram shows the image.
//
// Every column of the image becomes a short slice of sound. Every row of that column
// becomes a sine tone: the top row plays at 20 kHz, the bottom row just above 200 Hz,
// and the pixel brightness sets the loudness. The total length is 10 seconds for a
// square image, scaled by the aspect ratio and the stretch factor.
//
// Usage:
//
//	towav [-s stretch] [-r resolution] [-l] [-q] <input_image> <output_wav>
//
// Flags may also follow the file names. The output is mono 16-bit PCM at 44100 Hz.
//
// Exit status is 0 on success, 2 on usage errors, 3 if the image cannot be loaded,
// 4 if the image or settings leave nothing to synthesize, 5 if the output cannot be
// written and 1 otherwise.
//
// Supported input formats: .png, .jpg, .gif, .bmp, .tiff, .webp
package main
