package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/neurlang/imgwav/sonify"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Create a new instance of Sonify
	var m = sonify.NewSonify()

	fs := pflag.NewFlagSet("towav", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64VarP(&m.Stretch, "stretch", "s", m.Stretch, "Scale the image along the X-axis")
	fs.IntVarP(&m.Resolution, "resolution", "r", m.Resolution, "Vertical resolution to resize the image to. Keeps aspect ratio")
	fs.BoolVarP(&m.Log, "log", "l", m.Log, "Correct logarithmic scale for spectrograms that don't already")
	quiet := fs.BoolP("quiet", "q", false, "Do not print the progress counter")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: towav [flags] <input_image> <output_wav>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	if !*quiet {
		m.Progress = stdout
	}
	m.Logger = log.New(stderr, "towav: ", 0)

	// Generate the wave from the image
	inputFile := fs.Arg(0)
	outputFile := fs.Arg(1)
	err := m.ToWavImage(inputFile, outputFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error generating wave from image: %v\n", err)
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, sonify.ErrLoad):
		return 3
	case errors.Is(err, sonify.ErrDegenerateInput):
		return 4
	case errors.Is(err, sonify.ErrWrite):
		return 5
	}
	return 1
}
