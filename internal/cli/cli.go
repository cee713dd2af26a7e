// SPDX-License-Identifier: EPL-2.0

// Package cli implements the waveform command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"github.com/ik5/waveform"
	"github.com/ik5/waveform/decoder"
)

// Version is printed by --version.
const Version = "2.0.0"

// CLI defines the command-line interface
type CLI struct {
	In       string          `arg:"" name:"in" optional:"" type:"path" help:"Audio file to summarize."`
	Scan     bool            `help:"Decode the whole file to count frames instead of trusting its metadata."`
	Width    int             `name:"wjs-width" default:"800" placeholder:"N" help:"Number of min/max pairs to write."`
	Plain    bool            `name:"wjs-plain" help:"Write a bare JSON array without the metadata object."`
	Version  bool            `help:"Print the version and exit."`
	Config   kong.ConfigFlag `short:"c" placeholder:"FILE" help:"YAML file with flag defaults."`
	LogLevel string          `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Diagnostics written to standard error."`
}

// exitCode carries kong's exit request (after --help) back to Run.
type exitCode int

// Run parses args, writes the waveform of the input file to stdout and
// returns the process exit code. Diagnostics go to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	return run(args, stdout, stderr, defaultConfigPaths)
}

func run(args []string, stdout, stderr io.Writer, configPaths []string) (code int) {
	var cli CLI

	k, err := kong.New(&cli,
		kong.Name("waveform"),
		kong.Description("Summarize an audio file as min/max waveform JSON."),
		kong.Writers(stderr, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.Help(StyledHelpPrinter(kong.HelpOptions{Compact: true})),
		kong.Configuration(yamlLoader, configPaths...),
	)
	if err != nil {
		PrintError(stderr, err.Error())
		return 1
	}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	ctx, err := k.Parse(args)
	if err != nil {
		PrintError(stderr, err.Error())
		var pe *kong.ParseError
		if errors.As(err, &pe) && pe.Context != nil {
			_ = pe.Context.PrintUsage(false)
		}
		return 1
	}

	if cli.Version {
		fmt.Fprintln(stdout, Version)
		return 0
	}

	if cli.In == "" {
		PrintError(stderr, "input file parameter required")
		_ = ctx.PrintUsage(false)
		return 1
	}

	logger := newLogger(cli.LogLevel, stderr)

	gen, err := waveform.New(waveform.Config{
		Width: cli.Width,
		Plain: cli.Plain,
		Scan:  cli.Scan,
	}, waveform.WithLogger(logger))
	if err != nil {
		PrintError(stderr, err.Error())
		_ = ctx.PrintUsage(false)
		return 1
	}

	sys := decoder.New(decoder.WithLogger(logger))
	defer sys.Close()

	f, err := sys.Open(cli.In)
	if err != nil {
		PrintError(stderr, fmt.Sprintf("opening input file %s: %v", cli.In, err))
		return 1
	}
	defer f.Close()

	res, err := gen.Generate(f, stdout)
	if err != nil {
		PrintError(stderr, err.Error())
		return 1
	}

	logger.Info("waveform written",
		"path", cli.In,
		"format", f.Format(),
		"frames", res.Length.Frames,
		"frames_per_pixel", res.FramesPerPixel,
		"pixels", res.Pixels,
	)

	return 0
}
