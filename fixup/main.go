package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BertoldVdb/rom-fixup/romfix"
	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

const (
	exitOK = iota
	exitUsage
	exitSourceNotFound
	exitTruncatedImage
	exitDestinationUnwritable
	exitVerifyFailed
)

type CLI struct {
	Input  string `arg:"" name:"input-path" help:"ROM image to read."`
	Output string `arg:"" name:"output-path" help:"File to write the fixed image to."`

	Offset   int  `optional:"" type:"hex" help:"Offset of the checksum byte." default:"6"`
	Verify   bool `optional:"" help:"Read back the output and verify its checksum."`
	LogLevel int  `optional:"" type:"int" help:"Higher values give more output on stderr."`
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("fixup"),
		kong.Description("Recompute the checksum byte of a ROM image."),
		kong.NamedMapper("int", intMapper{base: 10}),
		kong.NamedMapper("hex", intMapper{base: 16}))
}

func run(cli *CLI, stdout io.Writer, stderr io.Writer) int {
	config := romfix.DefaultConfig()
	config.Offset = cli.Offset
	config.LogFunc = func(level int, format string, param ...interface{}) {
		if level > cli.LogLevel {
			return
		}
		str := fmt.Sprintf(format, param...)
		fmt.Fprintf(stderr, "fixup(%d): %s\n", level, str)
	}

	red := color.New(color.FgRed)

	fixer, err := romfix.New(config)
	if err != nil {
		red.Fprintln(stderr, "Invalid configuration:", err)
		return exitUsage
	}

	csum, err := fixer.Fix(cli.Input, cli.Output)
	if err != nil {
		switch errors.Cause(err) {
		case romfix.ErrorSourceNotFound:
			red.Fprintln(stderr, "Failed to read source image:", err)
			return exitSourceNotFound
		case romfix.ErrorTruncatedImage:
			red.Fprintln(stderr, "Source image is truncated:", err)
			return exitTruncatedImage
		case romfix.ErrorDestinationUnwritable:
			red.Fprintln(stderr, "Failed to write destination:", err)
			return exitDestinationUnwritable
		}
		red.Fprintln(stderr, "Failed to fix image:", err)
		return exitUsage
	}

	if cli.Verify {
		if err := fixer.Verify(cli.Output); err != nil {
			red.Fprintln(stderr, "Failed to verify output:", err)
			return exitVerifyFailed
		}
	}

	fmt.Fprintln(stdout, csum)
	return exitOK
}

func main() {
	var cli CLI
	k, err := newParser(&cli)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	if _, err := k.Parse(os.Args[1:]); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	os.Exit(run(&cli, os.Stdout, os.Stderr))
}
