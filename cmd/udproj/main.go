package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], ui); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

// run parses the main arguments and runs the command. Errors other than
// flag.ErrHelp are printed to ui.Err, parsers only print the usage.
func run(ctx context.Context, args []string, ui UI) error {
	cmd, cmdArgs, err := parseMainArgs(args, ui)
	if err == nil {
		err = runCommand(ctx, cmd, cmdArgs, ui)
	}

	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fprintErr(ui.Err, err)
		}
		return err
	}

	return nil
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "udproj: %v\n", err)
}

func runCommand(ctx context.Context, cmd string, args []string, ui UI) error {
	switch cmd {
	case "help":
		if len(args) > 0 {
			return runCommand(ctx, args[0], []string{"--help"}, ui)
		}
		fs := flag.NewFlagSet("udproj", flag.ContinueOnError)
		fs.SetOutput(ui.Out)
		setupUsage(fs)
		fs.Usage()
		return nil

	case "project":
		opts, err := parseProjectArgs(args, ui)
		if err != nil {
			return helpIsNil(err)
		}
		return projectCommand(ctx, opts, ui)

	case "ls":
		opts, err := parseLsArgs(args, ui)
		if err != nil {
			return helpIsNil(err)
		}
		return lsCommand(opts, ui)

	case "sentence":
		opts, source, sentId, err := parseSentenceArgs(args, ui)
		if err != nil {
			return helpIsNil(err)
		}
		return sentenceCommand(opts, source, sentId, ui)

	case "stat":
		opts, source, sentId, err := parseStatArgs(args, ui)
		if err != nil {
			return helpIsNil(err)
		}
		return statCommand(opts, source, sentId, ui)

	case "import":
		opts, err := parseImportArgs(args, ui)
		if err != nil {
			return helpIsNil(err)
		}
		return importCommand(opts, ui)

	case "export":
		opts, err := parseExportArgs(args, ui)
		if err != nil {
			return helpIsNil(err)
		}
		return exportCommand(opts, ui)

	case "version":
		return versionCommand(ui)

	case "bash":
		if err := parseBashArgs(args, ui); err != nil {
			return helpIsNil(err)
		}
		return bashCommand(ui)

	case "complete":
		completeArgs, err := parseCompleteArgs(args, ui)
		if err != nil {
			return err
		}
		return completeCommand(completeArgs, ui)
	}

	return fmt.Errorf("unknown command: %s", cmd)
}

// helpIsNil turns a -h request into success, the usage has been printed.
func helpIsNil(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}
