// Package main is the entry point for the cellpad editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/cellpad/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, action, err := parseFlags(os.Args[1:], os.Stderr)
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	case action == actionHelp:
		return 0
	case action == actionVersion:
		fmt.Printf("cellpad %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "Error: %v: cellpad needs an interactive terminal\n", app.ErrNotTerminal)
		return 1
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type flagAction int

const (
	actionRun flagAction = iota
	actionHelp
	actionVersion
)

// parseFlags parses the command line. Usage and flag errors go to out.
func parseFlags(args []string, out io.Writer) (app.Options, flagAction, error) {
	var opts app.Options
	var showVersion, showHelp bool

	fs := flag.NewFlagSet("cellpad", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.BoolVar(&opts.Debug, "debug", false, "Enable debug mode")
	fs.BoolVar(&opts.Debug, "d", false, "Enable debug mode (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(out, "cellpad - a small terminal text editor\n\n")
		fmt.Fprintf(out, "Usage: cellpad [options] [file]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  cellpad                     Open an empty document\n")
		fmt.Fprintf(out, "  cellpad notes.txt           Open or create a file\n")
		fmt.Fprintf(out, "  cellpad -d notes.txt        Log debug output to the state directory\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, actionHelp, nil
		}
		return opts, actionRun, err
	}

	if showHelp {
		fs.Usage()
		return opts, actionHelp, nil
	}
	if showVersion {
		return opts, actionVersion, nil
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return opts, actionRun, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.LogLevel)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.File = fs.Arg(0)
	default:
		return opts, actionRun, fmt.Errorf("only one file can be edited, got %d", fs.NArg())
	}

	return opts, actionRun, nil
}
