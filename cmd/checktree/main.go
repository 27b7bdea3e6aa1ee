// ABOUTME: CLI entry point for checktree: render, browse and validate checkbox tree files
// ABOUTME: Dispatches on the first argument; each subcommand parses its own flags

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/checktree-go/internal/termfix"

	"github.com/mauromedda/checktree-go/internal/config"
	pilog "github.com/mauromedda/checktree-go/internal/log"
	"github.com/mauromedda/checktree-go/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// streams are the process's standard files, swapped out in tests.
type streams struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

const usage = `usage: checktree <command> [flags] FILE...

commands:
  render    render tree files as HTML or text
  browse    browse and select nodes interactively
  validate  check tree files for errors
  version   print version information

Run "checktree <command> -h" for the flags of a command.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], streams{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, argv []string, s streams) int {
	if len(argv) == 0 {
		fmt.Fprint(s.stderr, usage)
		return 2
	}

	var err error
	switch argv[0] {
	case "render":
		err = runRender(ctx, argv[1:], s)
	case "browse":
		err = runBrowse(ctx, argv[1:], s)
	case "validate":
		err = runValidate(argv[1:], s)
	case "version", "-version", "--version":
		fmt.Fprintf(s.stdout, "checktree %s (%s) built %s\n", version, commit, date)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(s.stdout, usage)
	default:
		fmt.Fprintf(s.stderr, "unknown command %q\n\n%s", argv[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(s.stderr, "error: %v\n", err)
		return 1
	}
}

// errUsage marks flag errors already reported by the FlagSet.
var errUsage = errors.New("usage")

// setup parses flags, loads settings and activates the theme.
func setup(fs *flag.FlagSet, args *cliArgs, argv []string) (*config.Settings, error) {
	if err := args.parse(fs, argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, errUsage
	}
	if args.verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	settings, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	args.overlay(settings)
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	th, err := theme.Resolve(settings.Theme)
	if err != nil {
		return nil, err
	}
	theme.Set(th)
	pilog.Debug("cli/setup: theme %s, format %s", th.Name, settings.OutputFormat())
	return settings, nil
}
