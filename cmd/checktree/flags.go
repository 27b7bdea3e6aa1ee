// ABOUTME: CLI flag parsing using stdlib flag package, one FlagSet per subcommand
// ABOUTME: Global tree flags are registered on every subcommand and overlay config settings

package main

import (
	"flag"
	"io"
	"strings"

	"github.com/mauromedda/checktree-go/internal/config"
)

type cliArgs struct {
	verbose            bool
	theme              string
	treeID             string
	optimistic         bool
	noCascade          bool
	onlyLeafCheckboxes bool
	radio              bool
	noIcons            bool

	// render
	format    string
	outDir    string
	width     int
	checked   listFlag
	expanded  listFlag
	expandAll bool

	set map[string]bool
}

// listFlag is a comma-separated, repeatable string list.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

// newFlagSet creates the FlagSet for a subcommand with the global flags registered.
func newFlagSet(name string, stderr io.Writer, args *cliArgs) *flag.FlagSet {
	fs := flag.NewFlagSet("checktree "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging on stderr")
	fs.StringVar(&args.theme, "theme", "", "Theme name (default, dark, light, monochrome) or JSON theme file")
	fs.StringVar(&args.treeID, "tree-id", "", "Tree id used to build input ids (default: file name)")
	fs.BoolVar(&args.optimistic, "optimistic", true, "Clicking a partial checkbox checks it")
	fs.BoolVar(&args.noCascade, "no-cascade", false, "Do not cascade checks to descendants")
	fs.BoolVar(&args.onlyLeafCheckboxes, "only-leaf-checkboxes", false, "Hide folder checkboxes")
	fs.BoolVar(&args.radio, "radio", false, "Single value selection with radio glyphs")
	fs.BoolVar(&args.noIcons, "no-icons", false, "Hide node icons")
	return fs
}

// registerRender adds the render-only flags.
func registerRender(fs *flag.FlagSet, args *cliArgs) {
	fs.StringVar(&args.format, "format", "", "Output format: html or text (default from config, else html)")
	fs.StringVar(&args.outDir, "o", "", "Write one file per input into this directory instead of stdout")
	fs.IntVar(&args.width, "width", 0, "Line width for text output (default: terminal width or 80)")
	fs.Var(&args.checked, "checked", "Comma-separated values to check, replacing the file's selection")
	fs.Var(&args.expanded, "expanded", "Comma-separated folder values to expand, replacing the file's state")
	fs.BoolVar(&args.expandAll, "expand-all", false, "Expand every folder")
}

// parse parses argv and records which flags were given explicitly.
func (a *cliArgs) parse(fs *flag.FlagSet, argv []string) error {
	if err := fs.Parse(argv); err != nil {
		return err
	}
	a.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { a.set[f.Name] = true })
	return nil
}

// overlay applies explicitly given flags on top of the loaded settings.
func (a *cliArgs) overlay(s *config.Settings) {
	if a.set["theme"] {
		s.Theme = a.theme
	}
	if a.set["tree-id"] {
		s.TreeID = a.treeID
	}
	if a.set["format"] {
		s.Format = a.format
	}
	if a.set["optimistic"] {
		s.OptimisticToggle = config.Bool(a.optimistic)
	}
	if a.set["no-cascade"] {
		s.NoCascade = config.Bool(a.noCascade)
	}
	if a.set["only-leaf-checkboxes"] {
		s.OnlyLeafCheckboxes = config.Bool(a.onlyLeafCheckboxes)
	}
	if a.set["radio"] {
		s.SingleValueOnly = config.Bool(a.radio)
	}
	if a.set["no-icons"] {
		s.ShowNodeIcon = config.Bool(!a.noIcons)
	}
}
