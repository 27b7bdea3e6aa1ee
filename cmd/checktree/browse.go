// ABOUTME: browse subcommand: interactive selection over one tree file
// ABOUTME: The UI draws on stderr so the final selection report can be piped from stdout

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mauromedda/checktree-go/internal/browse"
	"github.com/mauromedda/checktree-go/internal/report"
	"github.com/mauromedda/checktree-go/pkg/checktree"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("browse: stdin is not a terminal")

func runBrowse(ctx context.Context, argv []string, s streams) error {
	var args cliArgs
	fs := newFlagSet("browse", s.stderr, &args)
	settings, err := setup(fs, &args, argv)
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("browse: expected exactly one FILE")
	}
	if !isTerminal(s.stdin) {
		return errNotTerminal
	}

	path := fs.Arg(0)
	doc, err := checktree.LoadFile(path)
	if err != nil {
		return err
	}
	if args.set["tree-id"] {
		doc.TreeID = args.treeID
	}
	tree, err := checktree.NewTreeFromDocument(doc, settings.TreeOptions(stem(path)))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if _, err := browse.Run(ctx, tree, browse.Options{Title: path}, s.stdin, s.stderr); err != nil {
		return err
	}

	style := ""
	if !isTerminal(s.stdout) {
		style = "notty"
	}
	md := report.Markdown(tree)
	_, err = fmt.Fprintln(s.stdout, report.NewRenderer(style).Render(md, termWidth(s.stdout)))
	return err
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
