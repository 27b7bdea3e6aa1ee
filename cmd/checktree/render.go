// ABOUTME: render subcommand: loads tree files concurrently and writes HTML or text
// ABOUTME: Output keeps argument order on stdout, or goes to one file per input with -o

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mauromedda/checktree-go/internal/config"
	pilog "github.com/mauromedda/checktree-go/internal/log"
	"github.com/mauromedda/checktree-go/pkg/checktree"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

func runRender(ctx context.Context, argv []string, s streams) error {
	var args cliArgs
	fs := newFlagSet("render", s.stderr, &args)
	registerRender(fs, &args)
	settings, err := setup(fs, &args, argv)
	if err != nil {
		return err
	}
	files := fs.Args()
	if len(files) == 0 {
		return errors.New("render: no input files")
	}

	format := settings.OutputFormat()
	width := args.width
	if width <= 0 {
		width = termWidth(s.stdout)
	}
	if args.outDir != "" {
		if err := os.MkdirAll(args.outDir, 0o755); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}

	outputs := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := renderFile(path, settings, &args, format, width)
			if err != nil {
				return err
			}
			if args.outDir == "" {
				outputs[i] = out
				return nil
			}
			dst := filepath.Join(args.outDir, stem(path)+"."+extFor(format))
			if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", dst, err)
			}
			pilog.Info("render/write: %s", dst)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if args.outDir != "" {
		return nil
	}
	for _, out := range outputs {
		if _, err := io.WriteString(s.stdout, out); err != nil {
			return err
		}
	}
	return nil
}

// renderFile builds the tree for path and renders it in format.
func renderFile(path string, settings *config.Settings, args *cliArgs, format string, width int) (string, error) {
	doc, err := checktree.LoadFile(path)
	if err != nil {
		return "", err
	}
	if args.set["tree-id"] {
		doc.TreeID = args.treeID
	}
	tree, err := checktree.NewTreeFromDocument(doc, settings.TreeOptions(stem(path)))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if args.set["checked"] {
		if err := tree.SetChecked(args.checked); err != nil {
			return "", fmt.Errorf("%s: -checked: %w", path, err)
		}
	}
	if args.set["expanded"] {
		if err := tree.SetExpanded(args.expanded); err != nil {
			return "", fmt.Errorf("%s: -expanded: %w", path, err)
		}
	}
	if args.expandAll {
		tree.ExpandAll()
	}
	pilog.Debug("render/file: %s (%d nodes, %s)", path, tree.Len(), format)

	var b strings.Builder
	switch format {
	case config.FormatText:
		for _, line := range tree.RenderText(width, nil) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	default:
		if err := tree.WriteHTML(&b); err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func extFor(format string) string {
	if format == config.FormatText {
		return "txt"
	}
	return "html"
}

// stem is the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// termWidth returns the column count of w when it is a terminal, else 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return 80
}
