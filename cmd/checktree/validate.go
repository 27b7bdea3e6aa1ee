// ABOUTME: validate subcommand: checks tree files and reports each result on its own line
// ABOUTME: Fails when any file is invalid; validation paths come from checktree.ValidationError

package main

import (
	"errors"
	"fmt"

	pilog "github.com/mauromedda/checktree-go/internal/log"
	"github.com/mauromedda/checktree-go/pkg/checktree"
)

func runValidate(argv []string, s streams) error {
	var args cliArgs
	fs := newFlagSet("validate", s.stderr, &args)
	settings, err := setup(fs, &args, argv)
	if err != nil {
		return err
	}
	files := fs.Args()
	if len(files) == 0 {
		return errors.New("validate: no input files")
	}

	failed := 0
	for _, path := range files {
		n, err := validateFile(path, settings.TreeOptions(stem(path)))
		if err != nil {
			failed++
			fmt.Fprintf(s.stdout, "FAIL %s: %v\n", path, err)
			var verr *checktree.ValidationError
			if errors.As(err, &verr) {
				pilog.Debug("validate/file: %s field %s at %v", path, verr.Field, verr.Path)
			}
			continue
		}
		fmt.Fprintf(s.stdout, "ok   %s (%d nodes)\n", path, n)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(files))
	}
	return nil
}

// validateFile loads path and builds its tree, which also checks the
// document's checked and expanded references.
func validateFile(path string, opts checktree.TreeOptions) (int, error) {
	doc, err := checktree.LoadFile(path)
	if err != nil {
		return 0, err
	}
	tree, err := checktree.NewTreeFromDocument(doc, opts)
	if err != nil {
		return 0, err
	}
	return tree.Len(), nil
}
