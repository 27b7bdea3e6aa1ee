// ABOUTME: Entry point for the interactive browser
// ABOUTME: Runs the tea.Program until quit and returns the final selection

package browse

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/checktree-go/pkg/checktree"
)

// Run browses tree on the given terminal streams. Blocks until the user quits
// or ctx is cancelled, then returns the checked values.
func Run(ctx context.Context, tree *checktree.Tree, opts Options, in io.Reader, out io.Writer) ([]string, error) {
	p := tea.NewProgram(
		New(tree, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("bubble tea: %w", err)
	}
	return final.(Model).Checked(), nil
}
