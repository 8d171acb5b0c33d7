package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"neurofocus/internal/engine"
)

// RunBoard drives the interactive task board for a loaded session.
func RunBoard(ctx context.Context, sess *engine.Session, out io.Writer) error {
	m := newBoardModel(ctx, sess)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
