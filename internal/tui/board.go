package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
)

// RunBoard opens the kanban board for the given community scope.
func RunBoard(svc *engine.Service, scope string, out io.Writer) error {
	m := newBoardModel(svc, scope)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
