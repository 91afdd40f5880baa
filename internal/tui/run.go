package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/idilsaglam/shoplist/internal/model"
)

type RunOptions struct {
	AltScreen bool
}

// Run starts the Bubble Tea program and returns the list as it was when the
// user quit.
func Run(app App, opt RunOptions) ([]model.ShoppingItem, error) {
	var opts []tea.ProgramOption
	if opt.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app, opts...)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run program: %w", err)
	}
	fm, ok := finalModel.(App)
	if !ok {
		return app.Items(), nil
	}
	return fm.Items(), nil
}
