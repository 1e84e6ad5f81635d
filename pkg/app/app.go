package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/quotes/pkg/app/screens"
)

type App struct {
	controller screens.Controller
	options    []tea.ProgramOption
}

// NewApp builds the TUI around controller. Extra program options are
// appended to the defaults.
func NewApp(controller screens.Controller, opts ...tea.ProgramOption) *App {
	return &App{controller: controller, options: opts}
}

// Run blocks until the program exits. Favourites are saved on focus loss and
// before suspending, and always once more on the way out, however the
// program ended. Cancelling ctx counts as a normal exit.
func (a *App) Run(ctx context.Context) error {
	model := screens.NewRootScreen(ctx, a.controller)
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx)}, a.options...)
	p := tea.NewProgram(model, opts...)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	return errors.Join(err, a.controller.Background())
}
