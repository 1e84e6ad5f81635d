package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/quotes/pkg/app/components"
	"github.com/kerbaras/quotes/pkg/app/styles"
	"github.com/kerbaras/quotes/pkg/data"
	"github.com/kerbaras/quotes/pkg/services"
)

// Controller is the part of services.QuoteController the screen drives.
type Controller interface {
	State() services.State
	Start(ctx context.Context) error
	Next(ctx context.Context) error
	Favourite() bool
	RemoveFavourite(index int) (data.Quote, error)
	Background() error
}

// RootScreen renders the current quote, the favourite indicator and the
// favourites list, and translates keys and lifecycle events into controller
// calls.
type RootScreen struct {
	ctx        context.Context
	controller Controller

	state    services.State
	fetching bool

	favourites *components.FavouriteList
	status     *components.StatusLine
	spinner    spinner.Model
	help       help.Model
	keys       keyMap

	width  int
	height int
}

func NewRootScreen(ctx context.Context, controller Controller) *RootScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.StatusInfo

	return &RootScreen{
		ctx:        ctx,
		controller: controller,
		state:      controller.State(),
		fetching:   true,
		favourites: components.NewFavouriteList(),
		status:     components.NewStatusLine(),
		spinner:    s,
		help:       help.New(),
		keys:       defaultKeyMap(),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(r.spinner.Tick, r.start)
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.help.Width = msg.Width
		r.favourites.Width = msg.Width - 4
		r.favourites.Height = max(msg.Height-22, 3)

	case spinner.TickMsg:
		if !r.fetching {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case tea.KeyMsg:
		return r.handleKey(msg)

	case tea.BlurMsg:
		// leaving the terminal is the closest thing to backgrounding
		return r, r.save

	case startedMsg:
		r.fetching = false
		r.refresh()
		r.status.Error(msg.err)

	case quoteFetchedMsg:
		r.fetching = false
		r.refresh()
		if msg.err != nil {
			r.status.Error(msg.err)
		} else {
			r.status.Clear()
		}

	case savedMsg:
		if msg.err != nil {
			r.status.Error(msg.err)
		} else {
			r.status.Success(fmt.Sprintf("Saved %d favourites", msg.count))
		}
	}

	return r, nil
}

func (r *RootScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, r.keys.Quit):
		// the app saves once the program has exited
		return r, tea.Quit

	case key.Matches(msg, r.keys.Suspend):
		return r, tea.Sequence(r.save, tea.Suspend)

	case key.Matches(msg, r.keys.Help):
		r.help.ShowAll = !r.help.ShowAll

	case key.Matches(msg, r.keys.Favourite):
		if !r.state.Ready {
			return r, nil
		}
		if r.controller.Favourite() {
			r.status.Success("Added to favourites")
		} else if !r.state.Favourited {
			r.status.Info("Already in favourites")
		}
		r.refresh()

	case key.Matches(msg, r.keys.Another):
		if r.fetching {
			return r, nil
		}
		r.fetching = true
		return r, tea.Batch(r.spinner.Tick, r.fetch)

	case key.Matches(msg, r.keys.Up):
		r.favourites.Prev()

	case key.Matches(msg, r.keys.Down):
		r.favourites.Next()

	case key.Matches(msg, r.keys.Remove):
		if r.favourites.Selected() == nil {
			return r, nil
		}
		removed, err := r.controller.RemoveFavourite(r.favourites.SelectedIndex)
		if err != nil {
			r.status.Error(err)
		} else {
			r.status.Info(fmt.Sprintf("Removed quote by %s", removed.Author()))
		}
		r.refresh()

	case key.Matches(msg, r.keys.Save):
		return r, r.save
	}

	return r, nil
}

func (r *RootScreen) refresh() {
	r.state = r.controller.State()
	r.favourites.SetItems(r.state.Favourites)
}

func (r *RootScreen) View() string {
	header := styles.TitleStyle.Render("Quote?")

	cardWidth := r.width - 8
	if cardWidth < 20 {
		cardWidth = 60
	}
	quote := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.QuoteTextStyle.Render(r.state.Current.Text()),
		styles.AuthorStyle.Render("— "+r.state.Current.Author()),
	)
	card := styles.QuoteCardStyle.Width(cardWidth).Render(quote)

	heart := styles.HeartInactiveStyle.Render("♡ not a favourite")
	if r.state.Favourited {
		heart = styles.HeartActiveStyle.Render("♥ favourite")
	}

	var fetching string
	if r.fetching {
		fetching = "  " + r.spinner.View() + styles.MutedStyle.Render(" fetching…")
	}

	favHeader := styles.SectionStyle.Render(fmt.Sprintf("Favourites (%d)", len(r.state.Favourites)))

	return fmt.Sprintf("%s\n%s\n %s%s\n\n%s\n%s\n%s\n%s",
		header,
		card,
		heart,
		fetching,
		favHeader,
		r.favourites.View(),
		r.status.View(),
		styles.HelpStyle.Render(r.help.View(r.keys)),
	)
}

// Messages
type startedMsg struct {
	err error
}

type quoteFetchedMsg struct {
	err error
}

type savedMsg struct {
	count int
	err   error
}

// Commands
func (r *RootScreen) start() tea.Msg {
	return startedMsg{err: r.controller.Start(r.ctx)}
}

func (r *RootScreen) fetch() tea.Msg {
	return quoteFetchedMsg{err: r.controller.Next(r.ctx)}
}

func (r *RootScreen) save() tea.Msg {
	err := r.controller.Background()
	return savedMsg{count: len(r.controller.State().Favourites), err: err}
}
