package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kerbaras/quotes/pkg/data"
	"github.com/kerbaras/quotes/pkg/sources"
)

// Store persists the favourites list.
type Store interface {
	Save(list []data.Quote) error
	Load() ([]data.Quote, error)
}

// History records fetched quotes. It is optional.
type History interface {
	Record(q data.Quote, at time.Time) (*data.HistoryEntry, error)
}

// State is a snapshot of one session.
type State struct {
	Current    data.Quote
	Favourites []data.Quote
	// Favourited is true once the current quote was marked; it resets
	// whenever a new quote replaces Current.
	Favourited bool
	Ready      bool
}

// QuoteController owns the current quote, the favourites list and the
// favourited flag, and drives the fetcher and store.
type QuoteController struct {
	source  sources.Source
	store   Store
	history History
	logger  *log.Logger
	now     func() time.Time

	mu         sync.Mutex
	current    data.Quote
	favourites *data.Favourites
	favourited bool
	ready      bool
}

type ControllerOption func(*QuoteController)

func WithHistory(h History) ControllerOption {
	return func(c *QuoteController) {
		c.history = h
	}
}

func WithClock(now func() time.Time) ControllerOption {
	return func(c *QuoteController) {
		c.now = now
	}
}

func NewQuoteController(source sources.Source, store Store, logger *log.Logger, opts ...ControllerOption) *QuoteController {
	c := &QuoteController{
		source:     source,
		store:      store,
		logger:     logger,
		now:        time.Now,
		current:    data.DefaultQuote,
		favourites: data.NewFavourites(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *QuoteController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Current:    c.current,
		Favourites: c.favourites.Items(),
		Favourited: c.favourited,
		Ready:      c.ready,
	}
}

// Start fetches the first quote, marks the session ready and then loads the
// saved favourites. A failure in either step leaves the related state as it
// was; both errors are returned.
func (c *QuoteController) Start(ctx context.Context) error {
	fetchErr := c.Next(ctx)

	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()

	loadErr := c.LoadFavourites()
	return errors.Join(fetchErr, loadErr)
}

// Next fetches a new quote and, on success, makes it current.
func (c *QuoteController) Next(ctx context.Context) error {
	q, err := c.FetchQuote(ctx)
	if err != nil {
		return err
	}
	c.ApplyQuote(q)
	return nil
}

// FetchQuote performs the network call only. It does not touch state, so it
// is safe to run from a background command.
func (c *QuoteController) FetchQuote(ctx context.Context) (data.Quote, error) {
	q, err := c.source.FetchRandomQuote(ctx)
	if err != nil {
		c.logger.Error("could not retrieve or decode quote", "err", err)
		return data.Quote{}, err
	}
	c.logger.Debug("fetched quote", "author", q.Author(), "link", q.QuoteLink)
	return q, nil
}

// ApplyQuote makes q current and clears the favourited flag.
func (c *QuoteController) ApplyQuote(q data.Quote) {
	c.mu.Lock()
	c.current = q
	c.favourited = false
	c.mu.Unlock()

	if c.history == nil {
		return
	}
	if _, err := c.history.Record(q, c.now()); err != nil {
		c.logger.Warn("could not record quote history", "err", err)
	}
}

// Favourite marks the current quote. Only the first call per quote adds it
// to the list, and never when an equal quote is already there. It reports
// whether the list grew.
func (c *QuoteController) Favourite() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.favourited {
		return false
	}
	c.favourited = true
	added := c.favourites.Add(c.current)
	if added {
		c.logger.Info("added favourite", "author", c.current.Author(), "count", c.favourites.Len())
	}
	return added
}

// RemoveFavourite drops the favourite at index. Removing the current quote
// clears the favourited flag so it can be marked again.
func (c *QuoteController) RemoveFavourite(index int) (data.Quote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	q, err := c.favourites.Remove(index)
	if err != nil {
		return data.Quote{}, err
	}
	if q.Equal(c.current) {
		c.favourited = false
	}
	c.logger.Info("removed favourite", "author", q.Author(), "count", c.favourites.Len())
	return q, nil
}

// LoadFavourites replaces the list with the stored one. On failure the
// current list is kept.
func (c *QuoteController) LoadFavourites() error {
	list, err := c.store.Load()
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			c.logger.Info("no saved favourites yet")
		} else {
			c.logger.Error("could not load favourites", "err", err)
		}
		return err
	}

	c.mu.Lock()
	c.favourites.Replace(list)
	c.mu.Unlock()

	c.logger.Info("loaded favourites", "count", len(list))
	return nil
}

// Background persists the favourites list. It does not change state.
func (c *QuoteController) Background() error {
	list := c.State().Favourites
	if err := c.store.Save(list); err != nil {
		c.logger.Error("unable to save favourites", "err", err)
		return err
	}
	c.logger.Info("saved favourites", "count", len(list))
	return nil
}
