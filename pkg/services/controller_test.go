package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/quotes/pkg/data"
	"github.com/kerbaras/quotes/pkg/logging"
)

type mockSource struct {
	mu     sync.Mutex
	quotes []data.Quote
	errs   []error
	calls  int
}

func (m *mockSource) FetchRandomQuote(ctx context.Context) (data.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.calls
	m.calls++
	if i < len(m.errs) && m.errs[i] != nil {
		return data.Quote{}, m.errs[i]
	}
	if i < len(m.quotes) {
		return m.quotes[i], nil
	}
	return data.Quote{}, fmt.Errorf("no more quotes")
}

type mockStore struct {
	saved    [][]data.Quote
	saveErr  error
	loadFunc func() ([]data.Quote, error)
}

func (m *mockStore) Save(list []data.Quote) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, list)
	return nil
}

func (m *mockStore) Load() ([]data.Quote, error) {
	if m.loadFunc != nil {
		return m.loadFunc()
	}
	return nil, data.NewError(data.KindIO, "load", data.ErrNotFound)
}

type mockHistory struct {
	recorded []data.Quote
	err      error
}

func (m *mockHistory) Record(q data.Quote, at time.Time) (*data.HistoryEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.recorded = append(m.recorded, q)
	return &data.HistoryEntry{ID: "id", Quote: q, FetchedAt: at}, nil
}

var (
	quoteA = data.Quote{QuoteText: "A", QuoteAuthor: "Alpha", QuoteLink: "http://q/a"}
	quoteB = data.Quote{QuoteText: "B", QuoteAuthor: "Beta", QuoteLink: "http://q/b"}
)

func newController(source *mockSource, store *mockStore, opts ...ControllerOption) *QuoteController {
	return NewQuoteController(source, store, logging.Discard(), opts...)
}

func TestNewQuoteController(t *testing.T) {
	c := newController(&mockSource{}, &mockStore{})

	state := c.State()
	assert.Equal(t, data.DefaultQuote, state.Current)
	assert.Empty(t, state.Favourites)
	assert.False(t, state.Favourited)
	assert.False(t, state.Ready)
}

func TestControllerStart(t *testing.T) {
	store := &mockStore{loadFunc: func() ([]data.Quote, error) {
		return []data.Quote{quoteB}, nil
	}}
	c := newController(&mockSource{quotes: []data.Quote{quoteA}}, store)

	require.NoError(t, c.Start(context.Background()))

	state := c.State()
	assert.True(t, state.Ready)
	assert.Equal(t, quoteA, state.Current)
	assert.Equal(t, []data.Quote{quoteB}, state.Favourites)
}

func TestControllerStartFetchFailure(t *testing.T) {
	fetchErr := data.NewError(data.KindNetwork, "fetch", errors.New("offline"))
	c := newController(&mockSource{errs: []error{fetchErr}}, &mockStore{})

	err := c.Start(context.Background())

	require.Error(t, err)
	assert.True(t, data.IsKind(err, data.KindNetwork))
	assert.True(t, errors.Is(err, data.ErrNotFound))

	state := c.State()
	assert.True(t, state.Ready, "ready even when the fetch fails")
	assert.Equal(t, data.DefaultQuote, state.Current)
	assert.Empty(t, state.Favourites)
}

func TestControllerFavouriteTwice(t *testing.T) {
	c := newController(&mockSource{quotes: []data.Quote{quoteA}}, &mockStore{})
	require.NoError(t, c.Next(context.Background()))

	assert.True(t, c.Favourite())
	assert.False(t, c.Favourite())

	state := c.State()
	assert.Equal(t, []data.Quote{quoteA}, state.Favourites)
	assert.True(t, state.Favourited)
}

func TestControllerNextResetsFavourited(t *testing.T) {
	c := newController(&mockSource{quotes: []data.Quote{quoteA, quoteB}}, &mockStore{})
	require.NoError(t, c.Next(context.Background()))
	c.Favourite()
	require.True(t, c.State().Favourited)

	require.NoError(t, c.Next(context.Background()))

	state := c.State()
	assert.Equal(t, quoteB, state.Current)
	assert.False(t, state.Favourited)

	assert.True(t, c.Favourite())
	assert.Equal(t, []data.Quote{quoteA, quoteB}, c.State().Favourites)
}

func TestControllerNextFailureKeepsState(t *testing.T) {
	src := &mockSource{
		quotes: []data.Quote{quoteA},
		errs:   []error{nil, data.NewError(data.KindDecode, "fetch", errors.New("bad json"))},
	}
	c := newController(src, &mockStore{})
	require.NoError(t, c.Next(context.Background()))
	c.Favourite()

	err := c.Next(context.Background())

	require.Error(t, err)
	assert.True(t, data.IsKind(err, data.KindDecode))
	state := c.State()
	assert.Equal(t, quoteA, state.Current)
	assert.True(t, state.Favourited, "flag only resets when a new quote arrives")
}

func TestControllerRefetchSameContentNoDuplicate(t *testing.T) {
	c := newController(&mockSource{quotes: []data.Quote{quoteA, quoteA}}, &mockStore{})
	require.NoError(t, c.Next(context.Background()))
	assert.True(t, c.Favourite())

	require.NoError(t, c.Next(context.Background()))
	assert.False(t, c.State().Favourited)
	assert.False(t, c.Favourite())

	assert.Equal(t, []data.Quote{quoteA}, c.State().Favourites)
}

func TestControllerRecordsHistory(t *testing.T) {
	history := &mockHistory{}
	fixed := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	c := newController(&mockSource{quotes: []data.Quote{quoteA, quoteB}}, &mockStore{},
		WithHistory(history), WithClock(func() time.Time { return fixed }))

	require.NoError(t, c.Next(context.Background()))
	require.NoError(t, c.Next(context.Background()))

	assert.Equal(t, []data.Quote{quoteA, quoteB}, history.recorded)
}

func TestControllerHistoryFailureIgnored(t *testing.T) {
	c := newController(&mockSource{quotes: []data.Quote{quoteA}}, &mockStore{},
		WithHistory(&mockHistory{err: errors.New("db locked")}))

	require.NoError(t, c.Next(context.Background()))
	assert.Equal(t, quoteA, c.State().Current)
}

func TestControllerBackground(t *testing.T) {
	store := &mockStore{}
	c := newController(&mockSource{quotes: []data.Quote{quoteA}}, store)
	require.NoError(t, c.Next(context.Background()))
	c.Favourite()

	require.NoError(t, c.Background())

	require.Len(t, store.saved, 1)
	assert.Equal(t, []data.Quote{quoteA}, store.saved[0])
	assert.Equal(t, quoteA, c.State().Current)
}

func TestControllerBackgroundFailure(t *testing.T) {
	store := &mockStore{saveErr: data.NewError(data.KindIO, "save", errors.New("disk full"))}
	c := newController(&mockSource{}, store)

	err := c.Background()
	assert.True(t, data.IsKind(err, data.KindIO))
}

func TestControllerLoadFailureKeepsList(t *testing.T) {
	store := &mockStore{loadFunc: func() ([]data.Quote, error) {
		return nil, data.NewError(data.KindDecode, "load", errors.New("garbage"))
	}}
	c := newController(&mockSource{quotes: []data.Quote{quoteA}}, store)
	require.NoError(t, c.Next(context.Background()))
	c.Favourite()

	err := c.LoadFavourites()

	assert.True(t, data.IsKind(err, data.KindDecode))
	assert.Equal(t, []data.Quote{quoteA}, c.State().Favourites)
}

func TestControllerRemoveFavourite(t *testing.T) {
	c := newController(&mockSource{quotes: []data.Quote{quoteA}}, &mockStore{})
	require.NoError(t, c.Next(context.Background()))
	c.Favourite()

	removed, err := c.RemoveFavourite(0)
	require.NoError(t, err)
	assert.Equal(t, quoteA, removed)
	assert.False(t, c.State().Favourited)
	assert.Empty(t, c.State().Favourites)

	_, err = c.RemoveFavourite(0)
	assert.Error(t, err)
}

func TestControllerWithFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favourites.json")
	src := &mockSource{quotes: []data.Quote{quoteA, quoteB}}

	first := NewQuoteController(src, data.NewFileStore(path), logging.Discard())
	require.NoError(t, first.Next(context.Background()))
	first.Favourite()
	require.NoError(t, first.Next(context.Background()))
	first.Favourite()
	require.NoError(t, first.Background())

	second := NewQuoteController(&mockSource{}, data.NewFileStore(path), logging.Discard())
	require.NoError(t, second.LoadFavourites())
	assert.Equal(t, []data.Quote{quoteA, quoteB}, second.State().Favourites)
}
