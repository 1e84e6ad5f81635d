package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kerbaras/quotes/pkg/app/styles"
	"github.com/kerbaras/quotes/pkg/data"
)

type FavouriteList struct {
	Items         []data.Quote
	SelectedIndex int
	Width         int
	Height        int
}

func NewFavouriteList() *FavouriteList {
	return &FavouriteList{
		Items:         []data.Quote{},
		SelectedIndex: 0,
		Width:         80,
		Height:        10,
	}
}

func (l *FavouriteList) SetItems(items []data.Quote) {
	l.Items = items
	if l.SelectedIndex >= len(items) && len(items) > 0 {
		l.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		l.SelectedIndex = 0
	}
}

func (l *FavouriteList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *FavouriteList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *FavouriteList) Selected() *data.Quote {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

// window returns the [start, end) range of rows that fit in Height while
// keeping the selection visible.
func (l *FavouriteList) window() (int, int) {
	height := l.Height
	if height < 1 {
		height = 1
	}
	if len(l.Items) <= height {
		return 0, len(l.Items)
	}
	start := l.SelectedIndex - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(l.Items) {
		start = len(l.Items) - height
	}
	return start, start + height
}

func (l *FavouriteList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No favourites yet")
		return lipgloss.Place(l.Width, 3, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	start, end := l.window()
	var b strings.Builder
	for i := start; i < end; i++ {
		q := l.Items[i]
		row := fmt.Sprintf("%s — %s", q.Text(), q.Author())
		row = ansi.Truncate(row, l.Width-4, "…")

		if i == l.SelectedIndex {
			b.WriteString(styles.SelectedStyle.Render("▸ " + row))
		} else {
			b.WriteString(styles.TextStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}

	if start > 0 || end < len(l.Items) {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("  %d/%d", l.SelectedIndex+1, len(l.Items))))
		b.WriteString("\n")
	}

	return b.String()
}
