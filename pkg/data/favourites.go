package data

import "fmt"

// Favourites is the ordered list of quotes the user marked. Entries are
// unique by content: adding a quote equal to one already present is a no-op.
type Favourites struct {
	items []Quote
}

func NewFavourites() *Favourites {
	return &Favourites{items: []Quote{}}
}

// Add appends q unless an equal quote is already in the list.
func (f *Favourites) Add(q Quote) bool {
	if f.Contains(q) {
		return false
	}
	f.items = append(f.items, q)
	return true
}

func (f *Favourites) Contains(q Quote) bool {
	for _, item := range f.items {
		if item.Equal(q) {
			return true
		}
	}
	return false
}

func (f *Favourites) Len() int {
	return len(f.items)
}

// Items returns a copy of the list in insertion order.
func (f *Favourites) Items() []Quote {
	out := make([]Quote, len(f.items))
	copy(out, f.items)
	return out
}

// Replace swaps the whole list, as done after loading from disk.
func (f *Favourites) Replace(list []Quote) {
	f.items = make([]Quote, len(list))
	copy(f.items, list)
}

// Remove drops the entry at index and returns it.
func (f *Favourites) Remove(index int) (Quote, error) {
	if index < 0 || index >= len(f.items) {
		return Quote{}, fmt.Errorf("favourite index %d out of range (have %d)", index, len(f.items))
	}
	q := f.items[index]
	f.items = append(f.items[:index], f.items[index+1:]...)
	return q, nil
}
