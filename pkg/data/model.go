package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Quote is a single quote as served by the quote endpoint and stored in the
// favourites file. It is a plain value: a new fetch produces a new Quote.
type Quote struct {
	QuoteText   string `json:"quoteText"`
	QuoteAuthor string `json:"quoteAuthor"`
	SenderName  string `json:"senderName"`
	SenderLink  string `json:"senderLink"`
	QuoteLink   string `json:"quoteLink"`
}

// DefaultQuote is displayed until the first fetch completes.
var DefaultQuote = Quote{
	QuoteText:   "You can't stop the waves, but you can learn to surf.",
	QuoteAuthor: "Jon Kabat-Zinn",
	QuoteLink:   "http://forismatic.com/en/eeb8220c64/",
}

// Equal reports whether all five fields match.
func (q Quote) Equal(other Quote) bool {
	return q == other
}

// Author returns the author or "Unknown" when the endpoint left it blank.
func (q Quote) Author() string {
	if a := strings.TrimSpace(q.QuoteAuthor); a != "" {
		return a
	}
	return "Unknown"
}

// Text returns the quote text without the trailing whitespace forismatic
// tends to append.
func (q Quote) Text() string {
	return strings.TrimSpace(q.QuoteText)
}

// rawQuote mirrors Quote with pointer fields so missing keys can be told
// apart from empty strings.
type rawQuote struct {
	QuoteText   *string `json:"quoteText"`
	QuoteAuthor *string `json:"quoteAuthor"`
	SenderName  *string `json:"senderName"`
	SenderLink  *string `json:"senderLink"`
	QuoteLink   *string `json:"quoteLink"`
}

// UnmarshalJSON decodes a quote object strictly: unknown keys and missing
// keys are both rejected.
func (q *Quote) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var raw rawQuote
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	fields := []struct {
		name string
		val  *string
	}{
		{"quoteText", raw.QuoteText},
		{"quoteAuthor", raw.QuoteAuthor},
		{"senderName", raw.SenderName},
		{"senderLink", raw.SenderLink},
		{"quoteLink", raw.QuoteLink},
	}
	for _, f := range fields {
		if f.val == nil {
			return fmt.Errorf("quote: missing field %q", f.name)
		}
	}

	*q = Quote{
		QuoteText:   *raw.QuoteText,
		QuoteAuthor: *raw.QuoteAuthor,
		SenderName:  *raw.SenderName,
		SenderLink:  *raw.SenderLink,
		QuoteLink:   *raw.QuoteLink,
	}
	return nil
}
