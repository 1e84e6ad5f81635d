package integrations

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/quotes/pkg/data"
)

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	quotes := append([]data.Quote{}, testQuotes...)
	quotes = append(quotes, data.Quote{
		QuoteText:   "Stay hungry.",
		QuoteAuthor: "Stewart Brand",
		SenderName:  "reader",
		SenderLink:  "http://example.com/reader",
	})

	require.NoError(t, NewMarkdownWriter(&buf).Write("Favourite Quotes", quotes))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Favourite Quotes"))
	assert.Contains(t, out, "## 1. Virgil")
	assert.Contains(t, out, "> Fortune favours the bold.")
	assert.Contains(t, out, "[source](http://forismatic.com/en/v/)")
	assert.Contains(t, out, "## 2. Unknown")
	assert.Contains(t, out, "[reader](http://example.com/reader)")
}

func TestMarkdownWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownWriter(&buf).Write("Favourite Quotes", nil))
	assert.Contains(t, buf.String(), "No favourites yet.")
}
