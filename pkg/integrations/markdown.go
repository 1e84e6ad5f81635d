package integrations

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/kerbaras/quotes/pkg/data"
)

// MarkdownWriter renders a favourites list as a Markdown document.
type MarkdownWriter struct {
	output io.Writer
}

func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

func (w *MarkdownWriter) Write(title string, quotes []data.Quote) error {
	md := markdown.NewMarkdown(w.output)

	md.H1(title)
	md.PlainText("")

	if len(quotes) == 0 {
		md.PlainText("No favourites yet.")
		return md.Build()
	}

	rows := make([][]string, 0, len(quotes))
	for i, q := range quotes {
		rows = append(rows, []string{strconv.Itoa(i + 1), q.Author()})
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Author"},
		Rows:   rows,
	})
	md.PlainText("")

	for i, q := range quotes {
		md.H2(strconv.Itoa(i+1) + ". " + q.Author())
		md.Blockquote(q.Text())
		if q.QuoteLink != "" {
			md.PlainText(markdown.Link("source", q.QuoteLink))
		}
		if q.SenderName != "" {
			md.PlainText("Sent by " + senderText(q))
		}
		md.PlainText("")
	}

	return md.Build()
}

func senderText(q data.Quote) string {
	if q.SenderLink == "" {
		return q.SenderName
	}
	return markdown.Link(q.SenderName, q.SenderLink)
}
