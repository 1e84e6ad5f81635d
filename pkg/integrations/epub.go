package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"

	"github.com/kerbaras/quotes/pkg/data"
)

type EPubBuilder struct {
	workDir string
	cover   *CoverRenderer
}

// NewEPubBuilder returns a builder that keeps intermediate files (the cover
// image) under workDir.
func NewEPubBuilder(workDir string) *EPubBuilder {
	return &EPubBuilder{workDir: workDir, cover: NewCoverRenderer()}
}

// CreateEPub compiles quotes into a single EPUB at outputPath: a cover page
// followed by one section per quote, in list order.
func (p *EPubBuilder) CreateEPub(title string, quotes []data.Quote, outputPath string) error {
	if len(quotes) == 0 {
		return fmt.Errorf("no quotes to compile")
	}

	if err := os.MkdirAll(p.workDir, 0755); err != nil {
		return fmt.Errorf("failed to create work directory: %w", err)
	}

	e, err := epub.NewEpub(title)
	if err != nil {
		return fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor("Various")
	e.SetDescription(fmt.Sprintf("%d favourite quotes", len(quotes)))
	e.SetLang("en")

	// go-epub reads the cover from disk in Write, so it has to outlive it
	coverPath, err := p.addCover(e, title, len(quotes))
	if err != nil {
		return err
	}
	defer os.Remove(coverPath)

	for i, q := range quotes {
		sectionTitle := fmt.Sprintf("%d. %s", i+1, q.Author())
		if _, err := e.AddSection(quoteHTML(q), sectionTitle, "", ""); err != nil {
			return fmt.Errorf("failed to add section %d: %w", i+1, err)
		}
	}

	if err := e.Write(outputPath); err != nil {
		return fmt.Errorf("failed to write EPub: %w", err)
	}
	return nil
}

// addCover writes the rendered cover to a temp file in the work dir and
// returns its path. The caller removes it once the book is written.
func (p *EPubBuilder) addCover(e *epub.Epub, title string, count int) (string, error) {
	img, err := p.cover.RenderPNG(title, fmt.Sprintf("%d favourite quotes", count))
	if err != nil {
		return "", err
	}

	coverFile, err := os.CreateTemp(p.workDir, ".cover-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create cover file: %w", err)
	}
	coverPath := coverFile.Name()

	if _, err := coverFile.Write(img); err != nil {
		coverFile.Close()
		os.Remove(coverPath)
		return "", fmt.Errorf("failed to write cover: %w", err)
	}
	if err := coverFile.Close(); err != nil {
		os.Remove(coverPath)
		return "", err
	}

	internalPath, err := e.AddImage(coverPath, "cover"+filepath.Ext(coverPath))
	if err != nil {
		os.Remove(coverPath)
		return "", fmt.Errorf("failed to add cover image: %w", err)
	}

	body := fmt.Sprintf(`<div class="cover"><img src="%s" alt="%s" style="width:100%%;height:auto;"/></div>`,
		internalPath, html.EscapeString(title))
	if _, err := e.AddSection(body, "Cover", "", ""); err != nil {
		os.Remove(coverPath)
		return "", fmt.Errorf("failed to add cover section: %w", err)
	}
	return coverPath, nil
}

func quoteHTML(q data.Quote) string {
	var b strings.Builder
	b.WriteString("<blockquote>\n")
	b.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(q.Text())))
	b.WriteString(fmt.Sprintf("<footer>%s</footer>\n", html.EscapeString(q.Author())))
	b.WriteString("</blockquote>\n")
	if q.QuoteLink != "" {
		b.WriteString(fmt.Sprintf(`<p><a href="%s">source</a></p>`, html.EscapeString(q.QuoteLink)))
	}
	return b.String()
}

// SanitizeFilename removes characters that are invalid in filenames.
func SanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	return result
}
