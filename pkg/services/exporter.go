package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/kerbaras/quotes/pkg/data"
	"github.com/kerbaras/quotes/pkg/integrations"
)

// Format names an export target.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatEPUB     Format = "epub"
	FormatJSON     Format = "json"
)

var AllFormats = []Format{FormatMarkdown, FormatEPUB, FormatJSON}

// ParseFormats turns a list like "markdown,epub" into formats.
func ParseFormats(values []string) ([]Format, error) {
	seen := map[Format]bool{}
	var out []Format
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			f := Format(strings.ToLower(strings.TrimSpace(part)))
			if f == "" {
				continue
			}
			if f == "md" {
				f = FormatMarkdown
			}
			switch f {
			case FormatMarkdown, FormatEPUB, FormatJSON:
			default:
				return nil, fmt.Errorf("unknown export format %q", part)
			}
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no export format given")
	}
	return out, nil
}

func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatEPUB:
		return ".epub"
	default:
		return ".json"
	}
}

// Exporter writes the favourites list to files in other formats.
type Exporter struct {
	title  string
	logger *log.Logger
}

func NewExporter(title string, logger *log.Logger) *Exporter {
	return &Exporter{title: title, logger: logger}
}

// ExportAll writes one file per format into dir, concurrently, and returns
// the written paths in the order of formats.
func (e *Exporter) ExportAll(ctx context.Context, list []data.Quote, dir string, formats []Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, e.fileName()+f.Extension())
			if err := e.Export(list, f, path); err != nil {
				return fmt.Errorf("%s export: %w", f, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// Export writes list in format f to path.
func (e *Exporter) Export(list []data.Quote, f Format, path string) error {
	var err error
	switch f {
	case FormatMarkdown:
		err = e.writeMarkdown(list, path)
	case FormatEPUB:
		err = integrations.NewEPubBuilder(filepath.Dir(path)).CreateEPub(e.title, list, path)
	case FormatJSON:
		err = e.writeJSON(list, path)
	default:
		err = fmt.Errorf("unknown export format %q", f)
	}
	if err != nil {
		return err
	}
	e.logger.Info("exported favourites", "format", string(f), "path", path, "count", len(list))
	return nil
}

func (e *Exporter) fileName() string {
	if name := integrations.SanitizeFilename(e.title); name != "" {
		return name
	}
	return "favourites"
}

func (e *Exporter) writeJSON(list []data.Quote, path string) error {
	return data.NewFileStore(path).Save(list)
}

func (e *Exporter) writeMarkdown(list []data.Quote, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := integrations.NewMarkdownWriter(f).Write(e.title, list); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
