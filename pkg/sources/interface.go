package sources

import (
	"context"

	"github.com/kerbaras/quotes/pkg/data"
)

type Source interface {
	FetchRandomQuote(ctx context.Context) (data.Quote, error)
}
