package sources

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kerbaras/quotes/pkg/data"
	"github.com/kerbaras/quotes/pkg/utils"
)

// DefaultEndpoint is the forismatic quote-of-the-moment API.
const DefaultEndpoint = "https://api.forismatic.com/api/1.0/?method=getQuote&key=457653&format=json&lang=en"

// Forismatic fetches random quotes from a single fixed URL.
type Forismatic struct {
	api    *utils.API
	params url.Values
}

func NewForismatic(endpoint string, opts ...utils.Option) (*Forismatic, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme and host are required", endpoint)
	}

	var params url.Values
	if u.RawQuery != "" {
		params = u.Query()
	}
	u.RawQuery = ""

	return &Forismatic{
		api:    utils.NewAPI(u.String(), opts...),
		params: params,
	}, nil
}

// FetchRandomQuote issues one GET and decodes the body as a Quote. There is
// no retry; the caller decides what to do with a failure.
func (f *Forismatic) FetchRandomQuote(ctx context.Context) (data.Quote, error) {
	var q data.Quote
	if err := f.api.Get(ctx, "", f.params, &q); err != nil {
		return data.Quote{}, err
	}
	return q, nil
}
