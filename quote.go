package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNoQuote is returned when a quote response holds no usable price.
var ErrNoQuote = errors.New("no quote")

// QuoteOptions configures a QuoteSource.
type QuoteOptions struct {
	URL      string        // URL template, "{symbol}" is replaced by the escaped symbol
	Path     string        // JSONPath of the last price in the response, e.g. "$.last"
	TTL      time.Duration // responses are reused within this window, 0 disables the cache
	Retries  int           // extra attempts after a failed request
	CacheDir string        // defaults to os.TempDir()
}

// QuoteSource fetches latest prices from a JSON HTTP API.
type QuoteSource struct {
	opts   QuoteOptions
	client *http.Client
	logger *zap.Logger
}

// NewQuoteSource returns a QuoteSource. A nil logger discards logs.
func NewQuoteSource(opts QuoteOptions, logger *zap.Logger) (*QuoteSource, error) {
	if !strings.Contains(opts.URL, "{symbol}") {
		return nil, fmt.Errorf("quote url %q has no {symbol} placeholder", opts.URL)
	}
	if opts.Path == "" {
		return nil, errors.New("quote path is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.CacheDir == "" {
		opts.CacheDir = os.TempDir()
	}
	client := new(http.Client)
	if opts.TTL > 0 {
		client.Transport = &diskCache{
			base:   http.DefaultTransport,
			dir:    opts.CacheDir,
			ttl:    opts.TTL,
			now:    time.Now,
			logger: logger,
		}
	}
	return &QuoteSource{opts: opts, client: client, logger: logger}, nil
}

// Last returns the latest price of symbol.
func (q *QuoteSource) Last(ctx context.Context, symbol string) (decimal.Decimal, error) {
	addr := strings.ReplaceAll(q.opts.URL, "{symbol}", url.PathEscape(symbol))
	var err error
	for attempt := 0; attempt <= q.opts.Retries; attempt++ {
		var price decimal.Decimal
		if price, err = q.fetch(ctx, addr); err == nil {
			return price, nil
		}
		if ctx.Err() != nil || errors.Is(err, ErrNoQuote) {
			break
		}
		q.logger.Warn("quote request failed", zap.String("symbol", symbol), zap.Int("attempt", attempt+1), zap.Error(err))
	}
	return decimal.Zero, fmt.Errorf("quote %q: %w", symbol, err)
}

func (q *QuoteSource) fetch(ctx context.Context, addr string) (decimal.Decimal, error) {
	var jobj any
	if err := jwget(ctx, q.client, addr, &jobj); err != nil {
		return decimal.Zero, err
	}
	jval, err := jsonpath.Get(q.opts.Path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: path %q: %w", ErrNoQuote, q.opts.Path, err)
	}
	// jsonpath may return a list of one answer, keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	var price decimal.Decimal
	switch v := jval.(type) {
	case float64:
		price = decimal.NewFromFloat(v)
	case string:
		// some APIs return the value as a string, with a decimal comma
		s := strings.ReplaceAll(strings.ReplaceAll(v, ",", "."), " ", "")
		if price, err = decimal.NewFromString(s); err != nil {
			return decimal.Zero, fmt.Errorf("%w: invalid price string %q", ErrNoQuote, v)
		}
	default:
		return decimal.Zero, fmt.Errorf("%w: %v is not a number", ErrNoQuote, jval)
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: price %v", ErrNoQuote, price)
	}
	return price, nil
}

// UpdateLast returns a copy of positions with their last price refreshed.
// A position whose quote fails keeps its previous last price, and the
// failures are returned joined.
func (q *QuoteSource) UpdateLast(ctx context.Context, positions []Position) ([]Position, error) {
	updated := make([]Position, len(positions))
	var errs []error
	for i, p := range positions {
		updated[i] = p
		price, err := q.Last(ctx, p.Symbol)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		updated[i].Last = M(price, p.AvgPrice.Currency())
	}
	return updated, errors.Join(errs...)
}
