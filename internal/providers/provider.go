package providers

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/preston-bernstein/superliga-data-service/internal/domain/news"
)

// FootballProvider runs an apifootball-style action and returns the normalized record list.
// Records stay as raw JSON so callers can decode into the shape they need or pass them through untouched.
type FootballProvider interface {
	Fetch(ctx context.Context, action string, params url.Values) ([]json.RawMessage, error)
}

// NewsProvider fetches the latest football news.
type NewsProvider interface {
	FetchNews(ctx context.Context) (news.Response, error)
}

// Closer is implemented by wrappers holding background resources (tickers).
type Closer interface {
	Close()
}
