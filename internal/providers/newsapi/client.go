package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/superliga-data-service/internal/domain/news"
	"github.com/preston-bernstein/superliga-data-service/internal/providers"
)

const (
	providerName       = "newsapi"
	defaultBaseURL     = "https://newsapi.org/v2"
	defaultQuery       = "SuperLiga"
	defaultLanguage    = "ro"
	defaultPageSize    = 20
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 8 << 20
)

// Config controls the article search sent to newsapi.org.
type Config struct {
	BaseURL    string
	APIKey     string
	Query      string
	Language   string
	PageSize   int
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client searches newsapi.org for recent SuperLiga coverage.
type Client struct {
	baseURL    string
	apiKey     string
	query      string
	language   string
	pageSize   int
	httpClient httpDoer
}

// NewClient constructs a news client, filling unset search fields with defaults.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:   strings.TrimSpace(cfg.APIKey),
		query:    cfg.Query,
		language: cfg.Language,
		pageSize: cfg.PageSize,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.query == "" {
		c.query = defaultQuery
	}
	if c.language == "" {
		c.language = defaultLanguage
	}
	if c.pageSize <= 0 {
		c.pageSize = defaultPageSize
	}
	if cfg.HTTPClient != nil {
		c.httpClient = cfg.HTTPClient
	} else {
		c.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return c
}

// FetchNews returns the newest articles, most recent first.
func (c *Client) FetchNews(ctx context.Context) (news.Response, error) {
	if c.apiKey == "" {
		return news.Response{}, providers.ErrNewsAPIKeyMissing
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(), nil)
	if err != nil {
		return news.Response{}, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return news.Response{}, fmt.Errorf("newsapi: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return news.Response{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    "NewsAPI responded with status: " + strconv.Itoa(resp.StatusCode),
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var out news.Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return news.Response{}, fmt.Errorf("newsapi: decode response: %w", err)
	}
	if out.Status == "error" {
		return news.Response{}, &providers.APIError{Provider: providerName, Message: out.Message, Detail: out.Code}
	}
	if out.Articles == nil {
		out.Articles = []news.Article{}
	}
	return out, nil
}

func (c *Client) searchURL() string {
	q := url.Values{}
	q.Set("q", c.query)
	q.Set("language", c.language)
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	return c.baseURL + "/everything?" + q.Encode()
}
