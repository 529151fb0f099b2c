package wikipedia

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/wonny/oiscan/pkg/httputil"
	"github.com/wonny/oiscan/pkg/logger"
)

// DefaultURL is the NIFTY 50 article
const DefaultURL = "https://en.wikipedia.org/wiki/NIFTY_50"

// DefaultLimit is the number of constituents taken from the table
const DefaultLimit = 10

// FetchError is a failed scrape; Stage is one of request, status, read, parse
type FetchError struct {
	Stage string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("wikipedia %s: %v", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client scrapes index constituents from Wikipedia
// ⭐ SSOT: Wikipedia 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	url        string
	limit      int
}

// NewClient creates a new Wikipedia client
func NewClient(httpClient *httputil.Client, log *logger.Logger, url string, limit int) *Client {
	if url == "" {
		url = DefaultURL
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Client{
		httpClient: httpClient,
		logger:     log,
		url:        url,
		limit:      limit,
	}
}

// Symbols implements contracts.SymbolSource
func (c *Client) Symbols(ctx context.Context) ([]string, error) {
	return c.FetchNifty50(ctx, c.limit)
}

// FetchNifty50 returns up to limit cleaned constituent symbols
func (c *Client) FetchNifty50(ctx context.Context, limit int) ([]string, error) {
	html, err := c.fetchHTML(ctx)
	if err != nil {
		return nil, err
	}

	symbols, err := parseConstituents(html, limit)
	if err != nil {
		return nil, &FetchError{Stage: "parse", Err: err}
	}

	c.logger.WithFields(map[string]interface{}{
		"url":   c.url,
		"count": len(symbols),
	}).Info("Scraped NIFTY 50 symbols")

	return symbols, nil
}

// fetchHTML fetches the article body
func (c *Client) fetchHTML(ctx context.Context) (string, error) {
	resp, err := c.httpClient.Get(ctx, c.url)
	if err != nil {
		return "", &FetchError{Stage: "request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{Stage: "status", Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{Stage: "read", Err: err}
	}

	return string(body), nil
}
