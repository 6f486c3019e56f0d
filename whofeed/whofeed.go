// Package whofeed pulls the WHO newsroom item feed from its OData-style JSON
// API and materializes the article URL list the feed-driven crawl consumes.
package whofeed

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAPIBase = "https://www.who.int/api/hubs/newsitems"
	articleBase    = "https://www.who.int/news/item/"

	// Sitefinity site GUID and provider the newsroom hub serves its items
	// under. Without sf_provider and $format=json the endpoint falls back to
	// a different representation.
	sitefinitySite     = "15210d59-ad60-47ff-a542-7ed76645f0c7"
	sitefinityProvider = "OpenAccessDataProvider"

	defaultPageSize   = 100
	defaultMaxRetries = 3
	defaultRetryDelay = 5 * time.Second
)

// Item is one newsroom entry as the API serves it, reduced to the fields the
// $select projection asks for. Field names follow the API's PascalCase JSON.
type Item struct {
	ItemDefaultURL string `json:"ItemDefaultUrl"`
	FormatedDate   string `json:"FormatedDate"`
}

type feedPage struct {
	Value []Item `json:"value"`
}

// Client paginates the WHO news API. The zero value is not usable; construct
// with NewClient.
type Client struct {
	apiBase    string
	pageSize   int
	maxRetries int
	retryDelay time.Duration
	http       *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithAPIBase overrides the feed endpoint; tests point it at a local server.
func WithAPIBase(base string) Option { return func(c *Client) { c.apiBase = base } }

// WithRetry overrides the per-page retry policy.
func WithRetry(maxRetries int, delay time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.retryDelay = delay
	}
}

// WithProxy routes requests through the given proxy URL.
func WithProxy(proxy string) Option {
	return func(c *Client) { c.http = &http.Client{Transport: newTransport(proxy)} }
}

// NewClient creates a feed client with the Chrome-fingerprint transport.
func NewClient(opts ...Option) *Client {
	c := &Client{
		apiBase:    defaultAPIBase,
		pageSize:   defaultPageSize,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		http:       &http.Client{Transport: newTransport("")},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Items walks the feed from newest to oldest, $top/$skip page by page, until
// the API returns an empty page.
func (c *Client) Items(ctx context.Context) ([]Item, error) {
	var all []Item
	for skip := 0; ; skip += c.pageSize {
		page, err := c.fetchPage(ctx, skip)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		slog.Info("fetched feed page", "skip", skip, "items", len(page), "total", len(all))
	}
	return all, nil
}

// fetchPage retrieves one $skip window with flat retry.
func (c *Client) fetchPage(ctx context.Context, skip int) ([]Item, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		page, err := c.fetchOnce(ctx, skip)
		if err == nil {
			return page, nil
		}
		lastErr = err
		slog.Warn("feed page fetch failed",
			"skip", skip, "attempt", attempt, "maxRetries", c.maxRetries, "error", err)
		if attempt < c.maxRetries {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("whofeed: page at skip=%d failed after %d attempts: %w", skip, c.maxRetries, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, skip int) ([]Item, error) {
	q := url.Values{
		"sf_site":     {sitefinitySite},
		"sf_provider": {sitefinityProvider},
		"sf_culture":  {"en"},
		"$orderby":    {"PublicationDateAndTime desc"},
		"$select":     {"ItemDefaultUrl,FormatedDate"},
		"$format":     {"json"},
		"$top":        {strconv.Itoa(c.pageSize)},
		"$skip":       {strconv.Itoa(skip)},
	}
	reqURL := c.apiBase + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("whofeed: build request: %w", err)
	}
	req.Header.Set("User-Agent", chromeUA)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("whofeed: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("whofeed: HTTP %d for %s", resp.StatusCode, reqURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("whofeed: read body: %w", err)
	}

	var page feedPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("whofeed: decode feed page: %w", err)
	}
	return page.Value, nil
}

// ArticleURL resolves an item's slug onto the newsroom article base. Items
// already carrying an absolute URL pass through untouched.
func ArticleURL(item Item) string {
	u := item.ItemDefaultURL
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return articleBase + strings.TrimPrefix(u, "/")
}

// WriteCSV persists the id,url list the feed-driven crawl resumes from.
func WriteCSV(path string, items []Item) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("whofeed: create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("whofeed: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "url"}); err != nil {
		return fmt.Errorf("whofeed: write %s: %w", path, err)
	}
	// ids are 1-based; the crawl resumes from the last processed id.
	for i, item := range items {
		if err := w.Write([]string{strconv.Itoa(i + 1), ArticleURL(item)}); err != nil {
			return fmt.Errorf("whofeed: write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("whofeed: flush %s: %w", path, err)
	}
	return nil
}
