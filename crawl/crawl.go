// Package crawl drives one source through one browser session: paginate the
// listing, visit every article, persist records, and route failed URLs to the
// retry log. Periodic session restarts and log clears keep long runs healthy.
package crawl

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/veridata/factcrawl/browser"
	"github.com/veridata/factcrawl/category"
	"github.com/veridata/factcrawl/models"
	"github.com/veridata/factcrawl/sources"
	"github.com/veridata/factcrawl/store"
)

// Navigator is the slice of the session lifecycle the crawl loop needs.
// *session.Session satisfies it.
type Navigator interface {
	Navigate(ctx context.Context, url string) bool
	Restart(ctx context.Context) error
	ClearLogsAndGC()
	Quit()
	Page() browser.Page
}

// Options tune one crawl invocation. Zero values defer to the source's
// defaults; a nil Categorizer leaves records uncategorized.
type Options struct {
	StartPage   int
	EndPage     int
	Categorizer *category.Categorizer
}

// Crawler walks one source with one session. It owns the session for the
// duration of Run and quits it on the way out.
type Crawler struct {
	session     Navigator
	source      sources.Source
	output      *store.Store[models.ArticleRecord]
	retries     *store.Store[models.RetryEntry]
	categorizer *category.Categorizer

	startPage int
	endPage   int
	defaults  sources.CrawlDefaults
}

// New assembles a crawler around an already-constructed (not necessarily
// started) session.
func New(sess Navigator, src sources.Source, output *store.Store[models.ArticleRecord], retries *store.Store[models.RetryEntry], opts Options) *Crawler {
	defaults := src.Defaults()

	start := opts.StartPage
	if start <= 0 {
		start = defaults.StartPage
	}
	end := opts.EndPage
	if end <= 0 {
		end = defaults.EndPage
	}

	return &Crawler{
		session:     sess,
		source:      src,
		output:      output,
		retries:     retries,
		categorizer: opts.Categorizer,
		startPage:   start,
		endPage:     end,
		defaults:    defaults,
	}
}

// Run paginates the source's listing until a page yields no article URLs, the
// configured end page is passed, or the context is cancelled. A listing page
// that cannot be reached at all aborts the run with LISTING_UNREACHABLE: that
// is a site or network condition, not normal exhaustion.
func (c *Crawler) Run(ctx context.Context) error {
	defer c.session.Quit()

	if c.source.ListingURL(c.startPage) == "" {
		return models.NewCrawlError(models.ErrCodeInvalidInput,
			fmt.Sprintf("source %s has no listing; drive it with RunURLs", c.source.OutputName()), nil)
	}

	limiter := rate.NewLimiter(rate.Every(c.source.ArticleDelay()), 1)

	for page := c.startPage; c.endPage == 0 || page <= c.endPage; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.pageHousekeeping(ctx, page); err != nil {
			return err
		}

		listingURL := c.source.ListingURL(page)
		if !c.session.Navigate(ctx, listingURL) {
			return models.NewCrawlError(models.ErrCodeListingUnreachable,
				fmt.Sprintf("listing page %d unreachable: %s", page, listingURL), nil)
		}

		urls, err := c.source.ArticleURLs(c.session.Page())
		if err != nil {
			return models.NewCrawlError(models.ErrCodeListingUnreachable,
				fmt.Sprintf("failed to read listing page %d", page), err)
		}
		if len(urls) == 0 {
			slog.Info("listing exhausted", "source", c.source.OutputName(), "page", page)
			return nil
		}

		slog.Info("crawling listing page",
			"source", c.source.OutputName(), "page", page, "articles", len(urls))

		for _, url := range urls {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			c.crawlArticle(ctx, url)
		}
	}

	slog.Info("reached end page", "source", c.source.OutputName(), "endPage", c.endPage)
	return nil
}

// RunURLs crawls an explicit URL list instead of a paginated listing; the
// feed-driven sources use it. urls holds the entries still to process and
// startIndex is the absolute feed id of the first one, so a resumed run keeps
// its restart points aligned with the run it continues.
func (c *Crawler) RunURLs(ctx context.Context, urls []string, startIndex int) error {
	defer c.session.Quit()

	if startIndex < 0 {
		startIndex = 0
	}
	limiter := rate.NewLimiter(rate.Every(c.source.ArticleDelay()), 1)

	for i, u := range urls {
		index := startIndex + i
		if err := ctx.Err(); err != nil {
			return err
		}
		// The housekeeping cadence counts absolute feed ids, not pages.
		if err := c.itemHousekeeping(ctx, index, startIndex); err != nil {
			return err
		}
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		slog.Info("crawling feed entry",
			"source", c.source.OutputName(), "index", index, "remaining", len(urls)-i)
		c.crawlArticle(ctx, u)
	}
	return nil
}

// crawlArticle navigates, extracts, categorizes, and persists one article.
// Every failure is terminal for the URL only: it is recorded in the retry log
// and the crawl moves on.
func (c *Crawler) crawlArticle(ctx context.Context, url string) {
	if !c.session.Navigate(ctx, url) {
		c.recordRetry(url, "failed to navigate")
		return
	}

	records, err := c.source.Extract(c.session.Page(), url)
	if err != nil {
		slog.Warn("extraction failed", "url", url, "error", err)
		c.recordRetry(url, err.Error())
		return
	}

	for _, rec := range records {
		if c.categorizer != nil {
			rec.Category = string(c.categorizer.Categorize(rec.Title, rec.Content, rec.URL))
		}
		if err := c.output.Append(rec); err != nil {
			slog.Error("failed to persist record", "url", url, "error", err)
		}
	}
	slog.Debug("article crawled", "url", url, "records", len(records))
}

func (c *Crawler) recordRetry(url, reason string) {
	if err := c.retries.Append(models.RetryEntry{URL: url, Reason: reason}); err != nil {
		slog.Error("failed to persist retry entry", "url", url, "error", err)
	}
}

// pageHousekeeping restarts the session and clears logs on the configured
// page cadence. The start page never triggers either step.
func (c *Crawler) pageHousekeeping(ctx context.Context, page int) error {
	if page == c.startPage {
		return nil
	}
	if interval := c.defaults.RestartInterval; interval > 0 && page%interval == 0 {
		slog.Info("restarting browser session", "page", page)
		if err := c.session.Restart(ctx); err != nil {
			return models.NewCrawlError(models.ErrCodeSession,
				fmt.Sprintf("session restart before page %d failed", page), err)
		}
	}
	if interval := c.defaults.LogClearInterval; interval > 0 && page%interval == 0 {
		c.session.ClearLogsAndGC()
	}
	return nil
}

// itemHousekeeping is the URL-list counterpart of pageHousekeeping, keyed on
// the absolute feed index. The invocation's first index never triggers.
func (c *Crawler) itemHousekeeping(ctx context.Context, index, startIndex int) error {
	if index == startIndex {
		return nil
	}
	if interval := c.defaults.RestartInterval; interval > 0 && index%interval == 0 {
		slog.Info("restarting browser session", "index", index)
		if err := c.session.Restart(ctx); err != nil {
			return models.NewCrawlError(models.ErrCodeSession, "session restart failed", err)
		}
	}
	if interval := c.defaults.LogClearInterval; interval > 0 && index%interval == 0 {
		c.session.ClearLogsAndGC()
	}
	return nil
}
