// Package sources holds the per-website extraction variants. Each variant
// knows its listing layout and article selectors; the crawl loop stays
// generic over the Source interface and never sees a concrete site.
package sources

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/veridata/factcrawl/browser"
	"github.com/veridata/factcrawl/models"
)

// Source is the per-website field-extraction contract. All methods operate on
// a page the crawler has already navigated for them.
type Source interface {
	// Name is the value persisted in ArticleRecord.Source.
	Name() models.SourceName

	// OutputName is the file stem for the output and retry JSON files.
	OutputName() string

	// ListingURL returns the listing page URL for the given page number, or
	// "" for feed-driven sources (driven by a URL list instead).
	ListingURL(page int) string

	// ArticleURLs extracts absolute article URLs from the current listing
	// page. An empty result is the crawl-termination signal.
	ArticleURLs(p browser.Page) ([]string, error)

	// Extract produces zero or more records from the article page currently
	// navigated to url. Any required field failing aborts the whole URL:
	// partial records are never returned.
	Extract(p browser.Page, url string) ([]models.ArticleRecord, error)

	// ArticleDelay is the courtesy pause between article fetches.
	ArticleDelay() time.Duration

	// Defaults are the crawl-loop parameters tuned for this site.
	Defaults() CrawlDefaults
}

// CrawlDefaults carries the pagination and housekeeping cadence a source was
// tuned with. A zero interval disables that housekeeping step.
type CrawlDefaults struct {
	StartPage        int
	EndPage          int // 0 = unbounded
	RestartInterval  int // pages between session restarts
	LogClearInterval int // pages between log-clear + GC hints
}

// ByName returns the variant registered under name.
func ByName(name string) (Source, error) {
	switch name {
	case "factcheckorg":
		return NewFactcheckOrg(), nil
	case "fullfact":
		return NewFullFact(), nil
	case "politifact":
		return NewPolitifact(), nil
	case "poynter":
		return NewPoynter(), nil
	case "rappler-factcheck":
		return NewRapplerFactcheck(), nil
	case "rappler-elections":
		return NewRapplerElections(), nil
	case "rappler-unified":
		return NewRapplerUnified(), nil
	}
	return nil, models.NewCrawlError(models.ErrCodeInvalidInput,
		fmt.Sprintf("unknown source %q (known: %s)", name, strings.Join(Names(), ", ")), nil)
}

// Names lists the registered source names.
func Names() []string {
	return []string{
		"factcheckorg", "fullfact", "politifact", "poynter",
		"rappler-factcheck", "rappler-elections", "rappler-unified",
	}
}

// resolveURL resolves a root-relative href against the source origin.
// Resolving an already-absolute URL is a no-op, so the operation is
// idempotent and never double-prefixes.
func resolveURL(origin, href string) string {
	if strings.HasPrefix(href, "/") {
		return origin + href
	}
	return href
}

// hrefs collects the href of every element matching sel, resolved against
// origin. Elements without an href are skipped.
func hrefs(p browser.Page, sel, origin string) ([]string, error) {
	els, err := p.Elements(sel)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(els))
	for _, el := range els {
		href, err := el.Attr("href")
		if err != nil || href == "" {
			continue
		}
		urls = append(urls, resolveURL(origin, href))
	}
	return urls, nil
}

// firstText returns the trimmed text of the first element matching sel.
func firstText(p browser.Page, sel string) (string, error) {
	el, err := p.Element(sel)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// firstAttr returns the named attribute of the first element matching sel.
func firstAttr(p browser.Page, sel, name string) (string, error) {
	el, err := p.Element(sel)
	if err != nil {
		return "", err
	}
	return el.Attr(name)
}

// joinBlocks joins non-empty text blocks with a blank-line separator.
func joinBlocks(blocks []string) string {
	return strings.Join(blocks, "\n\n")
}

// normalizeDate parses a source-specific date representation and returns it
// as an RFC 3339 string. Every variant funnels its dates through here so the
// persisted publish_date is uniformly ISO-8601.
func normalizeDate(raw string) (string, error) {
	t, err := dateparse.ParseAny(strings.TrimSpace(raw))
	if err != nil {
		return "", models.NewCrawlError(models.ErrCodeExtraction,
			fmt.Sprintf("unparseable publish date %q", raw), err)
	}
	return t.Format(time.RFC3339), nil
}

// labelledText scans labels in priority order and, for each, the candidate
// selectors in order, returning the first matching element's text with the
// label prefix stripped and trimmed.
func labelledText(p browser.Page, sels, labels []string) (string, bool) {
	for _, label := range labels {
		for _, sel := range sels {
			el, ok := browser.FindWithText(p, sel, label)
			if !ok {
				continue
			}
			text, err := el.Text()
			if err != nil {
				continue
			}
			return stripLabel(text, label), true
		}
	}
	return "", false
}

func stripLabel(text, label string) string {
	t := strings.TrimSpace(text)
	if i := strings.Index(t, label); i >= 0 {
		t = t[i+len(label):]
	}
	return strings.TrimSpace(t)
}

func extractionErr(detail string, err error) error {
	return models.NewCrawlError(models.ErrCodeExtraction, detail, err)
}
