package sources

import (
	"time"

	"github.com/veridata/factcrawl/browser"
	"github.com/veridata/factcrawl/models"
)

// Poynter scrapes poynter.org fact-check articles. Poynter has no crawlable
// listing; article URLs come from a pre-built id,url CSV (see csvfeed), so
// the crawler drives this source with RunURLs.
type Poynter struct{}

func NewPoynter() *Poynter { return &Poynter{} }

func (po *Poynter) Name() models.SourceName { return models.SourcePoynter }
func (po *Poynter) OutputName() string      { return "poynter-factcheck" }

// ListingURL returns "": Poynter is feed-driven.
func (po *Poynter) ListingURL(page int) string { return "" }

func (po *Poynter) ArticleURLs(p browser.Page) ([]string, error) {
	return nil, extractionErr("poynter has no listing pages; drive it from a URL feed", nil)
}

func (po *Poynter) Extract(p browser.Page, url string) ([]models.ArticleRecord, error) {
	title, err := firstText(p, "h1.article-header__headline.headline_1")
	if err != nil {
		return nil, extractionErr("no headline element found", err)
	}

	rawDate, err := firstText(p, "div.poynter-blog-date")
	if err != nil {
		return nil, extractionErr("no date element found", err)
	}
	publishDate, err := normalizeDate(rawDate)
	if err != nil {
		return nil, err
	}

	blocks, err := browser.AllText(p, "div.poynter-post-content p")
	if err != nil {
		return nil, extractionErr("no content found", err)
	}

	return []models.ArticleRecord{{
		Title:       title,
		Content:     joinBlocks(blocks),
		PublishDate: publishDate,
		URL:         url,
		Source:      models.SourcePoynter,
		Type:        models.TypeFactCheckNoVerdict,
		Claim:       title,
		Authors:     extractAuthorTexts(p, "div.poynter-blog-author.author-info-content__name > a"),
	}}, nil
}

func (po *Poynter) ArticleDelay() time.Duration { return 500 * time.Millisecond }

func (po *Poynter) Defaults() CrawlDefaults {
	return CrawlDefaults{StartPage: 1, RestartInterval: 15, LogClearInterval: 15}
}
