package sources

import (
	"fmt"
	"time"

	"github.com/veridata/factcrawl/browser"
	"github.com/veridata/factcrawl/models"
)

// RapplerUnified walks the whole Philippines section, which interleaves
// every category. Fact-check links are skipped (the dedicated fact-check
// variant owns those) and records default to plain news; the crawler's
// categorizer refines the topic.
type RapplerUnified struct {
	rapplerArticle
}

func NewRapplerUnified() *RapplerUnified { return &RapplerUnified{} }

func (r *RapplerUnified) Name() models.SourceName { return models.SourceRappler }
func (r *RapplerUnified) OutputName() string      { return "rappler-unified" }

func (r *RapplerUnified) ListingURL(page int) string {
	return fmt.Sprintf("%s/philippines/page/%d/", rapplerOrigin, page)
}

// ArticleURLs reads the second top-stories block (the first is a pinned
// carousel) and drops fact-check links.
func (r *RapplerUnified) ArticleURLs(p browser.Page) ([]string, error) {
	blocks, err := p.Elements("div.top-stories")
	if err != nil {
		return nil, err
	}
	if len(blocks) < 2 {
		return nil, nil
	}

	links, err := blocks[1].Elements("h3.post-card__title > a")
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, link := range links {
		href, err := link.Attr("href")
		if err != nil || href == "" {
			continue
		}
		if isFactCheckURL(href) {
			continue
		}
		urls = append(urls, resolveURL(rapplerOrigin, href))
	}
	return urls, nil
}

func (r *RapplerUnified) Extract(p browser.Page, url string) ([]models.ArticleRecord, error) {
	title, err := r.extractTitle(p)
	if err != nil {
		return nil, err
	}
	publishDate, err := r.extractPublishDate(p)
	if err != nil {
		return nil, err
	}
	content, err := r.extractContent(p)
	if err != nil {
		return nil, err
	}

	return []models.ArticleRecord{{
		Title:       title,
		Content:     content,
		PublishDate: publishDate,
		URL:         url,
		Source:      models.SourceRappler,
		Type:        models.TypeNews,
		Authors:     r.extractAuthors(p),
	}}, nil
}

func (r *RapplerUnified) ArticleDelay() time.Duration { return 500 * time.Millisecond }

func (r *RapplerUnified) Defaults() CrawlDefaults {
	return CrawlDefaults{StartPage: 6572, EndPage: 9100, RestartInterval: 50, LogClearInterval: 5}
}
