package sources

import (
	"fmt"
	"time"

	"github.com/veridata/factcrawl/browser"
	"github.com/veridata/factcrawl/models"
)

// RapplerElections scrapes Rappler's elections section: plain news articles,
// no claim/verdict.
type RapplerElections struct {
	rapplerArticle
}

func NewRapplerElections() *RapplerElections { return &RapplerElections{} }

func (r *RapplerElections) Name() models.SourceName { return models.SourceRappler }
func (r *RapplerElections) OutputName() string      { return "rappler-elections" }

func (r *RapplerElections) ListingURL(page int) string {
	return fmt.Sprintf("%s/philippines/elections/page/%d/", rapplerOrigin, page)
}

func (r *RapplerElections) ArticleURLs(p browser.Page) ([]string, error) {
	return hrefs(p, "h3.post-card__title > a", rapplerOrigin)
}

func (r *RapplerElections) Extract(p browser.Page, url string) ([]models.ArticleRecord, error) {
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
		Type:        models.TypeElections,
		Authors:     r.extractAuthors(p),
	}}, nil
}

func (r *RapplerElections) ArticleDelay() time.Duration { return time.Second }

func (r *RapplerElections) Defaults() CrawlDefaults {
	return CrawlDefaults{StartPage: 1, RestartInterval: 50, LogClearInterval: 5}
}
