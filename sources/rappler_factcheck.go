package sources

import (
	"fmt"
	"time"

	"github.com/veridata/factcrawl/browser"
	"github.com/veridata/factcrawl/models"
)

// RapplerFactcheck scrapes Rappler's fact-check archive. Each article carries
// one labelled claim and one labelled rating; both are required.
type RapplerFactcheck struct {
	rapplerArticle
}

func NewRapplerFactcheck() *RapplerFactcheck { return &RapplerFactcheck{} }

func (r *RapplerFactcheck) Name() models.SourceName { return models.SourceRappler }
func (r *RapplerFactcheck) OutputName() string      { return "rappler-factcheck" }

func (r *RapplerFactcheck) ListingURL(page int) string {
	return fmt.Sprintf("%s/newsbreak/fact-check/page/%d", rapplerOrigin, page)
}

func (r *RapplerFactcheck) ArticleURLs(p browser.Page) ([]string, error) {
	return hrefs(p, "div.archive-article__content > h2 > a", rapplerOrigin)
}

func (r *RapplerFactcheck) Extract(p browser.Page, url string) ([]models.ArticleRecord, error) {
	title, err := r.extractTitle(p)
	if err != nil {
		return nil, err
	}
	publishDate, err := r.extractPublishDate(p)
	if err != nil {
		return nil, err
	}
	claim, err := r.extractClaim(p)
	if err != nil {
		return nil, err
	}
	verdict, err := r.extractVerdict(p)
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
		Type:        models.TypeFactCheck,
		Claim:       claim,
		Verdict:     verdict,
		Authors:     []string{},
	}}, nil
}

func (r *RapplerFactcheck) ArticleDelay() time.Duration { return 2 * time.Second }

func (r *RapplerFactcheck) Defaults() CrawlDefaults {
	return CrawlDefaults{StartPage: 1, RestartInterval: 50, LogClearInterval: 5}
}
