package sources

import (
	"fmt"
	"time"

	"github.com/veridata/factcrawl/browser"
	"github.com/veridata/factcrawl/models"
)

const factcheckOrgOrigin = "https://www.factcheck.org"

// FactcheckOrg scrapes the FactCheck.org "FactCheck Wire" archive. The site
// publishes no discrete claim/verdict pair, so every record is a
// fact-check-no-verdict with the title standing in as the claim.
type FactcheckOrg struct{}

func NewFactcheckOrg() *FactcheckOrg { return &FactcheckOrg{} }

func (f *FactcheckOrg) Name() models.SourceName { return models.SourceFactcheckOrg }
func (f *FactcheckOrg) OutputName() string      { return "factcheckorg-factcheck" }

func (f *FactcheckOrg) ListingURL(page int) string {
	return fmt.Sprintf("%s/the-factcheck-wire/page/%d", factcheckOrgOrigin, page)
}

func (f *FactcheckOrg) ArticleURLs(p browser.Page) ([]string, error) {
	return hrefs(p, "article.post.type-post > h3.entry-title > a", factcheckOrgOrigin)
}

func (f *FactcheckOrg) Extract(p browser.Page, url string) ([]models.ArticleRecord, error) {
	title, err := firstText(p, "h1.entry-title")
	if err != nil {
		return nil, extractionErr("no title element found", err)
	}

	rawDate, err := firstAttr(p, "p.posted-on > time", "datetime")
	if err != nil {
		return nil, extractionErr("no publish date element found", err)
	}
	publishDate, err := normalizeDate(rawDate)
	if err != nil {
		return nil, err
	}

	// Paragraphs after the wp-block-separator are boilerplate (sources,
	// editor notes), excluded by the selector itself.
	blocks, err := browser.AllText(p, "div.entry-content p:not(hr.wp-block-separator ~ p)")
	if err != nil {
		return nil, extractionErr("no content found", err)
	}

	return []models.ArticleRecord{{
		Title:       title,
		Content:     joinBlocks(blocks),
		PublishDate: publishDate,
		URL:         url,
		Source:      models.SourceFactcheckOrg,
		Type:        models.TypeFactCheckNoVerdict,
		Claim:       title,
		Authors:     extractAuthorTexts(p, "p.byline > a"),
	}}, nil
}

func (f *FactcheckOrg) ArticleDelay() time.Duration { return 500 * time.Millisecond }

func (f *FactcheckOrg) Defaults() CrawlDefaults {
	return CrawlDefaults{StartPage: 1, RestartInterval: 2, LogClearInterval: 1}
}

// extractAuthorTexts degrades gracefully: any failure to locate author
// elements yields an empty list, never an error. Authors are best-effort
// metadata.
func extractAuthorTexts(p browser.Page, sel string) []string {
	texts, err := browser.AllText(p, sel)
	if err != nil {
		return []string{}
	}
	if texts == nil {
		texts = []string{}
	}
	return texts
}
