package sources

import (
	"strings"

	"github.com/veridata/factcrawl/browser"
)

const rapplerOrigin = "https://www.rappler.com"

// Claim and verdict labels appear in English and Tagalog, sometimes
// upper-cased. Priority order is fixed: the first label that matches wins.
var (
	claimLabels   = []string{"Claim:", "The claim:", "Ang sabi-sabi:", "CLAIM:", "ANG SABI-SABI:"}
	verdictLabels = []string{"Rating:", "Marka:"}

	claimSelectors   = []string{"div.entry-content p", "div.entry-content li", "div.entry-content h5", "p"}
	verdictSelectors = []string{"h5", "p", "li"}
)

// rapplerArticle holds the selectors shared by every Rappler variant.
type rapplerArticle struct{}

func (rapplerArticle) extractTitle(p browser.Page) (string, error) {
	title, err := firstText(p, "h1.post-single__title")
	if err != nil {
		return "", extractionErr("no title element found", err)
	}
	return title, nil
}

func (rapplerArticle) extractPublishDate(p browser.Page) (string, error) {
	raw, err := firstAttr(p, "span.posted-on > time", "datetime")
	if err != nil {
		return "", extractionErr("no publish date element found", err)
	}
	return normalizeDate(raw)
}

// extractContent strips ad containers first, then joins the remaining
// non-empty blocks of the article body.
func (rapplerArticle) extractContent(p browser.Page) (string, error) {
	_ = p.RemoveAll("div.rappler-ad-container")
	blocks, err := browser.AllText(p, "div.post-single__content.entry-content > *")
	if err != nil {
		return "", extractionErr("no content found", err)
	}
	return joinBlocks(blocks), nil
}

// extractAuthors splits the comma-separated byline; any failure degrades to
// an empty list.
func (rapplerArticle) extractAuthors(p browser.Page) []string {
	text, err := firstText(p, "div.post-single__authors")
	if err != nil {
		return []string{}
	}
	parts := strings.Split(text, ",")
	authors := make([]string, 0, len(parts))
	for _, part := range parts {
		if a := strings.TrimSpace(part); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}

func (rapplerArticle) extractClaim(p browser.Page) (string, error) {
	if claim, ok := labelledText(p, claimSelectors, claimLabels); ok {
		return claim, nil
	}
	return "", extractionErr("no claim element found", nil)
}

func (rapplerArticle) extractVerdict(p browser.Page) (string, error) {
	if verdict, ok := labelledText(p, verdictSelectors, verdictLabels); ok {
		return verdict, nil
	}
	return "", extractionErr("no verdict element found", nil)
}

// isFactCheckURL reports whether any slash-delimited part of the URL
// mentions fact-check.
func isFactCheckURL(url string) bool {
	for _, part := range strings.Split(strings.ToLower(url), "/") {
		if strings.Contains(part, "fact-check") {
			return true
		}
	}
	return false
}
