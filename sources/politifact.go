package sources

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/veridata/factcrawl/browser"
	"github.com/veridata/factcrawl/models"
)

const politifactOrigin = "https://www.politifact.com"

// statedOnRe pulls the date out of PolitiFact's byline, e.g.
// "stated on May 5, 2021 in an Instagram post:".
var statedOnRe = regexp.MustCompile(`stated on (.+?) in`)

// Politifact scrapes politifact.com fact-checks. The page layout repeats the
// statement blocks (a site-header copy comes first), so field selectors index
// the second match.
type Politifact struct{}

func NewPolitifact() *Politifact { return &Politifact{} }

func (pf *Politifact) Name() models.SourceName { return models.SourcePolitifact }
func (pf *Politifact) OutputName() string      { return "politifact-factcheck" }

func (pf *Politifact) ListingURL(page int) string {
	return fmt.Sprintf("%s/factchecks/list/?page=%d", politifactOrigin, page)
}

func (pf *Politifact) ArticleURLs(p browser.Page) ([]string, error) {
	return hrefs(p, "div.m-statement__quote > a", politifactOrigin)
}

func (pf *Politifact) Extract(p browser.Page, url string) ([]models.ArticleRecord, error) {
	title, err := nthText(p, "div.m-statement__quote", 1)
	if err != nil {
		return nil, extractionErr("no statement quote found", err)
	}

	rawDate, err := nthScopedText(p, "div.m-statement__meta", 1, "div.m-statement__desc")
	if err != nil {
		return nil, extractionErr("no statement byline found", err)
	}
	publishDate, err := pf.parseBylineDate(rawDate)
	if err != nil {
		return nil, err
	}

	verdict, err := pf.extractVerdict(p)
	if err != nil {
		return nil, err
	}

	blocks, err := browser.AllText(p, ".t-row:has(article.m-textblock) div.t-row__center")
	if err != nil {
		return nil, extractionErr("no content found", err)
	}

	return []models.ArticleRecord{{
		Title:       title,
		Content:     joinBlocks(blocks),
		PublishDate: publishDate,
		URL:         url,
		Source:      models.SourcePolitifact,
		Type:        models.TypeFactCheck,
		Claim:       title,
		Verdict:     verdict,
		Authors:     []string{},
	}}, nil
}

// parseBylineDate extracts the date portion of the "stated on … in …" byline
// and normalizes it. Bylines without a parseable date abort the URL.
func (pf *Politifact) parseBylineDate(byline string) (string, error) {
	if m := statedOnRe.FindStringSubmatch(byline); m != nil {
		return normalizeDate(m[1])
	}
	return normalizeDate(byline)
}

// The verdict is the Truth-O-Meter image's alt text.
func (pf *Politifact) extractVerdict(p browser.Page) (string, error) {
	meters, err := p.Elements("div.m-statement__meter")
	if err != nil || len(meters) < 2 {
		return "", extractionErr("no verdict meter found", err)
	}
	img, err := meters[1].Element("div.c-image > picture > img.c-image__original")
	if err != nil {
		return "", extractionErr("no verdict image found", err)
	}
	alt, err := img.Attr("alt")
	if err != nil {
		return "", extractionErr("verdict image has no alt text", err)
	}
	return alt, nil
}

func (pf *Politifact) ArticleDelay() time.Duration { return 2 * time.Second }

func (pf *Politifact) Defaults() CrawlDefaults {
	return CrawlDefaults{StartPage: 1, RestartInterval: 50}
}

// nthText returns the trimmed text of the n-th (0-based) element matching sel.
func nthText(p browser.Page, sel string, n int) (string, error) {
	els, err := p.Elements(sel)
	if err != nil {
		return "", err
	}
	if len(els) <= n {
		return "", fmt.Errorf("selector %q matched %d elements, need index %d", sel, len(els), n)
	}
	text, err := els[n].Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// nthScopedText returns the trimmed text of child inside the n-th match of sel.
func nthScopedText(p browser.Page, sel string, n int, child string) (string, error) {
	els, err := p.Elements(sel)
	if err != nil {
		return "", err
	}
	if len(els) <= n {
		return "", fmt.Errorf("selector %q matched %d elements, need index %d", sel, len(els), n)
	}
	el, err := els[n].Element(child)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
