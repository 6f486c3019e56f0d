package sources

import (
	"fmt"
	"strings"
	"time"

	"github.com/veridata/factcrawl/browser"
	"github.com/veridata/factcrawl/models"
)

const fullFactOrigin = "https://fullfact.org"

// FullFact scrapes fullfact.org. A single article may carry several checked
// claims, each with its own conclusion; the extractor fans out into one
// record per claim/conclusion card. Articles without cards fall back to a
// single fact-check-no-verdict record.
type FullFact struct{}

func NewFullFact() *FullFact { return &FullFact{} }

func (f *FullFact) Name() models.SourceName { return models.SourceFullFact }
func (f *FullFact) OutputName() string      { return "fullfact-factcheck" }

func (f *FullFact) ListingURL(page int) string {
	return fmt.Sprintf("%s/latest/?page=%d", fullFactOrigin, page)
}

func (f *FullFact) ArticleURLs(p browser.Page) ([]string, error) {
	return hrefs(p, "div.card.feature-card > a.card-link", fullFactOrigin)
}

func (f *FullFact) Extract(p browser.Page, url string) ([]models.ArticleRecord, error) {
	title, err := firstText(p, "h1.mb-3.highlight-js")
	if err != nil {
		return nil, extractionErr("no title element found", err)
	}

	rawDate, err := firstText(p, "div.timestamp")
	if err != nil {
		return nil, extractionErr("no timestamp element found", err)
	}
	publishDate, err := normalizeDate(rawDate)
	if err != nil {
		return nil, err
	}

	blocks, err := browser.AllText(p, "div.cms-content > div.block-rich_text")
	if err != nil {
		return nil, extractionErr("no content found", err)
	}
	content := joinBlocks(blocks)
	authors := extractAuthorTexts(p, "ul.citation > li > span > cite")

	pairs, err := f.claimConclusionPairs(p)
	if err != nil {
		return nil, err
	}

	shared := models.ArticleRecord{
		Title:       title,
		Content:     content,
		PublishDate: publishDate,
		URL:         url,
		Source:      models.SourceFullFact,
		Authors:     authors,
	}

	if len(pairs) == 0 {
		rec := shared
		rec.Type = models.TypeFactCheckNoVerdict
		rec.Claim = title
		return []models.ArticleRecord{rec}, nil
	}

	records := make([]models.ArticleRecord, 0, len(pairs))
	for _, cv := range pairs {
		rec := shared
		rec.Type = models.TypeFactCheck
		rec.Claim = cv[0]
		rec.Verdict = cv[1]
		records = append(records, rec)
	}
	return records, nil
}

// claimConclusionPairs walks the checked-claims cards. Cards missing either
// half are skipped rather than producing a lopsided record.
func (f *FullFact) claimConclusionPairs(p browser.Page) ([][2]string, error) {
	cards, err := p.Elements("div.block-checked_claims div.card-claim-conclusion")
	if err != nil {
		return nil, extractionErr("failed to locate claim cards", err)
	}

	var pairs [][2]string
	for _, card := range cards {
		claim := scopedText(card, "div.card-claim-body p.card-text")
		verdict := scopedText(card, "div.card-conclusion-body p.card-text")
		if claim != "" && verdict != "" {
			pairs = append(pairs, [2]string{claim, verdict})
		}
	}
	return pairs, nil
}

func scopedText(el browser.Element, sel string) string {
	child, err := el.Element(sel)
	if err != nil {
		return ""
	}
	text, err := child.Text()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

func (f *FullFact) ArticleDelay() time.Duration { return 500 * time.Millisecond }

func (f *FullFact) Defaults() CrawlDefaults {
	return CrawlDefaults{StartPage: 1, RestartInterval: 5, LogClearInterval: 1}
}
