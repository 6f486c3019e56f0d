// Package category implements the multi-signal topic scorer: keyword density
// over title+content, with URL-path boosts for politics, social issues, and
// government coverage.
package category

import (
	"net/url"
	"strings"

	"github.com/veridata/factcrawl/models"
)

// Category is a topic label.
type Category string

const (
	Politics     Category = "politics"
	SocialIssues Category = "social_issues"
	News         Category = "news"
	Government   Category = "government"
)

// URL path-segment substrings that boost a category's score by pathBoost.
var pathHints = map[Category][]string{
	Politics:     {"/politics/", "/elections/"},
	SocialIssues: {"/social-issues/"},
	Government:   {"/government/"},
}

const (
	pathBoost   = 0.3
	entityBoost = 0.2
)

// Categorizer scores articles against a fixed keyword configuration. It is
// immutable after construction and safe for concurrent use.
type Categorizer struct {
	kw Keywords
}

// New creates a Categorizer. An entirely empty keyword set is a
// configuration error (CATEGORIZER_NOT_CONFIGURED).
func New(kw Keywords) (*Categorizer, error) {
	if kw.empty() {
		return nil, models.NewCrawlError(models.ErrCodeNotConfigured,
			"category keyword set is empty", nil)
	}
	return &Categorizer{kw: kw}, nil
}

// Categorize returns the best-scoring category for the article. It is a pure
// function of its inputs: same (title, content, url) always yields the same
// category. When every score is exactly zero, News is returned.
func (c *Categorizer) Categorize(title, content, articleURL string) Category {
	text := strings.ToLower(title + " " + content)

	scores := map[Category]float64{
		Politics:     density(text, c.kw.Politics),
		SocialIssues: density(text, c.kw.SocialIssues),
		News:         density(text, c.kw.News),
		Government:   density(text, c.kw.GovernmentEntities),
	}

	path := urlPath(articleURL)
	for cat, hints := range pathHints {
		for _, hint := range hints {
			if strings.Contains(path, hint) {
				scores[cat] += pathBoost
				break
			}
		}
	}
	if segmentMatchesAny(path, c.kw.GovernmentEntities) {
		scores[Government] += entityBoost
	}

	// Fixed declaration order decides ties.
	order := []Category{Politics, SocialIssues, News, Government}
	best := News
	bestScore := 0.0
	for _, cat := range order {
		if scores[cat] > bestScore {
			best = cat
			bestScore = scores[cat]
		}
	}
	return best
}

// density is the fraction of the list's keywords found as substrings in text.
func density(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	found := 0
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			found++
		}
	}
	return float64(found) / float64(len(keywords))
}

// segmentMatchesAny reports whether any keyword exactly equals one of the
// path's slash-delimited segments.
func segmentMatchesAny(path string, keywords []string) bool {
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		for _, kw := range keywords {
			if seg == strings.ToLower(kw) {
				return true
			}
		}
	}
	return false
}

func urlPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return strings.ToLower(raw)
	}
	return strings.ToLower(u.Path)
}
