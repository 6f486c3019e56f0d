package category

import (
	"encoding/json"
	"os"

	"github.com/veridata/factcrawl/models"
)

// Keywords holds the four disjoint keyword lists the scorer works from.
// Loaded once at process start, immutable thereafter.
type Keywords struct {
	Politics           []string `json:"politics"`
	SocialIssues       []string `json:"social_issues"`
	News               []string `json:"news"`
	GovernmentEntities []string `json:"government_entities"`
}

func (k Keywords) empty() bool {
	return len(k.Politics) == 0 &&
		len(k.SocialIssues) == 0 &&
		len(k.News) == 0 &&
		len(k.GovernmentEntities) == 0
}

// DefaultKeywords returns the built-in keyword configuration, tuned for
// Philippine political coverage.
func DefaultKeywords() Keywords {
	return Keywords{
		Politics: []string{
			"election", "senator", "congress", "president", "campaign",
			"ballot", "candidate", "vote", "party-list", "impeachment",
			"marcos", "duterte",
		},
		SocialIssues: []string{
			"poverty", "health", "education", "human rights", "labor",
			"housing", "disaster", "environment", "women", "children",
		},
		News: []string{
			"breaking", "report", "announcement", "statement", "update",
			"incident", "investigation",
		},
		GovernmentEntities: []string{
			"comelec", "senate", "malacanang", "dilg", "doh", "deped",
			"dswd", "dpwh", "pnp", "afp",
		},
	}
}

// LoadKeywords reads a keyword configuration from a JSON file.
func LoadKeywords(path string) (Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keywords{}, models.NewCrawlError(models.ErrCodeInvalidInput,
			"failed to read keyword file", err)
	}
	var kw Keywords
	if err := json.Unmarshal(data, &kw); err != nil {
		return Keywords{}, models.NewCrawlError(models.ErrCodeInvalidInput,
			"failed to parse keyword file", err)
	}
	return kw, nil
}
