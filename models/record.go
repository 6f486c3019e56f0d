package models

// SourceName identifies one of the supported websites.
type SourceName string

const (
	SourceFactcheckOrg SourceName = "factcheckorg"
	SourceFullFact     SourceName = "fullfact"
	SourcePolitifact   SourceName = "politifact"
	SourcePoynter      SourceName = "poynter"
	SourceRappler      SourceName = "rappler"
	SourceWHO          SourceName = "who"
)

// RecordType classifies an extracted article.
type RecordType string

const (
	TypeFactCheck          RecordType = "fact-check"
	TypeFactCheckNoVerdict RecordType = "fact-check-no-verdict"
	TypeElections          RecordType = "elections"
	TypeNews               RecordType = "news"
)

// ArticleRecord is the normalized unit of extracted data. It is constructed
// once per successfully extracted article and never mutated after it has been
// appended to the output store.
//
// PublishDate is always an RFC 3339 string; URL is always absolute. One page
// may yield several records (one per claim/verdict pair) sharing every field
// except Claim and Verdict.
type ArticleRecord struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	PublishDate string     `json:"publish_date"`
	URL         string     `json:"url"`
	Source      SourceName `json:"source"`
	Type        RecordType `json:"type"`
	SourceBias  *string    `json:"source_bias"`
	Claim       string     `json:"claim,omitempty"`
	Verdict     string     `json:"verdict,omitempty"`
	Authors     []string   `json:"authors"`
	Category    string     `json:"category,omitempty"`
}

// RetryEntry records a URL that failed processing, with a human-readable
// reason, for later manual re-drive. Nothing consumes these automatically.
type RetryEntry struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}
