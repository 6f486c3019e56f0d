package category

import "testing"

func testKeywords() Keywords {
	return Keywords{
		Politics:           []string{"election", "senator"},
		SocialIssues:       []string{"poverty", "health"},
		News:               []string{"report"},
		GovernmentEntities: []string{"comelec", "senate"},
	}
}

func TestNew_EmptyKeywords(t *testing.T) {
	if _, err := New(Keywords{}); err == nil {
		t.Fatal("empty keyword set should be rejected")
	}
}

func TestCategorize(t *testing.T) {
	c, err := New(testKeywords())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		title   string
		content string
		url     string
		want    Category
	}{
		{
			name:  "keyword density wins",
			title: "Senator pushes election reform",
			content: "The election bill was filed by the senator " +
				"after months of debate.",
			url:  "https://example.org/story",
			want: Politics,
		},
		{
			name:    "all zero defaults to news",
			title:   "Quiet day",
			content: "Nothing in particular happened.",
			url:     "https://example.org/x",
			want:    News,
		},
		{
			name:    "url path boost flips category",
			title:   "Quiet day",
			content: "Nothing in particular happened.",
			url:     "https://example.org/philippines/elections/page",
			want:    Politics,
		},
		{
			name:    "social issues path boost",
			title:   "Quiet day",
			content: "Nothing in particular happened.",
			url:     "https://example.org/social-issues/housing-crisis",
			want:    SocialIssues,
		},
		{
			name:    "government entity path segment",
			title:   "Quiet day",
			content: "Nothing in particular happened.",
			url:     "https://example.org/comelec/resolution",
			want:    Government,
		},
		{
			name:    "social issue keywords",
			title:   "Poverty and health in the provinces",
			content: "Families face poverty while health services lag.",
			url:     "https://example.org/story",
			want:    SocialIssues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Categorize(tt.title, tt.content, tt.url)
			if got != tt.want {
				t.Errorf("Categorize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategorize_Deterministic(t *testing.T) {
	c, err := New(testKeywords())
	if err != nil {
		t.Fatal(err)
	}
	title := "Senator files health report"
	content := "A report on health and poverty, filed in the senate."
	url := "https://example.org/politics/health-report"

	first := c.Categorize(title, content, url)
	for i := 0; i < 10; i++ {
		if got := c.Categorize(title, content, url); got != first {
			t.Fatalf("run %d: got %q, first run gave %q", i, got, first)
		}
	}
}

func TestCategorize_TieBreakDeclarationOrder(t *testing.T) {
	// One keyword each so equal hit counts give equal densities.
	c, err := New(Keywords{
		Politics:     []string{"shared"},
		SocialIssues: []string{"shared"},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := c.Categorize("shared topic", "", "https://example.org/x")
	if got != Politics {
		t.Errorf("tie should resolve to first declared category, got %q", got)
	}
}
