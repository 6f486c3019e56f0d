package sources

import (
	"testing"

	"github.com/veridata/factcrawl/browser/browsertest"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		href   string
		want   string
	}{
		{"root relative", "https://www.rappler.com", "/newsbreak/fact-check/x", "https://www.rappler.com/newsbreak/fact-check/x"},
		{"already absolute", "https://www.rappler.com", "https://www.rappler.com/newsbreak/x", "https://www.rappler.com/newsbreak/x"},
		{"foreign absolute", "https://www.rappler.com", "https://other.example.org/y", "https://other.example.org/y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveURL(tt.origin, tt.href)
			if got != tt.want {
				t.Errorf("resolveURL(%q, %q) = %q, want %q", tt.origin, tt.href, got, tt.want)
			}
			// Resolving twice must never double-prefix.
			if again := resolveURL(tt.origin, got); again != tt.want {
				t.Errorf("second resolve changed the URL: %q", again)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso with offset", "2021-05-05T10:00:00+08:00", "2021-05-05T10:00:00+08:00"},
		{"long form", "May 5, 2021", "2021-05-05T00:00:00Z"},
		{"day first", "5 May 2021", "2021-05-05T00:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeDate(tt.in)
			if err != nil {
				t.Fatalf("normalizeDate(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("normalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDate_Unparseable(t *testing.T) {
	if _, err := normalizeDate("not a date at all"); err == nil {
		t.Fatal("want error for unparseable date")
	}
}

func TestLabelledText_StripsPrefix(t *testing.T) {
	p := browsertest.New().
		Set("p", browsertest.Text("CLAIM: Vaccines cause X"))

	got, ok := labelledText(p, claimSelectors, claimLabels)
	if !ok {
		t.Fatal("claim not found")
	}
	if got != "Vaccines cause X" {
		t.Errorf("got %q, want %q", got, "Vaccines cause X")
	}
}

func TestLabelledText_PriorityOrder(t *testing.T) {
	// Both an English lower-case label and an upper-case one are present;
	// the first label in priority order must win.
	p := browsertest.New().
		Set("div.entry-content p",
			browsertest.Text("CLAIM: the shouted one"),
			browsertest.Text("Claim: the quiet one"),
		)

	got, ok := labelledText(p, claimSelectors, claimLabels)
	if !ok {
		t.Fatal("claim not found")
	}
	if got != "the quiet one" {
		t.Errorf("got %q, want the first-priority label's text", got)
	}
}

func TestLabelledText_NoMatch(t *testing.T) {
	p := browsertest.New().
		Set("div.entry-content p", browsertest.Text("just a paragraph"))

	if _, ok := labelledText(p, claimSelectors, claimLabels); ok {
		t.Fatal("unexpected claim match")
	}
}
