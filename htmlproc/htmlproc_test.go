package htmlproc

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func listingHTML(urls ...string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, u := range urls {
		b.WriteString(`<article class="card-layout"><h2 class="card-layout__headline">`)
		b.WriteString(`<a class="card-layout__link" href="` + u + `">headline</a>`)
		b.WriteString(`</h2></article>`)
	}
	// Off-selector noise that must not be picked up.
	b.WriteString(`<a class="card-layout__link" href="https://poynter.org/stray">stray</a>`)
	b.WriteString("</body></html>")
	return b.String()
}

func TestArticleURLs(t *testing.T) {
	html := listingHTML(
		"https://www.poynter.org/fact-checking/2021/a/",
		"https://www.poynter.org/fact-checking/2021/b/",
	)

	urls, err := ArticleURLs(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ArticleURLs: %v", err)
	}
	want := []string{
		"https://www.poynter.org/fact-checking/2021/a/",
		"https://www.poynter.org/fact-checking/2021/b/",
	}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestProcessDir_DeduplicatesAcrossPages(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("page-001.html", listingHTML(
		"https://www.poynter.org/fact-checking/2021/a/",
		"https://www.poynter.org/fact-checking/2021/b/",
	))
	// Listing pages overlap when new articles shift the pagination.
	write("page-002.html", listingHTML(
		"https://www.poynter.org/fact-checking/2021/b/",
		"https://www.poynter.org/fact-checking/2021/c/",
	))
	write("notes.txt", "not a listing")

	out := filepath.Join(dir, "out", "urls.csv")
	if err := ProcessDir(dir, out); err != nil {
		t.Fatalf("ProcessDir: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "id,url\n" +
		"1,https://www.poynter.org/fact-checking/2021/a/\n" +
		"2,https://www.poynter.org/fact-checking/2021/b/\n" +
		"3,https://www.poynter.org/fact-checking/2021/c/\n"
	if string(data) != want {
		t.Errorf("csv = %q, want %q", data, want)
	}
}
