// Package htmlproc turns saved Poynter listing pages into the id,url CSV the
// feed-driven crawl consumes. The listing renders its cards client-side, so
// the pages are captured in a browser session first and parsed offline here.
package htmlproc

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const cardLinkSelector = "article.card-layout h2.card-layout__headline a.card-layout__link"

// ArticleURLs extracts the article links from one listing page. Links without
// an href are skipped; order follows document order.
func ArticleURLs(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("htmlproc: parse listing: %w", err)
	}

	var urls []string
	doc.Find(cardLinkSelector).Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && href != "" {
			urls = append(urls, href)
		}
	})
	return urls, nil
}

// ProcessDir parses every .html file under dir (sorted by name, so numbered
// captures keep their listing order), deduplicates the links, and writes the
// id,url CSV to outPath.
func ProcessDir(dir, outPath string) error {
	var pages []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".html") {
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("htmlproc: scan %s: %w", dir, err)
	}
	sort.Strings(pages)

	seen := map[string]bool{}
	var urls []string
	for _, page := range pages {
		f, err := os.Open(page)
		if err != nil {
			return fmt.Errorf("htmlproc: open %s: %w", page, err)
		}
		pageURLs, err := ArticleURLs(f)
		f.Close()
		if err != nil {
			return err
		}
		for _, u := range pageURLs {
			if !seen[u] {
				seen[u] = true
				urls = append(urls, u)
			}
		}
		slog.Info("processed listing page", "file", page, "links", len(pageURLs), "unique", len(urls))
	}

	return writeCSV(outPath, urls)
}

func writeCSV(path string, urls []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("htmlproc: create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("htmlproc: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "url"}); err != nil {
		return fmt.Errorf("htmlproc: write %s: %w", path, err)
	}
	// ids are 1-based, matching the whofeed CSV layout.
	for i, u := range urls {
		if err := w.Write([]string{strconv.Itoa(i + 1), u}); err != nil {
			return fmt.Errorf("htmlproc: write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("htmlproc: flush %s: %w", path, err)
	}
	return nil
}
