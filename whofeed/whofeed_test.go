package whofeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func feedServer(t *testing.T, pages [][]Item) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		skip := 0
		fmt.Sscanf(r.URL.Query().Get("$skip"), "%d", &skip)

		page := skip / defaultPageSize
		var items []Item
		if page < len(pages) {
			items = pages[page]
		}
		json.NewEncoder(w).Encode(feedPage{Value: items})
	}))
}

func TestItems_PaginatesUntilEmpty(t *testing.T) {
	srv := feedServer(t, [][]Item{
		{{ItemDefaultURL: "item-one"}, {ItemDefaultURL: "item-two"}},
		{{ItemDefaultURL: "item-three"}},
	})
	defer srv.Close()

	c := NewClient(WithAPIBase(srv.URL))
	items, err := c.Items(context.Background())
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[2].ItemDefaultURL != "item-three" {
		t.Errorf("pages out of order: %+v", items)
	}
}

func TestFetchOnce_SendsSitefinityQuery(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		json.NewEncoder(w).Encode(feedPage{})
	}))
	defer srv.Close()

	if _, err := NewClient(WithAPIBase(srv.URL)).Items(context.Background()); err != nil {
		t.Fatalf("Items: %v", err)
	}

	want := map[string]string{
		"sf_site":     sitefinitySite,
		"sf_provider": "OpenAccessDataProvider",
		"sf_culture":  "en",
		"$orderby":    "PublicationDateAndTime desc",
		"$select":     "ItemDefaultUrl,FormatedDate",
		"$format":     "json",
		"$top":        "100",
		"$skip":       "0",
	}
	for key, value := range want {
		if got.Get(key) != value {
			t.Errorf("query %s = %q, want %q", key, got.Get(key), value)
		}
	}
}

func TestFetchPage_RetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(feedPage{})
	}))
	defer srv.Close()

	c := NewClient(WithAPIBase(srv.URL), WithRetry(3, time.Millisecond))
	items, err := c.Items(context.Background())
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %v, want none", items)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2 (one failure, one success)", calls.Load())
	}
}

func TestFetchPage_ExhaustedRetriesFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(WithAPIBase(srv.URL), WithRetry(2, time.Millisecond))
	if _, err := c.Items(context.Background()); err == nil {
		t.Fatal("want error after exhausting retries")
	}
}

func TestArticleURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"06-05-2021-who-statement", "https://www.who.int/news/item/06-05-2021-who-statement"},
		{"/06-05-2021-who-statement", "https://www.who.int/news/item/06-05-2021-who-statement"},
		{"https://www.who.int/news/item/x", "https://www.who.int/news/item/x"},
	}
	for _, tt := range tests {
		if got := ArticleURL(Item{ItemDefaultURL: tt.in}); got != tt.want {
			t.Errorf("ArticleURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "who", "urls.csv")
	items := []Item{
		{ItemDefaultURL: "item-a"},
		{ItemDefaultURL: "item-b"},
	}
	if err := WriteCSV(path, items); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "id,url\n1,https://www.who.int/news/item/item-a\n2,https://www.who.int/news/item/item-b\n"
	if string(data) != want {
		t.Errorf("csv = %q, want %q", data, want)
	}
}
