package csvfeed

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urls.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFeed(t, "1,https://a.test/x\n2,https://a.test/y\n3,https://a.test/z\n")

	urls, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"https://a.test/x", "https://a.test/y", "https://a.test/z"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestLoad_StartIndexSkipsProcessed(t *testing.T) {
	path := writeFeed(t, "1,https://a.test/x\n2,https://a.test/y\n3,https://a.test/z\n")

	urls, err := Load(path, 3)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(urls, []string{"https://a.test/z"}) {
		t.Errorf("urls = %v, want only the last entry", urls)
	}
}

func TestLoad_SkipsHeaderRow(t *testing.T) {
	path := writeFeed(t, "id,url\n1,https://a.test/x\n")

	urls, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(urls, []string{"https://a.test/x"}) {
		t.Errorf("urls = %v", urls)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv"), 0); err == nil {
		t.Fatal("want error for a missing feed file")
	}
}
