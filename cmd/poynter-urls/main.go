// Command poynter-urls parses saved Poynter listing pages into the id,url CSV
// that drives the feed-based crawl of the poynter source.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/veridata/factcrawl/htmlproc"
)

func main() {
	dir := flag.String("dir", "listings", "directory of saved listing .html pages")
	out := flag.String("out", "outputs/poynter-urls.csv", "CSV file to write")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := htmlproc.ProcessDir(*dir, *out); err != nil {
		slog.Error("failed to process listings", "dir", *dir, "error", err)
		os.Exit(1)
	}
	slog.Info("feed written", "path", *out)
}
