// Command who-urls downloads the full WHO newsroom item feed and writes the
// id,url CSV that drives the feed-based crawl of the who source.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/veridata/factcrawl/whofeed"
)

func main() {
	out := flag.String("out", "outputs/who-urls.csv", "CSV file to write")
	proxy := flag.String("proxy", "", "optional proxy URL (http, https, or socks5)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []whofeed.Option{}
	if *proxy != "" {
		opts = append(opts, whofeed.WithProxy(*proxy))
	}

	items, err := whofeed.NewClient(opts...).Items(ctx)
	if err != nil {
		slog.Error("failed to fetch feed", "error", err)
		os.Exit(1)
	}
	if err := whofeed.WriteCSV(*out, items); err != nil {
		slog.Error("failed to write CSV", "path", *out, "error", err)
		os.Exit(1)
	}
	slog.Info("feed written", "path", *out, "items", len(items))
}
