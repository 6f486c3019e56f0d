// Command factcrawl crawls one configured source and appends extracted
// records to the per-source output file. Listing-driven sources paginate from
// their start page; feed-driven sources read a prepared id,url CSV.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/veridata/factcrawl/category"
	"github.com/veridata/factcrawl/config"
	"github.com/veridata/factcrawl/crawl"
	"github.com/veridata/factcrawl/csvfeed"
	"github.com/veridata/factcrawl/models"
	"github.com/veridata/factcrawl/session"
	"github.com/veridata/factcrawl/sources"
	"github.com/veridata/factcrawl/store"
)

func main() {
	sourceName := flag.String("source", "", "source to crawl ("+strings.Join(sources.Names(), ", ")+")")
	startPage := flag.Int("start", 0, "listing page to start from (0 = source default)")
	endPage := flag.Int("end", 0, "last listing page, inclusive (0 = source default)")
	csvPath := flag.String("csv", "", "id,url CSV driving a feed-based crawl")
	startIndex := flag.Int("start-index", 0, "first CSV id to process (resume point)")
	categorize := flag.Bool("categorize", false, "stamp records with a topic category")
	keywordsPath := flag.String("keywords", "", "category keyword JSON (implies -categorize)")
	flag.Parse()

	// ── 1. Load configuration ───────────────────────────────────────
	cfg := config.Load()

	// ── 2. Initialise structured logging ────────────────────────────
	initLogger(cfg.Log)

	if *sourceName == "" {
		fmt.Fprintln(os.Stderr, "factcrawl: -source is required")
		flag.Usage()
		os.Exit(2)
	}

	src, err := sources.ByName(*sourceName)
	if err != nil {
		slog.Error("unknown source", "error", err)
		os.Exit(2)
	}

	slog.Info("factcrawl starting",
		"source", src.OutputName(),
		"outputDir", cfg.Store.OutputDir,
		"headless", cfg.Browser.Headless,
	)

	// ── 3. Per-source stores ────────────────────────────────────────
	output := store.New[models.ArticleRecord](filepath.Join(cfg.Store.OutputDir, src.OutputName()+".json"))
	retries := store.New[models.RetryEntry](filepath.Join(cfg.Store.OutputDir, src.OutputName()+"-retry.json"))

	// ── 4. Optional categorizer ─────────────────────────────────────
	var categorizer *category.Categorizer
	if *categorize || *keywordsPath != "" {
		kw := category.DefaultKeywords()
		if *keywordsPath != "" {
			kw, err = category.LoadKeywords(*keywordsPath)
			if err != nil {
				slog.Error("failed to load category keywords", "path", *keywordsPath, "error", err)
				os.Exit(1)
			}
		}
		categorizer, err = category.New(kw)
		if err != nil {
			slog.Error("failed to build categorizer", "error", err)
			os.Exit(1)
		}
	}

	// ── 5. Browser session ──────────────────────────────────────────
	sess := session.New(cfg.Browser, cfg.Session)
	if err := sess.Start(); err != nil {
		slog.Error("failed to start browser session", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 6. Crawl ────────────────────────────────────────────────────
	crawler := crawl.New(sess, src, output, retries, crawl.Options{
		StartPage:   *startPage,
		EndPage:     *endPage,
		Categorizer: categorizer,
	})

	if *csvPath != "" {
		urls, err := csvfeed.Load(*csvPath, *startIndex)
		if err != nil {
			sess.Quit()
			slog.Error("failed to load URL feed", "path", *csvPath, "error", err)
			os.Exit(1)
		}
		err = crawler.RunURLs(ctx, urls, *startIndex)
		exit(err)
	}

	exit(crawler.Run(ctx))
}

func exit(err error) {
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("crawl failed", "error", err)
		os.Exit(1)
	}
	slog.Info("factcrawl stopped")
}

// initLogger configures slog based on the LogConfig.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
