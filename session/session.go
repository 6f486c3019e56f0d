// Package session manages the lifecycle of one rod browser process and one
// page: start, idempotent quit, time-boxed restart, and retried navigation.
package session

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/ysmood/gson"

	"github.com/veridata/factcrawl/browser"
	"github.com/veridata/factcrawl/config"
	"github.com/veridata/factcrawl/models"
)

// Session owns one browser process and one page handle. It is driven by a
// single crawl loop and is not safe for concurrent use.
type Session struct {
	launcher   *launcher.Launcher
	browser    *rod.Browser
	page       *rod.Page
	browserCfg config.BrowserConfig
	cfg        config.SessionConfig
}

// New creates a Session without launching anything. Call Start before use.
func New(browserCfg config.BrowserConfig, cfg config.SessionConfig) *Session {
	return &Session{browserCfg: browserCfg, cfg: cfg}
}

// Start launches the browser and opens the single page. A launch failure is
// fatal to the crawl invocation.
func (s *Session) Start() error {
	l := launcher.New().
		Headless(s.browserCfg.Headless).
		NoSandbox(s.browserCfg.NoSandbox)

	if s.browserCfg.BrowserBin != "" {
		l = l.Bin(s.browserCfg.BrowserBin)
	}

	// ── Stealth flags ────────────────────────────────────────────────
	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("disable-background-timer-throttling"))
	l.Set(flags.Flag("disable-backgrounding-occluded-windows"))
	l.Set(flags.Flag("disable-component-update"))
	l.Set(flags.Flag("disable-default-apps"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("disable-extensions"))
	l.Set(flags.Flag("no-first-run"))

	controlURL, err := l.Launch()
	if err != nil {
		return models.NewCrawlError(models.ErrCodeSession, "failed to launch browser", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Kill()
		return models.NewCrawlError(models.ErrCodeSession, "failed to connect to browser", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = b.Close()
		l.Kill()
		return models.NewCrawlError(models.ErrCodeSession, "failed to open page", err)
	}

	if _, err := page.EvalOnNewDocument(stealth.JS); err != nil {
		slog.Warn("stealth injection failed, proceeding without stealth", "error", err)
	}
	_ = proto.NetworkSetExtraHTTPHeaders{
		Headers: proto.NetworkHeaders{"Accept-Language": gson.New("en-US,en;q=0.9")},
	}.Call(page)

	s.launcher = l
	s.browser = b
	s.page = page
	slog.Info("browser session started", "controlURL", controlURL, "headless", s.browserCfg.Headless)
	return nil
}

// Quit closes page, browser, and the launched process. Any sub-step may
// already be gone; Quit never fails and may be called repeatedly.
func (s *Session) Quit() {
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}
	if s.browser != nil {
		_ = s.browser.Close()
		s.browser = nil
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher = nil
	}
}

// Restart quits, waits the configured delay, and starts again. Element
// handles obtained before the restart are invalid afterwards; callers must
// call Page again and re-locate everything.
func (s *Session) Restart(ctx context.Context) error {
	s.Quit()
	select {
	case <-time.After(s.cfg.RestartDelay):
	case <-ctx.Done():
		return ctx.Err()
	}
	return s.Start()
}

// Navigate drives the page to url with bounded retry: up to MaxRetries
// attempts, each waiting for content to load within NavTimeout, sleeping
// RetryDelay between failures (not after the last). Returns true on the first
// success and false on exhaustion — a reported condition, not an error; the
// caller routes it to the retry log.
//
// Calling Navigate before Start is a programming error and panics.
func (s *Session) Navigate(ctx context.Context, url string) bool {
	if s.page == nil {
		panic("session: Navigate called before Start")
	}

	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		err := s.navigateOnce(ctx, url)
		if err == nil {
			return true
		}
		slog.Warn("navigation attempt failed",
			"url", url,
			"attempt", attempt,
			"maxRetries", s.cfg.MaxRetries,
			"error", err,
		)
		if attempt < s.cfg.MaxRetries {
			select {
			case <-time.After(s.cfg.RetryDelay):
			case <-ctx.Done():
				return false
			}
		}
	}
	return false
}

func (s *Session) navigateOnce(ctx context.Context, url string) error {
	navCtx, cancel := context.WithTimeout(ctx, s.cfg.NavTimeout)
	defer cancel()

	p := s.page.Context(navCtx)
	if err := p.Navigate(url); err != nil {
		return categorizeError(err, "navigation to target URL failed")
	}
	if err := p.WaitDOMStable(300*time.Millisecond, 0.1); err != nil {
		if navCtx.Err() != nil {
			return categorizeError(err, "page did not finish loading")
		}
		slog.Debug("WaitDOMStable did not converge, proceeding with current DOM", "error", err)
	}
	return nil
}

// ClearLogsAndGC clears the engine's console log and hints garbage
// collection in both the page and this process. Cosmetic housekeeping for
// long runs; every sub-step is best-effort.
func (s *Session) ClearLogsAndGC() {
	if s.page != nil {
		_ = proto.LogClear{}.Call(s.page)
		_ = proto.HeapProfilerCollectGarbage{}.Call(s.page)
	}
	runtime.GC()
}

// Page exposes the current page through the narrow query contract. The
// returned handle is only valid until the next Restart or Quit.
func (s *Session) Page() browser.Page {
	return rodPage{p: s.page}
}

// categorizeError wraps raw rod errors into coded CrawlErrors.
func categorizeError(err error, msg string) *models.CrawlError {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return models.NewCrawlError(models.ErrCodeNavigation, msg+" (timeout)", err)
	default:
		return models.NewCrawlError(models.ErrCodeNavigation, msg, err)
	}
}
