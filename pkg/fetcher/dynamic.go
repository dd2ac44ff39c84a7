package fetcher

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/jmylchreest/mineral/internal/logger"
)

// Common Chrome/Chromium binary names across different systems
var chromeBinaryNames = []string{
	"google-chrome-stable",
	"google-chrome",
	"chromium",
	"chromium-browser",
	"chrome",
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	"/Applications/Chromium.app/Contents/MacOS/Chromium",
	"/snap/bin/chromium",
	`C:\Program Files\Google\Chrome\Application\chrome.exe`,
}

// FindChromePath returns the first Chrome/Chromium binary found, or "".
func FindChromePath() string {
	for _, name := range chromeBinaryNames {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// DynamicFetcher renders pages in headless Chrome so that markup produced
// by JavaScript is part of the document. A browser is started per Fetch.
type DynamicFetcher struct {
	config Config
}

// NewDynamic creates a new dynamic fetcher.
func NewDynamic(cfg Config) *DynamicFetcher {
	return &DynamicFetcher{config: cfg.withDefaults()}
}

// Fetch loads targetURL in a browser and returns the rendered document.
func (f *DynamicFetcher) Fetch(ctx context.Context, targetURL string, opts Options) (Content, error) {
	result := Content{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}
	if err := checkURL(targetURL); err != nil {
		return result, err
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(coalesce(opts.UserAgent, f.config.UserAgent)),
	)
	if chromePath := FindChromePath(); chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(chromePath))
	} else {
		logger.Warn("no Chrome binary found, relying on chromedp defaults")
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = f.config.Timeout
	}
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	actions := []chromedp.Action{chromedp.Navigate(targetURL)}
	if opts.WaitSelector != "" {
		actions = append(actions, chromedp.WaitVisible(opts.WaitSelector, chromedp.ByQuery))
	} else {
		actions = append(actions, chromedp.WaitReady("body", chromedp.ByQuery))
	}
	actions = append(actions,
		chromedp.Title(&result.Title),
		chromedp.OuterHTML("html", &result.HTML, chromedp.ByQuery),
	)

	logger.Debug("dynamic fetch starting", "url", targetURL, "wait_selector", opts.WaitSelector, "timeout", timeout)
	if err := chromedp.Run(browserCtx, actions...); err != nil {
		return result, fmt.Errorf("dynamic fetch %s: %w", targetURL, err)
	}
	if result.HTML == "" {
		return result, ErrEmptyBody
	}

	result.StatusCode = 200
	result.ContentType = "text/html"
	logger.Debug("dynamic fetch complete", "url", targetURL, "html_size", len(result.HTML))
	return result, nil
}

// Close releases resources.
func (f *DynamicFetcher) Close() error {
	return nil
}

// Type returns the fetcher type.
func (f *DynamicFetcher) Type() string {
	return ModeDynamic
}
