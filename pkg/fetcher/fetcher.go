// Package fetcher retrieves HTML documents to be pruned.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string, opts Options) (Content, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns a string identifying the fetcher type (e.g., "static", "dynamic").
	Type() string
}

// Options controls fetching behavior. Zero values fall back to the
// fetcher's own configuration.
type Options struct {
	UserAgent    string
	Timeout      time.Duration
	WaitSelector string // CSS selector to wait for (dynamic fetcher only)
	Headers      map[string]string
}

// Content represents fetched page data.
type Content struct {
	URL         string
	HTML        string
	Title       string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

var (
	// ErrEmptyBody indicates the server returned no content.
	ErrEmptyBody = errors.New("empty response body")
	// ErrUnsupportedScheme indicates a URL that is neither http nor https.
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")
	// ErrUnsupportedMode indicates an unknown fetch mode.
	ErrUnsupportedMode = errors.New("unsupported fetch mode")
)

// Fetch modes accepted by New.
const (
	ModeStatic  = "static"
	ModeDynamic = "dynamic"
)

// Config is shared by the fetcher constructors.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// Chrome user agent for better compatibility
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = def.Timeout
	}
	return c
}

// New returns a fetcher for mode.
func New(mode string, cfg Config) (Fetcher, error) {
	switch mode {
	case "", ModeStatic:
		return NewStatic(cfg), nil
	case ModeDynamic:
		return NewDynamic(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
}

// IsURL reports whether s looks like an http(s) URL rather than a path.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	return nil
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
