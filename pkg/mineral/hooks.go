package mineral

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

var (
	rxEmptyLine   = regexp.MustCompile(`(?m)^\s*$[\r\n]*|[\r\n]+\s+\z`)
	rxStyleBlock  = regexp.MustCompile(`(?is)(<style[^>]*>)(.*?)(</style>)`)
	rxScriptBlock = regexp.MustCompile(`(?is)(<script[^>]*>)(.*?)(</script>)`)
	assetMinifier = newAssetMinifier()
)

var (
	hooksMu         sync.RWMutex
	registeredHooks = map[string]Hook{
		"trim":             TrimSpace,
		"trim-empty-lines": TrimEmptyLines,
		"html-minify":      MinifyHTML,
		"css-minify":       MinifyStyleBlocks,
		"js-minify":        MinifyScriptBlocks,
	}
)

func newAssetMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/javascript", js.Minify)
	return m
}

// RegisterHook makes h available under name to configuration files and the
// CLI. Registering a nil hook is ignored.
func RegisterHook(name string, h Hook) {
	if h == nil {
		return
	}
	hooksMu.Lock()
	defer hooksMu.Unlock()
	registeredHooks[name] = h
}

// LookupHook returns the hook registered under name.
func LookupHook(name string) (Hook, bool) {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	h, ok := registeredHooks[name]
	return h, ok
}

// HookNames returns the registered hook names, sorted.
func HookNames() []string {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	names := make([]string, 0, len(registeredHooks))
	for name := range registeredHooks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChainHooks returns a hook running each of hooks in order. Nil entries are
// skipped. The first error stops the chain and is returned as is.
// ChainHooks returns nil when there is nothing to run.
func ChainHooks(hooks ...Hook) Hook {
	var chain []Hook
	for _, h := range hooks {
		if h != nil {
			chain = append(chain, h)
		}
	}
	switch len(chain) {
	case 0:
		return nil
	case 1:
		return chain[0]
	}
	return func(content string) (string, error) {
		var err error
		for _, h := range chain {
			content, err = h(content)
			if err != nil {
				return "", err
			}
		}
		return content, nil
	}
}

// NewReplaceHook returns a hook replacing every match of pattern with
// replacement. Replacement may reference groups as $1 or ${name}.
func NewReplaceHook(pattern, replacement string) (Hook, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid replace pattern %q: %w", pattern, err)
	}
	return func(content string) (string, error) {
		return re.ReplaceAllString(content, replacement), nil
	}, nil
}

// TrimSpace removes leading and trailing whitespace.
func TrimSpace(content string) (string, error) {
	return strings.TrimSpace(content), nil
}

// TrimEmptyLines drops blank lines and trailing whitespace after the last line.
func TrimEmptyLines(content string) (string, error) {
	return rxEmptyLine.ReplaceAllString(content, ""), nil
}

// MinifyHTML runs a full HTML minifier over the document. Unlike the
// pipeline's own steps it tokenizes the markup, so it also shortens
// attributes and drops optional tags.
func MinifyHTML(content string) (string, error) {
	return assetMinifier.String("text/html", content)
}

// MinifyStyleBlocks minifies the CSS inside each <style> block.
func MinifyStyleBlocks(content string) (string, error) {
	return minifyBlocks(rxStyleBlock, "text/css", content)
}

// MinifyScriptBlocks minifies the JavaScript inside each inline <script> block.
func MinifyScriptBlocks(content string) (string, error) {
	return minifyBlocks(rxScriptBlock, "text/javascript", content)
}

func minifyBlocks(re *regexp.Regexp, mediatype, content string) (string, error) {
	matches := re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, nil
	}

	var sb strings.Builder
	sb.Grow(len(content))
	last := 0
	for _, m := range matches {
		// m[4]:m[5] is the block body.
		sb.WriteString(content[last:m[4]])
		body := content[m[4]:m[5]]
		if strings.TrimSpace(body) != "" {
			minified, err := assetMinifier.String(mediatype, body)
			if err != nil {
				return "", fmt.Errorf("minify %s: %w", mediatype, err)
			}
			body = minified
		}
		sb.WriteString(body)
		last = m[5]
	}
	sb.WriteString(content[last:])
	return sb.String(), nil
}
