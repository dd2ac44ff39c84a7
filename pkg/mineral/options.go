// Package mineral shrinks rendered HTML output with a fixed pipeline of
// textual substitutions: whitespace collapsing, comment stripping and
// optional removal of inline styles, <style> blocks and inline script bodies.
//
// The pipeline never parses the document. It is tolerant of malformed or
// partial markup and cannot fail on its own; the only errors it returns come
// from caller-supplied hooks.
package mineral

// Hook transforms a document at a fixed point in the pipeline.
// A nil Hook means the step is skipped.
type Hook func(content string) (string, error)

// Options controls which optional steps run.
type Options struct {
	// CSS removes double-quoted style="..." attributes.
	CSS bool `json:"css"`

	// Style removes <style>...</style> blocks including their content.
	Style bool `json:"style"`

	// Script empties the body of every <script>...</script> block,
	// keeping the tags and their attributes.
	Script bool `json:"script"`

	// BeforePruning runs before any minification.
	BeforePruning Hook `json:"-"`

	// AfterPruning runs after all other steps.
	AfterPruning Hook `json:"-"`
}

// Option overrides a single field of Options.
type Option func(*Options)

// WithCSS sets the inline style attribute pruning flag.
func WithCSS(enabled bool) Option {
	return func(o *Options) {
		o.CSS = enabled
	}
}

// WithStyle sets the <style> block pruning flag.
func WithStyle(enabled bool) Option {
	return func(o *Options) {
		o.Style = enabled
	}
}

// WithScript sets the inline script pruning flag.
func WithScript(enabled bool) Option {
	return func(o *Options) {
		o.Script = enabled
	}
}

// WithBeforePruning sets the hook run before minification.
func WithBeforePruning(h Hook) Option {
	return func(o *Options) {
		o.BeforePruning = h
	}
}

// WithAfterPruning sets the hook run after all pruning steps.
func WithAfterPruning(h Hook) Option {
	return func(o *Options) {
		o.AfterPruning = h
	}
}

// Merge returns a copy of o with opts applied in order.
// Later options win; fields no option touches keep their value from o.
func (o Options) Merge(opts ...Option) Options {
	merged := o
	for _, opt := range opts {
		if opt != nil {
			opt(&merged)
		}
	}
	return merged
}
