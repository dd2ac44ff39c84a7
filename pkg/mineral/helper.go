package mineral

import (
	"sync/atomic"

	"github.com/jmylchreest/mineral/internal/logger"
)

// Body is the host's rendered output buffer.
type Body interface {
	GetRenderedBody() string
	SetRenderedBody(content string)
}

// Helper integrates the pipeline with a rendering host. The host calls
// AfterLayout once a page has been rendered; while automatic processing is
// enabled the rendered body is replaced with its pruned form.
//
// Disabling is useful for a single page that must not be touched, or when
// only selected fragments should be pruned through Process.
type Helper struct {
	pruner   *Pruner
	disabled atomic.Bool
}

// NewHelper returns a Helper with automatic processing enabled.
func NewHelper(defaults Options) *Helper {
	return &Helper{pruner: New(defaults)}
}

// Enable turns automatic processing on.
func (h *Helper) Enable() {
	h.disabled.Store(false)
}

// Disable turns automatic processing off.
func (h *Helper) Disable() {
	h.disabled.Store(true)
}

// Enabled reports whether AfterLayout prunes the body.
func (h *Helper) Enabled() bool {
	return !h.disabled.Load()
}

// Override changes the defaults used by AfterLayout and Process.
func (h *Helper) Override(opts ...Option) {
	h.pruner.Override(opts...)
}

// Options returns the helper's current defaults.
func (h *Helper) Options() Options {
	return h.pruner.Options()
}

// Process prunes a fragment with the helper defaults merged with opts.
// It works whether or not automatic processing is enabled.
func (h *Helper) Process(content string, opts ...Option) (string, error) {
	return h.pruner.Process(content, opts...)
}

// Minify applies only the base minification step.
func (h *Helper) Minify(content string) string {
	return Minify(content)
}

// AfterLayout prunes the rendered body in place. On a hook error the body
// is left as rendered and the error is returned.
func (h *Helper) AfterLayout(body Body) error {
	if !h.Enabled() {
		logger.Debug("automatic pruning disabled, leaving body untouched")
		return nil
	}

	content, err := h.pruner.Process(body.GetRenderedBody())
	if err != nil {
		return err
	}
	body.SetRenderedBody(content)
	return nil
}
