package mineral

import "sync"

// Pruner runs the pipeline with a set of default options that individual
// calls may override. It is safe for concurrent use.
type Pruner struct {
	mu       sync.RWMutex
	defaults Options
}

// New creates a Pruner with the given defaults.
func New(defaults Options) *Pruner {
	return &Pruner{defaults: defaults}
}

// Options returns the current defaults.
func (p *Pruner) Options() Options {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.defaults
}

// Override applies opts to the defaults used by later calls.
func (p *Pruner) Override(opts ...Option) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.defaults = p.defaults.Merge(opts...)
}

// Process runs the pipeline with the defaults merged with opts.
func (p *Pruner) Process(content string, opts ...Option) (string, error) {
	return Process(content, p.Options().Merge(opts...))
}

// ProcessWithStats is Process with per-step statistics.
func (p *Pruner) ProcessWithStats(content string, opts ...Option) (*Result, error) {
	return ProcessWithStats(content, p.Options().Merge(opts...))
}

// Clean runs the pipeline with the defaults. It lets a Pruner be used
// wherever a cleaner.Cleaner is expected.
func (p *Pruner) Clean(html string) (string, error) {
	return p.Process(html)
}

// Name returns the cleaner type.
func (p *Pruner) Name() string {
	return "mineral"
}
