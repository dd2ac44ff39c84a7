package cleaner

// NoopCleaner passes content through without modification.
type NoopCleaner struct{}

// NewNoop creates a new no-op cleaner.
func NewNoop() *NoopCleaner {
	return &NoopCleaner{}
}

// Clean returns the input unchanged.
func (c *NoopCleaner) Clean(html string) (string, error) {
	return html, nil
}

// Name returns the cleaner type.
func (c *NoopCleaner) Name() string {
	return "noop"
}

// FuncCleaner adapts a plain string transformation to a Cleaner.
type FuncCleaner struct {
	name string
	fn   func(string) string
}

// NewFunc wraps fn as a Cleaner reporting the given name.
func NewFunc(name string, fn func(string) string) *FuncCleaner {
	return &FuncCleaner{name: name, fn: fn}
}

// Clean applies the wrapped function.
func (c *FuncCleaner) Clean(html string) (string, error) {
	return c.fn(html), nil
}

// Name returns the name given to NewFunc.
func (c *FuncCleaner) Name() string {
	return c.name
}
