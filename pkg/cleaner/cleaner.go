// Package cleaner provides a common interface for HTML content transformers,
// so that a mineral.Pruner can be composed with other processing stages.
package cleaner

// Cleaner transforms HTML content.
type Cleaner interface {
	// Clean transforms the input HTML. Implementations must not modify
	// shared state, so a Cleaner may be reused across documents.
	Clean(html string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
