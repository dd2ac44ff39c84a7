package cleaner

import (
	"strings"

	"github.com/jmylchreest/mineral/internal/logger"
)

// ChainCleaner applies multiple cleaners in sequence.
type ChainCleaner struct {
	cleaners []Cleaner
}

// NewChain creates a cleaner that applies cleaners in the order provided.
// Nil entries are dropped.
//
// Example:
//
//	chain := cleaner.NewChain(
//	    mineral.New(mineral.Options{Script: true}),
//	    cleaner.NewFunc("trim", strings.TrimSpace),
//	)
func NewChain(cleaners ...Cleaner) *ChainCleaner {
	kept := make([]Cleaner, 0, len(cleaners))
	for _, c := range cleaners {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &ChainCleaner{
		cleaners: kept,
	}
}

// Clean applies all cleaners in sequence. The first error stops the chain.
func (c *ChainCleaner) Clean(content string) (string, error) {
	var err error
	for _, cleaner := range c.cleaners {
		content, err = cleaner.Clean(content)
		if err != nil {
			logger.Debug("cleaner failed", "cleaner", cleaner.Name(), "error", err)
			return "", err
		}
	}
	return content, nil
}

// Len returns the number of cleaners in the chain.
func (c *ChainCleaner) Len() int {
	return len(c.cleaners)
}

// Name returns the names of all chained cleaners.
func (c *ChainCleaner) Name() string {
	names := make([]string, len(c.cleaners))
	for i, cleaner := range c.cleaners {
		names[i] = cleaner.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
