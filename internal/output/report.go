package output

import (
	"time"

	"github.com/jmylchreest/mineral/pkg/mineral"
)

// Report describes one pruned document.
type Report struct {
	Source    string         `json:"source" yaml:"source"`
	Title     string         `json:"title,omitempty" yaml:"title,omitempty"`
	Options   ReportOptions  `json:"options" yaml:"options"`
	Stats     *mineral.Stats `json:"stats" yaml:"stats"`
	Reduction float64        `json:"reduction_percent" yaml:"reduction_percent"`
	CreatedAt time.Time      `json:"created_at" yaml:"created_at"`
}

// ReportOptions is the serializable part of mineral.Options.
type ReportOptions struct {
	CSS    bool     `json:"css" yaml:"css"`
	Style  bool     `json:"style" yaml:"style"`
	Script bool     `json:"script" yaml:"script"`
	Before []string `json:"before_pruning,omitempty" yaml:"before_pruning,omitempty"`
	After  []string `json:"after_pruning,omitempty" yaml:"after_pruning,omitempty"`
}

// NewReport builds a report for source. before and after name the hooks
// that were configured, since functions themselves cannot be serialized.
func NewReport(source string, opts mineral.Options, before, after []string, stats *mineral.Stats) *Report {
	r := &Report{
		Source: source,
		Options: ReportOptions{
			CSS:    opts.CSS,
			Style:  opts.Style,
			Script: opts.Script,
			Before: before,
			After:  after,
		},
		Stats:     stats,
		CreatedAt: time.Now().UTC(),
	}
	if stats != nil {
		r.Reduction = stats.ReductionPercent()
	}
	return r
}
