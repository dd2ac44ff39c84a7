package mineral

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// StepStats records what a single pipeline step did.
type StepStats struct {
	Name        string        `json:"name" yaml:"name"`
	Enabled     bool          `json:"enabled" yaml:"enabled"`
	Matches     int           `json:"matches" yaml:"matches"`
	BytesBefore int           `json:"bytes_before" yaml:"bytes_before"`
	BytesAfter  int           `json:"bytes_after" yaml:"bytes_after"`
	Duration    time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// BytesRemoved returns how much the step shrank the document.
// Hooks may grow it, in which case the value is negative.
func (s *StepStats) BytesRemoved() int {
	return s.BytesBefore - s.BytesAfter
}

// Stats captures metrics about a pipeline run.
type Stats struct {
	InputBytes    int           `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes   int           `json:"output_bytes" yaml:"output_bytes"`
	Steps         []*StepStats  `json:"steps" yaml:"steps"`
	TotalDuration time.Duration `json:"total_duration_ns" yaml:"total_duration_ns"`
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{
		Steps: make([]*StepStats, 0, len(steps)),
	}
}

// AddStep appends a record for the named step and returns it.
func (s *Stats) AddStep(name string, enabled bool) *StepStats {
	rec := &StepStats{Name: name, Enabled: enabled}
	s.Steps = append(s.Steps, rec)
	return rec
}

// Step returns the record for the named step, or nil.
func (s *Stats) Step(name string) *StepStats {
	for _, rec := range s.Steps {
		if rec.Name == name {
			return rec
		}
	}
	return nil
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %s -> %s (%.1f%% reduction)\n",
		humanize.Bytes(uint64(s.InputBytes)),
		humanize.Bytes(uint64(s.OutputBytes)),
		s.ReductionPercent()))

	for _, rec := range s.Steps {
		if !rec.Enabled {
			sb.WriteString(fmt.Sprintf("  %-7s skipped\n", rec.Name))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-7s %d matches, %d bytes removed\n",
			rec.Name, rec.Matches, rec.BytesRemoved()))
	}

	sb.WriteString(fmt.Sprintf("Timing: total=%v\n", s.TotalDuration.Round(time.Microsecond)))

	return sb.String()
}

// Result contains the output of a pipeline run.
type Result struct {
	Content string `json:"content" yaml:"content"`
	Stats   *Stats `json:"stats" yaml:"stats"`
}
