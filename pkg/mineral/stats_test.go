package mineral

import (
	"strings"
	"testing"
	"time"
)

func TestStatsReductionPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		output   int
		expected float64
	}{
		{"50% reduction", 100, 50, 50.0},
		{"0% reduction", 100, 100, 0.0},
		{"zero input", 0, 0, 0.0},
		{"growth", 100, 150, -50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStats()
			s.InputBytes = tt.input
			s.OutputBytes = tt.output

			if got := s.ReductionPercent(); got != tt.expected {
				t.Errorf("expected %.1f%%, got %.1f%%", tt.expected, got)
			}
		})
	}
}

func TestStatsAddStepAndLookup(t *testing.T) {
	s := NewStats()
	s.AddStep(StepMinify, true).Matches = 3
	s.AddStep(StepCSS, false)

	if rec := s.Step(StepMinify); rec == nil || rec.Matches != 3 {
		t.Errorf("Step(minify) = %+v", rec)
	}
	if s.Step("nonexistent") != nil {
		t.Error("expected nil for unknown step")
	}
}

func TestStatsString(t *testing.T) {
	s := NewStats()
	s.InputBytes = 2000
	s.OutputBytes = 1000
	rec := s.AddStep(StepMinify, true)
	rec.Matches = 4
	rec.BytesBefore = 2000
	rec.BytesAfter = 1000
	s.AddStep(StepCSS, false)
	s.TotalDuration = 3 * time.Millisecond

	out := s.String()
	for _, want := range []string{"2.0 kB -> 1.0 kB", "50.0% reduction", "minify  4 matches, 1000 bytes removed", "css     skipped", "total=3ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
}
