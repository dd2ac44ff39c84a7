package mineral

import (
	"regexp"
	"time"

	"github.com/jmylchreest/mineral/internal/logger"
)

// Step names, in pipeline order.
const (
	StepBefore = "before"
	StepMinify = "minify"
	StepCSS    = "css"
	StepStyle  = "style"
	StepScript = "script"
	StepAfter  = "after"
)

type step struct {
	name    string
	enabled func(Options) bool
	apply   func(string, Options) (string, error)
	matches func(string) int
}

// steps is the fixed pipeline. Options only decide whether a step runs,
// never where it runs.
var steps = []step{
	{
		name:    StepBefore,
		enabled: func(o Options) bool { return o.BeforePruning != nil },
		apply:   func(c string, o Options) (string, error) { return o.BeforePruning(c) },
	},
	{
		name:    StepMinify,
		enabled: func(Options) bool { return true },
		apply:   pure(Minify),
		matches: countMinify,
	},
	{
		name:    StepCSS,
		enabled: func(o Options) bool { return o.CSS },
		apply:   pure(PruneInlineCSS),
		matches: counter(reStyleAttr),
	},
	{
		name:    StepStyle,
		enabled: func(o Options) bool { return o.Style },
		apply:   pure(PruneStyleTags),
		matches: counter(reStyleTag),
	},
	{
		name:    StepScript,
		enabled: func(o Options) bool { return o.Script },
		apply:   pure(PruneInlineScripts),
		matches: counter(reScriptBody),
	},
	{
		name:    StepAfter,
		enabled: func(o Options) bool { return o.AfterPruning != nil },
		apply:   func(c string, o Options) (string, error) { return o.AfterPruning(c) },
	},
}

// StepNames returns the pipeline step names in execution order.
func StepNames() []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.name
	}
	return names
}

// Process runs the pipeline over content.
//
// The returned error is always one returned by a hook, passed through
// unchanged. When a hook fails the result is empty; steps that already ran
// are not undone.
func Process(content string, opts Options) (string, error) {
	result, err := run(content, opts, false)
	if err != nil {
		return "", err
	}
	return result.Content, nil
}

// ProcessWithStats runs the pipeline like Process and also reports what
// each step did.
func ProcessWithStats(content string, opts Options) (*Result, error) {
	return run(content, opts, true)
}

func run(content string, opts Options, withStats bool) (*Result, error) {
	result := &Result{}
	var start time.Time
	if withStats {
		result.Stats = NewStats()
		result.Stats.InputBytes = len(content)
		start = time.Now()
	}

	for _, s := range steps {
		if !s.enabled(opts) {
			if withStats {
				result.Stats.AddStep(s.name, false)
			}
			continue
		}

		var rec *StepStats
		var stepStart time.Time
		if withStats {
			rec = result.Stats.AddStep(s.name, true)
			rec.BytesBefore = len(content)
			if s.matches != nil {
				rec.Matches = s.matches(content)
			}
			stepStart = time.Now()
		}

		out, err := s.apply(content, opts)
		if err != nil {
			logger.Debug("pruning hook failed", "step", s.name, "error", err)
			return nil, err
		}
		content = out

		if withStats {
			rec.BytesAfter = len(content)
			rec.Duration = time.Since(stepStart)
			logger.Debug("pruning step applied",
				"step", s.name,
				"matches", rec.Matches,
				"bytes_before", rec.BytesBefore,
				"bytes_after", rec.BytesAfter)
		}
	}

	result.Content = content
	if withStats {
		result.Stats.OutputBytes = len(content)
		result.Stats.TotalDuration = time.Since(start)
	}
	return result, nil
}

func pure(fn func(string) string) func(string, Options) (string, error) {
	return func(c string, _ Options) (string, error) {
		return fn(c), nil
	}
}

func counter(re *regexp.Regexp) func(string) int {
	return func(c string) int {
		return countMatches(re, c)
	}
}

func countMatches(re *regexp.Regexp, content string) int {
	return len(re.FindAllStringIndex(content, -1))
}
