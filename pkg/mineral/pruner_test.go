package mineral

import (
	"sync"
	"testing"
)

func TestPruner_DefaultsAndOverrides(t *testing.T) {
	p := New(Options{Style: true})
	input := `<style>a{}</style><p style="a">x</p><script>b()</script>`

	got, err := p.Process(input)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got != `<p style="a">x</p><script>b()</script>` {
		t.Errorf("Process() = %q", got)
	}

	got, err = p.Process(input, WithCSS(true), WithScript(true), WithStyle(false))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got != `<style>a{}</style><p>x</p><script></script>` {
		t.Errorf("Process() with overrides = %q", got)
	}

	p.Override(WithScript(true))
	if opts := p.Options(); !opts.Style || !opts.Script || opts.CSS {
		t.Errorf("Options() after Override = %+v", opts)
	}
}

func TestPruner_Cleaner(t *testing.T) {
	p := New(Options{Script: true})
	if p.Name() != "mineral" {
		t.Errorf("Name() = %q", p.Name())
	}
	got, err := p.Clean("<script>x()</script>\n")
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != "<script></script>" {
		t.Errorf("Clean() = %q", got)
	}
}

func TestPruner_Concurrent(t *testing.T) {
	p := New(Options{CSS: true, Style: true, Script: true})
	input := "<div style=\"a\">\n<style>b{}</style><script>c()</script></div>"
	want, _ := p.Process(input)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Process(input)
			if err != nil || got != want {
				t.Errorf("concurrent Process() = %q, %v", got, err)
			}
		}()
	}
	wg.Wait()
}

func TestOptionsMerge(t *testing.T) {
	base := Options{CSS: true}
	merged := base.Merge(WithStyle(true), nil, WithCSS(false))

	if merged.CSS || !merged.Style {
		t.Errorf("Merge() = %+v", merged)
	}
	if !base.CSS {
		t.Error("Merge() mutated the receiver")
	}
}
