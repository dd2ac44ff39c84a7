package version

import (
	"strings"
	"testing"
)

func TestString_Dirty(t *testing.T) {
	oldVersion, oldDirty := Version, Dirty
	defer func() { Version, Dirty = oldVersion, oldDirty }()

	Version = "1.2.3"
	Dirty = "false"
	if got := String(); got != "1.2.3" {
		t.Errorf("String() = %q", got)
	}

	Dirty = "true"
	if got := String(); got != "1.2.3-dirty" {
		t.Errorf("String() = %q", got)
	}
	if !Get().Dirty {
		t.Error("Get().Dirty should be true")
	}
}

func TestFull(t *testing.T) {
	out := Full()
	for _, want := range []string{"mineral ", "Commit:", "Go version:", "OS/Arch:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Full() missing %q:\n%s", want, out)
		}
	}
}
