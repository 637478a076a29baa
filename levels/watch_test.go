package levels

import (
	"testing"
	"time"
)

func TestClassifyLevelFile(t *testing.T) {
	cases := []struct {
		path string
		kind EventKind
		ok   bool
	}{
		{"levels/default.yaml", SpecChanged, true},
		{"levels/other.YML", SpecChanged, true},
		{"levels/scripts/default.tengo", ScriptChanged, true},
		{"levels/scripts/default.tengo.swp", 0, false},
		{"levels/notes.txt", 0, false},
		{"levels", 0, false},
	}

	for _, c := range cases {
		kind, ok := classifyLevelFile(c.path)
		if ok != c.ok || (ok && kind != c.kind) {
			t.Errorf("classifyLevelFile(%q) = (%v, %v), want (%v, %v)", c.path, kind, ok, c.kind, c.ok)
		}
	}
}

func TestWatcherCloseReleasesChannels(t *testing.T) {
	w, err := NewWatcher(100*time.Millisecond, t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if _, ok := <-w.Events; ok {
		t.Fatalf("Events still open after Close")
	}
	if _, ok := <-w.Errors; ok {
		t.Fatalf("Errors still open after Close")
	}
}
