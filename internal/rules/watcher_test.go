package rules

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/keywatch/internal/dispatch"
	"github.com/dshills/keywatch/internal/key"
)

func writeRules(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")
	writeRules(t, path, `
[[rule]]
name = "confirm"
require = ["Enter"]
action = "confirm"
`)

	loader := NewLoader(testCatalog())
	d := dispatch.NewDispatcher()

	initial, err := loader.LoadFile(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	d.SetRules(initial)
	if d.Len() != 1 {
		t.Fatalf("initial Len() = %d, want 1", d.Len())
	}

	w, err := WatchFile(path, loader, nil, d, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("WatchFile() error = %v", err)
	}
	defer w.Close()

	writeRules(t, path, `
[[rule]]
name = "confirm"
require = ["Enter"]
action = "confirm"

[[rule]]
name = "quit"
require = ["Escape"]
action = "quit"
`)

	if !waitFor(t, 3*time.Second, func() bool { return d.Len() == 2 }) {
		t.Fatalf("rule set not reloaded: Len() = %d, want 2", d.Len())
	}
}

func TestWatcherKeepsOldRulesOnBadReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")
	writeRules(t, path, `
[[rule]]
name = "confirm"
require = ["Enter"]
action = "confirm"
`)

	loader := NewLoader(testCatalog())
	d := dispatch.NewDispatcher()
	initial, err := loader.LoadFile(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	d.SetRules(initial)

	errCh := make(chan error, 1)
	w, err := WatchFile(path, loader, nil, d,
		WithDebounce(20*time.Millisecond),
		WithErrorHandler(func(err error) {
			select {
			case errCh <- err:
			default:
			}
		}))
	if err != nil {
		t.Fatalf("WatchFile() error = %v", err)
	}
	defer w.Close()

	writeRules(t, path, "[[rule\nbroken")

	select {
	case <-errCh:
	case <-time.After(3 * time.Second):
		t.Fatal("error handler not called for broken rules file")
	}

	if d.Len() != 1 {
		t.Errorf("Len() = %d after failed reload, want previous rule set kept (1)", d.Len())
	}
	if err := d.Dispatch(key.NewEvent(key.Enter)); err != nil {
		t.Errorf("Dispatch() error = %v", err)
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")
	writeRules(t, path, `
[[rule]]
require = ["Enter"]
action = "confirm"
`)

	w, err := WatchFile(path, NewLoader(testCatalog()), nil, dispatch.NewDispatcher())
	if err != nil {
		t.Fatalf("WatchFile() error = %v", err)
	}
	if got := w.Path(); filepath.Base(got) != "rules.toml" {
		t.Errorf("Path() = %q", got)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	// Second close is a no-op.
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
