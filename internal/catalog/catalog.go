package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/keywatch/internal/platform"
)

// Catalog maps predicate names to predicates. It is safe for concurrent
// use; lookups take a read lock so registration during setup does not race
// with dispatch.
type Catalog struct {
	mu       sync.RWMutex
	preds    map[string]Predicate
	detector *platform.Detector
}

// New creates a catalog with the builtin predicates registered, with
// OS-aware entries bound to the given detector. A nil detector uses the
// default ambient detector.
func New(d *platform.Detector) *Catalog {
	if d == nil {
		d = platform.Default
	}

	c := &Catalog{
		preds:    make(map[string]Predicate),
		detector: d,
	}

	builtins := map[string]Predicate{
		"Enter":      Enter,
		"Backspace":  Backspace,
		"Shift":      Shift,
		"Escape":     Escape,
		"Tab":        Tab,
		"Control":    Control,
		"Meta":       Meta,
		"Alt":        Alt,
		"Spacebar":   Spacebar,
		"Up":         Up,
		"Down":       Down,
		"Left":       Left,
		"Right":      Right,
		"CtrlWin":    CtrlWinOn(d),
		"WindowsKey": WindowsKeyOn(d),
		"CtrlMac":    CtrlMacOn(d),
		"Command":    CommandOn(d),
		"Mod1":       Mod1On(d),
		"Mod2":       Mod2On(d),
	}
	for name, p := range builtins {
		c.preds[name] = p
	}

	return c
}

// Detector returns the platform detector the OS-aware entries are bound to.
func (c *Catalog) Detector() *platform.Detector {
	return c.detector
}

// Register adds a named predicate. An existing entry with the same name is
// replaced, which is how callers override a builtin.
func (c *Catalog) Register(name string, p Predicate) error {
	if name == "" {
		return fmt.Errorf("cannot register predicate with empty name")
	}
	if p == nil {
		return fmt.Errorf("cannot register nil predicate %q", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.preds[name] = p
	return nil
}

// Lookup returns the predicate registered under name.
func (c *Catalog) Lookup(name string) (Predicate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.preds[name]
	return p, ok
}

// Names returns all registered predicate names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.preds))
	for name := range c.preds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultCatalog holds the builtins bound to the ambient platform detector.
var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared catalog bound to the default platform detector.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(platform.Default)
	})
	return defaultCatalog
}
