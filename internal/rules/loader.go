// Package rules loads dispatch rule sets from declarative TOML files.
//
// A rules file names catalog predicates and an opaque action tag per rule:
//
//	[[rule]]
//	name = "save"
//	require = ["Mod1"]
//	exclude = ["Shift"]
//	action = "save"
//
// The caller supplies an ActionFunc sink; every loaded rule's callback
// forwards its action tag and the triggering event to that sink.
package rules

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keywatch/internal/catalog"
	"github.com/dshills/keywatch/internal/dispatch"
	"github.com/dshills/keywatch/internal/key"
)

// ErrUnknownPredicate indicates a rule referenced a predicate name the
// catalog does not have.
var ErrUnknownPredicate = errors.New("unknown predicate")

// ErrNoAction indicates a rule without an action tag.
var ErrNoAction = errors.New("rule has no action")

// ActionFunc receives the action tag of a matched rule and the event that
// triggered it.
type ActionFunc func(action string, ev key.Event) error

// Loader builds dispatch rules from TOML files, resolving predicate names
// through a catalog.
type Loader struct {
	catalog     *catalog.Catalog
	searchPaths []string
}

// NewLoader creates a loader resolving names against the given catalog.
// A nil catalog uses the default catalog.
func NewLoader(c *catalog.Catalog) *Loader {
	if c == nil {
		c = catalog.Default()
	}
	return &Loader{catalog: c}
}

// AddSearchPath adds a directory to search for rules files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads rules from a TOML file.
func (l *Loader) LoadFile(path string, action ActionFunc) ([]dispatch.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rules file: %w", err)
	}
	defer f.Close()

	rules, err := l.LoadReader(f, action)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return rules, nil
}

// LoadReader loads rules from a reader.
func (l *Loader) LoadReader(r io.Reader, action ActionFunc) ([]dispatch.Rule, error) {
	var file rulesFile
	if err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding rules: %w", err)
	}

	rules := make([]dispatch.Rule, 0, len(file.Rules))
	for i, rc := range file.Rules {
		rule, err := l.build(rc, action)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i, rc.Name, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// LoadAll loads rules from every *.toml file in the search paths.
// Unreadable files are skipped; files that parse but reference unknown
// predicates are errors.
func (l *Loader) LoadAll(action ActionFunc) ([]dispatch.Rule, error) {
	var rules []dispatch.Rule

	for _, dir := range l.searchPaths {
		matches, err := filepath.Glob(filepath.Join(dir, "*.toml"))
		if err != nil {
			continue
		}
		for _, path := range matches {
			loaded, err := l.LoadFile(path, action)
			if err != nil {
				if errors.Is(err, ErrUnknownPredicate) || errors.Is(err, ErrNoAction) {
					return nil, err
				}
				continue
			}
			rules = append(rules, loaded...)
		}
	}

	return rules, nil
}

// build resolves one rule config into a dispatch rule.
func (l *Loader) build(rc ruleConfig, action ActionFunc) (dispatch.Rule, error) {
	if rc.Action == "" {
		return dispatch.Rule{}, ErrNoAction
	}

	required, err := l.resolve(rc.Require)
	if err != nil {
		return dispatch.Rule{}, err
	}
	excluded, err := l.resolve(rc.Exclude)
	if err != nil {
		return dispatch.Rule{}, err
	}

	tag := rc.Action
	rule := dispatch.Rule{
		Name:        rc.Name,
		Required:    required,
		Excluded:    excluded,
		Description: rc.Description,
		Do: func(ev key.Event) error {
			if action == nil {
				return nil
			}
			return action(tag, ev)
		},
	}
	return rule, nil
}

// resolve maps predicate names through the catalog.
func (l *Loader) resolve(names []string) ([]catalog.Predicate, error) {
	preds := make([]catalog.Predicate, 0, len(names))
	for _, name := range names {
		p, ok := l.catalog.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("predicate %q: %w", name, ErrUnknownPredicate)
		}
		preds = append(preds, p)
	}
	return preds, nil
}

// rulesFile is the TOML structure for rules files.
type rulesFile struct {
	Rules []ruleConfig `toml:"rule"`
}

type ruleConfig struct {
	Name        string   `toml:"name"`
	Require     []string `toml:"require"`
	Exclude     []string `toml:"exclude"`
	Action      string   `toml:"action"`
	Description string   `toml:"description"`
}
