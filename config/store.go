// Package config holds the rule set that decides which minimum severity
// applies to a logger name. Rules are keyed by pattern (exact, wildcard
// prefix, or root) and resolution follows most-specific-wins: an exact rule
// outranks any wildcard, longer wildcard prefixes outrank shorter ones, and
// the root default applies when nothing else matches.
package config

import (
	"fmt"
	"sort"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/leeforge/logtree/level"
	"github.com/leeforge/logtree/pattern"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultRootLevel is the baseline applied when no configuration is loaded
// and after Clear.
const DefaultRootLevel = level.Info

// Rule is one (pattern, level) pair as held by the store.
type Rule struct {
	Pattern string      `json:"pattern"`
	Level   level.Level `json:"level"`
}

// Store answers ResolveLevel queries against the current rule set.
// Resolution is a pure function of the rules; it carries no call history.
// All methods are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	exact    map[string]level.Level
	wildcard map[string]level.Level // keyed by normalized literal prefix
	root     level.Level
}

// NewStore creates an empty store with the root default at Info.
func NewStore() *Store {
	return &Store{
		exact:    make(map[string]level.Level),
		wildcard: make(map[string]level.Level),
		root:     DefaultRootLevel,
	}
}

// SetRule upserts the level for a pattern. The root key replaces the root
// default. Setting the same pattern again replaces the previous level.
func (s *Store) SetRule(p string, lvl level.Level) error {
	if !pattern.ValidPattern(p) {
		return fmt.Errorf("invalid rule pattern %q", p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	norm := pattern.Normalize(p)
	switch {
	case norm == pattern.Root:
		s.root = lvl
	case pattern.IsWildcard(norm):
		s.wildcard[pattern.Prefix(norm)] = lvl
	default:
		s.exact[norm] = lvl
	}
	return nil
}

// DeleteRule removes the rule for a pattern and reports whether one
// existed. The root default cannot be deleted, only reassigned.
func (s *Store) DeleteRule(p string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	norm := pattern.Normalize(p)
	if pattern.IsWildcard(norm) {
		prefix := pattern.Prefix(norm)
		if _, ok := s.wildcard[prefix]; ok {
			delete(s.wildcard, prefix)
			return true
		}
		return false
	}
	if _, ok := s.exact[norm]; ok {
		delete(s.exact, norm)
		return true
	}
	return false
}

// ResolveLevel returns the level that applies to a logger name. An exact
// rule wins outright; otherwise the wildcard with the longest matching
// prefix wins; otherwise the root default. Two wildcard rules of equal
// specificity that match the same name necessarily share the same prefix,
// so the longest-prefix scan is deterministic.
func (s *Store) ResolveLevel(name string) level.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()

	norm := pattern.Normalize(name)
	if lvl, ok := s.exact[norm]; ok {
		return lvl
	}

	best := -1
	lvl := s.root
	for prefix, wl := range s.wildcard {
		if !pattern.Matches(prefix+".*", norm) {
			continue
		}
		if spec := pattern.Specificity(prefix); spec > best {
			best = spec
			lvl = wl
		}
	}
	return lvl
}

// Clear removes all rules and restores the root default to Info.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exact = make(map[string]level.Level)
	s.wildcard = make(map[string]level.Level)
	s.root = DefaultRootLevel
}

// Root returns the root default level.
func (s *Store) Root() level.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// SetRoot replaces the root default level.
func (s *Store) SetRoot(lvl level.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = lvl
}

// Rules returns a sorted snapshot of the rule set, the root default
// included, for introspection and debug dumps.
func (s *Store) Rules() []Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules := make([]Rule, 0, len(s.exact)+len(s.wildcard)+1)
	rules = append(rules, Rule{Pattern: pattern.Root, Level: s.root})
	for p, lvl := range s.exact {
		rules = append(rules, Rule{Pattern: p, Level: lvl})
	}
	for p, lvl := range s.wildcard {
		rules = append(rules, Rule{Pattern: p + ".*", Level: lvl})
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Pattern < rules[j].Pattern
	})
	return rules
}

// MarshalJSON dumps the rule snapshot as a JSON array.
func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Rules())
}
