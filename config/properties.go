package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/leeforge/logtree/level"
	"github.com/leeforge/logtree/pattern"
)

// LoadResult reports the outcome of loading a properties text: how many
// rules were applied and the per-line diagnostics for lines that were
// skipped. A non-empty Errors slice does not mean the load failed; the
// valid subset is always applied.
type LoadResult struct {
	RulesApplied int      `json:"rulesApplied"`
	Errors       []string `json:"errors,omitempty"`
}

// LoadText parses line-oriented `pattern=LEVEL` properties into the store.
// Blank lines and lines starting with '#' are ignored. Malformed lines are
// skipped individually and reported; one bad line never aborts the load.
func (s *Store) LoadText(text string) LoadResult {
	var res LoadResult

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: missing '=' in %q", i+1, line))
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: empty rule key", i+1))
			continue
		}
		if !pattern.ValidPattern(key) {
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: invalid pattern %q", i+1, key))
			continue
		}

		lvl, ok := level.Parse(value)
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: unknown level %q for %q", i+1, value, key))
			continue
		}

		if err := s.SetRule(key, lvl); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: %v", i+1, err))
			continue
		}
		res.RulesApplied++
	}

	return res
}

// LoadFile loads an explicit properties file path. A missing or unreadable
// file is an error, unlike discovery which silently falls back to the root
// default.
func (s *Store) LoadFile(path string) (LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("read logging config %s: %w", path, err)
	}
	return s.LoadText(string(data)), nil
}
