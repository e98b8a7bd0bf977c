// Package pattern implements matching of dotted logger names against
// configuration rule patterns. A pattern is an exact name
// ("app.database.orders"), a wildcard prefix ("app.database.*") covering
// everything nested beneath the prefix, or the special key "root" which
// matches every name as the weakest possible match.
package pattern

import "strings"

// Root is the rule key that applies to every logger name.
const Root = "root"

// wildcardSuffix marks a pattern as a prefix wildcard.
const wildcardSuffix = ".*"

// IsWildcard reports whether the pattern ends in a wildcard segment.
func IsWildcard(pattern string) bool {
	return strings.HasSuffix(pattern, wildcardSuffix)
}

// Prefix returns the literal prefix of a wildcard pattern, or the pattern
// itself when it carries no wildcard.
func Prefix(pattern string) string {
	return strings.TrimSuffix(pattern, wildcardSuffix)
}

// Normalize lowercases a pattern or name for matching. Identity and caching
// keep the original spelling; only rule matching is case-insensitive.
func Normalize(s string) string {
	return strings.ToLower(s)
}

// Matches reports whether the pattern applies to the given logger name.
// An exact pattern matches only the identical name. A wildcard pattern
// "P.*" matches names nested beneath P but never the bare P itself.
// Root matches everything.
func Matches(pattern, name string) bool {
	pattern = Normalize(pattern)
	name = Normalize(name)

	if pattern == Root {
		return true
	}
	if IsWildcard(pattern) {
		return strings.HasPrefix(name, Prefix(pattern)+".")
	}
	return pattern == name
}

// Specificity returns the number of literal segments in the pattern, the
// wildcard segment excluded. Root has specificity -1 so that any concrete
// rule outranks it.
func Specificity(pattern string) int {
	if Normalize(pattern) == Root {
		return -1
	}
	p := Prefix(pattern)
	if p == "" {
		return 0
	}
	return strings.Count(p, ".") + 1
}

// ValidName reports whether a logger name is well formed: empty (the root
// logger) or dot-separated with no empty segments.
func ValidName(name string) bool {
	if name == "" {
		return true
	}
	for _, seg := range strings.Split(name, ".") {
		if seg == "" {
			return false
		}
	}
	return true
}

// ValidPattern reports whether a rule pattern is well formed: the root key,
// a valid non-empty name, or a valid non-empty name followed by ".*".
func ValidPattern(pattern string) bool {
	if Normalize(pattern) == Root {
		return true
	}
	p := Prefix(pattern)
	return p != "" && ValidName(p)
}
