package selector

import (
	"strings"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// DefaultSuffix is the file extension of Solus binary packages.
const DefaultSuffix = "eopkg"

// PatternSet is a compiled, validated collection of glob patterns. A name
// matches the set if it matches at least one pattern. The zero value matches
// nothing.
type PatternSet struct {
	patterns []string
}

// CompileAll returns a set holding the single wildcard that matches every
// file with the given suffix.
func CompileAll(suffix string) *PatternSet {
	return &PatternSet{patterns: []string{"*." + normalizeSuffix(suffix)}}
}

// Compile builds a set with one prefix pattern {name}*.{suffix} per name.
// An empty names slice yields a set that matches nothing.
func Compile(names []string, suffix string) (*PatternSet, error) {
	suffix = normalizeSuffix(suffix)
	set := &PatternSet{patterns: make([]string, 0, len(names))}
	for _, name := range names {
		pattern := name + "*." + suffix
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Wrapf(doublestar.ErrBadPattern, errors.ErrPatternSyntax,
				"invalid package pattern %q", name).
				WithDetail("pattern", pattern)
		}
		set.patterns = append(set.patterns, pattern)
	}
	return set, nil
}

// Match reports whether name matches any pattern in the set.
func (s *PatternSet) Match(name string) bool {
	if s == nil {
		return false
	}
	for _, pattern := range s.patterns {
		// patterns are validated at compile time
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Patterns returns the compiled glob strings.
func (s *PatternSet) Patterns() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.patterns))
	copy(out, s.patterns)
	return out
}

func normalizeSuffix(suffix string) string {
	suffix = strings.TrimPrefix(suffix, ".")
	if suffix == "" {
		return DefaultSuffix
	}
	return suffix
}
