package ignore

// Set is an ordered collection of patterns. A path is ignored when any
// pattern matches; order is preserved only for determinism and debugging.
//
// Sets are extended, never mutated: each directory level of a scan derives
// its own Set from its parent's, so sibling branches can never observe each
// other's .gitignore rules.
type Set struct {
	patterns []Pattern
}

// NewSet builds a Set from the given patterns.
func NewSet(patterns ...Pattern) *Set {
	ps := make([]Pattern, len(patterns))
	copy(ps, patterns)
	return &Set{patterns: ps}
}

// Extend returns a new Set holding the receiver's patterns followed by more.
// The receiver is left untouched.
func (s *Set) Extend(more []Pattern) *Set {
	if len(more) == 0 {
		return s
	}
	ps := make([]Pattern, 0, len(s.patterns)+len(more))
	ps = append(ps, s.patterns...)
	ps = append(ps, more...)
	return &Set{patterns: ps}
}

// Len reports the number of patterns in the set.
func (s *Set) Len() int { return len(s.patterns) }

// Matches reports whether relPath is ignored by any pattern in the set.
func (s *Set) Matches(relPath string, isDir bool) bool {
	ok, _ := s.Match(relPath, isDir)
	return ok
}

// Match is Matches plus the first pattern that decided the outcome,
// for diagnostics.
func (s *Set) Match(relPath string, isDir bool) (bool, Pattern) {
	for _, p := range s.patterns {
		if p.Matches(relPath, isDir) {
			return true, p
		}
	}
	return false, Pattern{}
}
