package flatten

import "strings"

// ExtensionSet is the allowlist of file name suffixes eligible for
// collection. Entries are stored lower-cased with any leading dots removed;
// extensionless names like "makefile" are looked up as whole names.
type ExtensionSet map[string]struct{}

// NewExtensionSet normalizes names into an ExtensionSet.
func NewExtensionSet(names []string) ExtensionSet {
	s := make(ExtensionSet, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimLeft(strings.TrimSpace(n), "."))
		if n != "" {
			s[n] = struct{}{}
		}
	}
	return s
}

// Remove drops names from the set, normalizing them the same way as
// NewExtensionSet.
func (s ExtensionSet) Remove(names []string) {
	for _, n := range names {
		n = strings.ToLower(strings.TrimLeft(strings.TrimSpace(n), "."))
		delete(s, n)
	}
}

// Allows reports whether a file name is eligible: either the whole
// lower-cased name is in the set, or the suffix after the last '.' is.
// Names without a dot have an empty suffix and only qualify by whole name.
func (s ExtensionSet) Allows(fileName string) bool {
	lower := strings.ToLower(fileName)
	if _, ok := s[lower]; ok {
		return true
	}
	i := strings.LastIndexByte(lower, '.')
	if i < 0 {
		return false
	}
	_, ok := s[lower[i+1:]]
	return ok
}
