// Package ignore implements the pattern engine used to exclude paths from a
// scan. Patterns come from a built-in default list, command-line additions,
// and per-directory .gitignore files rebased to the scan root.
//
// Wildcard matching uses gobwas/glob compiled without a separator, so '*'
// and '?' span '/' (fnmatch semantics). A pattern like "src/*.json" therefore
// also matches "src/a/b.json"; directory-anchored rules never glob at all.
package ignore

import (
	"fmt"
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// Mode classifies how a pattern is matched against a relative path.
// The mode is fixed when the pattern is parsed and never reinterpreted.
type Mode int

const (
	// DirectoryAnchored patterns end with '/'. They match a directory at the
	// exact relative path, or anything nested below it, by plain string
	// comparison.
	DirectoryAnchored Mode = iota

	// RootAnchored patterns start with '/' (and do not end with one). They
	// are glob-matched against the full root-relative path.
	RootAnchored

	// NameGlob patterns carry no slash markers. They are glob-matched against
	// the entry's base name and, as a fallback, the full relative path.
	NameGlob
)

func (m Mode) String() string {
	switch m {
	case DirectoryAnchored:
		return "dir"
	case RootAnchored:
		return "rooted"
	default:
		return "name"
	}
}

// Pattern is a single ignore rule. Immutable once constructed.
type Pattern struct {
	raw  string
	mode Mode
	body string
	g    glob.Glob // compiled matcher; nil for DirectoryAnchored
}

// ParsePattern classifies a pattern literal and compiles its matcher.
// The mode is derived from the literal form: a trailing '/' makes it
// directory-anchored, a leading '/' makes it root-anchored, anything else
// is a bare name glob.
func ParsePattern(raw string) (Pattern, error) {
	if raw == "" {
		return Pattern{}, fmt.Errorf("empty ignore pattern")
	}

	p := Pattern{raw: raw}

	switch {
	case strings.HasSuffix(raw, "/"):
		p.mode = DirectoryAnchored
		p.body = strings.TrimLeft(strings.TrimRight(raw, "/"), "/")
		if p.body == "" {
			return Pattern{}, fmt.Errorf("ignore pattern %q has no body", raw)
		}
	case strings.HasPrefix(raw, "/"):
		p.mode = RootAnchored
		p.body = strings.TrimLeft(raw, "/")
	default:
		p.mode = NameGlob
		p.body = raw
	}

	if p.mode != DirectoryAnchored {
		g, err := glob.Compile(p.body)
		if err != nil {
			return Pattern{}, fmt.Errorf("ignore pattern %q: %w", raw, err)
		}
		p.g = g
	}

	return p, nil
}

// MustParsePattern is ParsePattern for known-good literals such as the
// built-in defaults.
func MustParsePattern(raw string) Pattern {
	p, err := ParsePattern(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Mode reports the pattern's matching mode.
func (p Pattern) Mode() Mode { return p.mode }

// String returns the original pattern literal.
func (p Pattern) String() string { return p.raw }

// Matches reports whether the pattern applies to relPath, a '/'-separated
// path relative to the scan root. isDir tells whether relPath names a
// directory. Matches never touches the filesystem.
func (p Pattern) Matches(relPath string, isDir bool) bool {
	switch p.mode {
	case DirectoryAnchored:
		if isDir && relPath == p.body {
			return true
		}
		return strings.HasPrefix(relPath, p.body+"/")
	case RootAnchored:
		return p.g.Match(relPath)
	default:
		return p.g.Match(path.Base(relPath)) || p.g.Match(relPath)
	}
}
