package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// GitignoreName is the per-directory ignore file consulted during a scan.
const GitignoreName = ".gitignore"

// LoadGitignore reads the .gitignore in dir, if any, and rebases its rules so
// they apply relative to root. It returns nil when the file is missing or
// unreadable; a broken .gitignore simply contributes no patterns.
//
// Rebasing follows the rule body (the line with trailing slashes removed):
//
//   - A body containing '/' is anchored to the directory that declared it.
//     "build/out" inside src/ becomes "/src/build/out"; a trailing slash on
//     the original line is preserved, so "temp/sub/" becomes "/src/temp/sub/".
//   - A body without '/' stays a bare name rule that applies at any depth
//     below the declaring directory; "temp/" becomes "temp".
func LoadGitignore(dir, root string, logger *zap.Logger) []Pattern {
	data, err := os.ReadFile(filepath.Join(dir, GitignoreName))
	if err != nil {
		return nil
	}

	relParent, err := filepath.Rel(root, dir)
	if err != nil {
		logger.Warn("cannot rebase .gitignore",
			zap.String("dir", dir),
			zap.Error(err))
		return nil
	}
	relParent = filepath.ToSlash(relParent)
	if relParent == "." {
		relParent = ""
	}

	var patterns []Pattern
	for _, line := range strings.Split(string(data), "\n") {
		// Everything after '#' is a comment; no escaping is supported.
		line, _, _ = strings.Cut(line, "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		body := strings.TrimRight(line, "/")
		if body == "" {
			continue
		}

		raw := body
		if strings.Contains(body, "/") {
			clean := strings.TrimLeft(line, "/")
			if relParent != "" {
				raw = "/" + relParent + "/" + clean
			} else {
				raw = "/" + clean
			}
		}

		p, err := ParsePattern(raw)
		if err != nil {
			logger.Warn("skipping unparsable .gitignore line",
				zap.String("dir", dir),
				zap.String("line", line),
				zap.Error(err))
			continue
		}
		patterns = append(patterns, p)
	}

	return patterns
}
