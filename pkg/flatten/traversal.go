package flatten

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/levmv/src2file/pkg/ignore"
)

// CollectedFile is one accepted file: its root-relative path (always with
// '/' separators) and decoded text content.
type CollectedFile struct {
	Path    string
	Content string
}

// candidate is a file that passed every traversal filter and is waiting to
// have its content read.
type candidate struct {
	absPath string
	relPath string
}

// collectCandidates walks dir depth-first and returns the files below it that
// pass the ignore, size, and extension filters. Each call derives its own
// ignore set from the inherited one plus the directory's own .gitignore and
// returns a freshly built slice; nothing is shared across branches.
//
// Listing errors abort only the affected subtree.
func collectCandidates(dir, root string, inherited *ignore.Set, exts ExtensionSet, maxSize int64, logger *zap.Logger) []candidate {
	set := inherited.Extend(ignore.LoadGitignore(dir, root, logger))

	// os.ReadDir returns entries in case-sensitive byte order, which fixes
	// the traversal order at every level.
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("cannot list directory",
			zap.String("dir", dir),
			zap.Error(err))
		return nil
	}

	var out []candidate
	for _, entry := range entries {
		name := entry.Name()

		// Hidden entries and symlinks are excluded before any pattern runs.
		if strings.HasPrefix(name, ".") {
			continue
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			logger.Debug("skipping symlink", zap.String("name", name), zap.String("dir", dir))
			continue
		}

		absPath := filepath.Join(dir, name)
		relPath, err := filepath.Rel(root, absPath)
		if err != nil {
			logger.Warn("cannot compute relative path",
				zap.String("path", absPath),
				zap.Error(err))
			continue
		}
		relPath = filepath.ToSlash(relPath)

		if entry.IsDir() {
			if ignored, p := set.Match(relPath, true); ignored {
				logger.Debug("skipping ignored directory",
					zap.String("path", relPath),
					zap.Stringer("pattern", p))
				continue
			}
			out = append(out, collectCandidates(absPath, root, set, exts, maxSize, logger)...)
			continue
		}

		if !entry.Type().IsRegular() {
			logger.Debug("skipping special file", zap.String("path", relPath))
			continue
		}
		if ignored, p := set.Match(relPath, false); ignored {
			logger.Debug("skipping ignored file",
				zap.String("path", relPath),
				zap.Stringer("pattern", p))
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logger.Debug("cannot stat file", zap.String("path", relPath), zap.Error(err))
			continue
		}
		if info.Size() > maxSize {
			logger.Debug("skipping large file",
				zap.String("path", relPath),
				zap.Int64("sizeBytes", info.Size()))
			continue
		}

		if !exts.Allows(name) {
			continue
		}

		out = append(out, candidate{absPath: absPath, relPath: relPath})
	}

	return out
}
