package flatten

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/levmv/src2file/pkg/ignore"
)

// Run performs a full scan-and-flatten pass: walk the tree, read the
// accepted files, and write the combined document. It returns an error only
// for failures that make the run as a whole impossible; per-entry problems
// are absorbed during the scan.
func Run(args Arguments, logger *zap.Logger) error {
	root, err := filepath.Abs(args.Directory)
	if err != nil {
		return fmt.Errorf("resolving directory %q: %w", args.Directory, err)
	}

	logger.Info("scanning", zap.String("root", root))

	raws := make([]string, 0, len(DefaultIgnorePatterns)+len(args.IgnorePatterns))
	raws = append(raws, DefaultIgnorePatterns...)
	raws = append(raws, args.IgnorePatterns...)

	var patterns []ignore.Pattern
	for _, raw := range raws {
		p, err := ignore.ParsePattern(raw)
		if err != nil {
			logger.Warn("skipping invalid ignore pattern", zap.String("pattern", raw), zap.Error(err))
			continue
		}
		patterns = append(patterns, p)
	}
	base := ignore.NewSet(patterns...)

	extNames := args.Extensions
	if extNames == nil {
		extNames = DefaultExtensions
	}
	exts := NewExtensionSet(extNames)
	exts.Remove(args.SkipExtensions)

	maxSizeKB := args.MaxFileSizeKB
	if maxSizeKB <= 0 {
		maxSizeKB = DefaultMaxFileSizeKB
	}

	candidates := collectCandidates(root, root, base, exts, int64(maxSizeKB)*1024, logger)
	if len(candidates) == 0 {
		fmt.Println("No files found matching criteria.")
		return nil
	}

	files := readConcurrently(candidates, args.MaxWorkers, logger)
	if len(files) == 0 {
		fmt.Println("No files found matching criteria.")
		return nil
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	dirName := SanitizeFileName(filepath.Base(root))
	outputPath := args.Output
	if outputPath == "" {
		outputPath = dirName + ".txt"
	}

	confirm := args.Confirm
	if confirm == nil {
		confirm = TerminalConfirm
	}
	ok, err := shouldOverwrite(outputPath, confirm)
	if err != nil {
		return fmt.Errorf("overwrite confirmation: %w", err)
	}
	if !ok {
		fmt.Println("Aborted.")
		return nil
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := WriteDocument(out, dirName, files); err != nil {
		out.Close()
		return fmt.Errorf("writing output file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	printSummary(outputPath, len(files))
	return nil
}

// printSummary reports the written document's size and a rough token count.
func printSummary(outputPath string, fileCount int) {
	color.New(color.FgGreen).Printf("Success! Saved %d files to %s\n", fileCount, outputPath)

	info, err := os.Stat(outputPath)
	if err != nil {
		return
	}
	sizeMB := float64(info.Size()) / (1024 * 1024)
	fmt.Printf("Size: %.2f MB | Est. Tokens: ~%s\n", sizeMB, groupDigits(EstimateTokens(info.Size())))
}
