package flatten

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func rejectConfirm(t *testing.T) ConfirmFunc {
	return func(string) (bool, error) {
		t.Fatal("confirmation prompt must not fire")
		return false, nil
	}
}

func scanArgs(t *testing.T, dir string) Arguments {
	t.Helper()
	return Arguments{
		Directory: dir,
		Output:    filepath.Join(t.TempDir(), "out.txt"),
		Confirm:   rejectConfirm(t),
	}
}

func TestRunEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "print('a')\n")
	writeFile(t, root, ".git/config", "[core]\n")
	writeFile(t, root, "node_modules/pkg/index.js", "x\n")
	writeFile(t, root, "src/util.go", "package src\n")
	writeFile(t, root, "src/.gitignore", "temp/\n")
	writeFile(t, root, "src/temp/x.go", "package temp\n")

	args := scanArgs(t, root)
	require.NoError(t, Run(args, zap.NewNop()))

	data, err := os.ReadFile(args.Output)
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, "FILE: a.py")
	assert.Contains(t, doc, "FILE: src/util.go")
	assert.NotContains(t, doc, ".git")
	assert.NotContains(t, doc, "node_modules")
	assert.NotContains(t, doc, "temp")
	assert.Contains(t, doc, "Project: "+SanitizeFileName(filepath.Base(root)))

	// a.py sorts before src/util.go in the body.
	assert.Less(t,
		indexOf(t, doc, "FILE: a.py"),
		indexOf(t, doc, "FILE: src/util.go"))
}

func TestRunIsDeterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.go", "package b\n")
	writeFile(t, root, "a.go", "package a\n")
	writeFile(t, root, "pkg/c.go", "package c\n")
	writeFile(t, root, "pkg/d.go", "package d\n")

	args := scanArgs(t, root)
	args.MaxWorkers = 4
	require.NoError(t, Run(args, zap.NewNop()))
	first, err := os.ReadFile(args.Output)
	require.NoError(t, err)

	require.NoError(t, Run(args, zap.NewNop()))
	second, err := os.ReadFile(args.Output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunBinaryFileExcludedDespiteAllowedExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ok.go", "package ok\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.go"), []byte("pre\x00post"), 0o644))

	args := scanArgs(t, root)
	require.NoError(t, Run(args, zap.NewNop()))

	data, err := os.ReadFile(args.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "FILE: ok.go")
	assert.NotContains(t, string(data), "bad.go")
}

func TestRunOverwritesOwnOutputSilently(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")

	args := scanArgs(t, root)
	require.NoError(t, os.WriteFile(args.Output, []byte("Project: old\nstale body\n"), 0o644))

	require.NoError(t, Run(args, zap.NewNop()))

	data, err := os.ReadFile(args.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "FILE: a.go")
	assert.NotContains(t, string(data), "stale body")
}

func TestRunDeclinedOverwriteLeavesFileIntact(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")

	args := scanArgs(t, root)
	require.NoError(t, os.WriteFile(args.Output, []byte("unrelated content"), 0o644))

	prompted := false
	args.Confirm = func(string) (bool, error) {
		prompted = true
		return false, nil
	}

	require.NoError(t, Run(args, zap.NewNop()), "declining is an explicit abort, not an error")
	assert.True(t, prompted)

	data, err := os.ReadFile(args.Output)
	require.NoError(t, err)
	assert.Equal(t, "unrelated content", string(data))
}

func TestRunAcceptedOverwriteReplacesFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")

	args := scanArgs(t, root)
	require.NoError(t, os.WriteFile(args.Output, []byte("unrelated content"), 0o644))
	args.Confirm = func(string) (bool, error) { return true, nil }

	require.NoError(t, Run(args, zap.NewNop()))

	data, err := os.ReadFile(args.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "FILE: a.go")
}

func TestRunEmptyScanWritesNothing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "binaryish.dat", "data") // extension not allowlisted

	args := scanArgs(t, root)
	require.NoError(t, Run(args, zap.NewNop()))

	_, err := os.Stat(args.Output)
	assert.True(t, os.IsNotExist(err), "no output file for an empty result")
}

func TestRunExtensionOverrides(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")
	writeFile(t, root, "b.py", "print('b')\n")

	args := scanArgs(t, root)
	args.Extensions = []string{"go"}
	require.NoError(t, Run(args, zap.NewNop()))

	data, err := os.ReadFile(args.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "FILE: a.go")
	assert.NotContains(t, string(data), "b.py")

	args.Output = filepath.Join(t.TempDir(), "out2.txt")
	args.Extensions = nil
	args.SkipExtensions = []string{"py"}
	require.NoError(t, Run(args, zap.NewNop()))

	data, err = os.ReadFile(args.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "FILE: a.go")
	assert.NotContains(t, string(data), "b.py")
}

func TestRunExtraIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.go", "package keep\n")
	writeFile(t, root, "drop.go", "package drop\n")

	args := scanArgs(t, root)
	args.IgnorePatterns = []string{"drop.go"}
	require.NoError(t, Run(args, zap.NewNop()))

	data, err := os.ReadFile(args.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "FILE: keep.go")
	assert.NotContains(t, string(data), "drop.go")
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	idx := strings.Index(s, sub)
	if idx < 0 {
		t.Fatalf("%q not found", sub)
	}
	return idx
}
