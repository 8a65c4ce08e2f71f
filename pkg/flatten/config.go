// Package flatten walks a source tree and concatenates every accepted file
// into a single output document headed by a rendered directory tree.
package flatten

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMaxFileSizeKB is the per-file size threshold; larger files are
// skipped during the scan.
const DefaultMaxFileSizeKB = 350

// ConfigFileName is the optional per-project configuration file looked up in
// the target directory. It is dot-prefixed, so the scan itself never sees it.
const ConfigFileName = ".src2file.yaml"

// DefaultExtensions is the built-in allowlist of file name suffixes (and a
// few extensionless names such as "makefile") eligible for collection.
var DefaultExtensions = []string{
	// Scripting & backend
	"py", "pyw", "pyi", "rb", "php", "pl", "pm", "lua", "ex", "exs",
	// Web & frontend
	"js", "jsx", "mjs", "cjs", "ts", "tsx", "vue", "svelte", "html", "css", "scss", "less",
	// Systems & compiled
	"c", "h", "cpp", "hpp", "cc", "cxx", "cs", "go", "mod", "rs", "java", "kt", "scala", "swift", "dart",
	// Shell & automation
	"sh", "bash", "zsh", "fish", "ps1", "bat", "makefile", "cmake",
	// Config & data
	"json", "yaml", "yml", "toml", "xml", "ini", "sql", "graphql", "prisma", "proto",
	// Docs
	"md", "txt", "rst", "dockerfile",
}

// DefaultIgnorePatterns are always applied. Dot-prefixed entries are excluded
// unconditionally by the traversal and need no patterns here.
var DefaultIgnorePatterns = []string{
	"node_modules",
	"vendor",
	"__pycache__",
	"venv",
	"dist",
	"build",
	"package-lock.json",
	"*.min.js",
	"*.min.css",
}

// Arguments holds the fully resolved options for one run. Defaults, the
// optional project config file, and command-line flags are merged before the
// scan starts; nothing inside the engine consults globals.
type Arguments struct {
	Directory      string      // Directory to scan.
	Output         string      // Output file path; empty means derive from the directory name.
	Extensions     []string    // Extension allowlist; nil means DefaultExtensions.
	SkipExtensions []string    // Extensions removed from the allowlist.
	IgnorePatterns []string    // Extra ignore patterns appended to the defaults.
	MaxFileSizeKB  int         // Per-file size threshold in KiB; 0 means DefaultMaxFileSizeKB.
	MaxWorkers     int         // Content reader pool size; 0 means runtime.NumCPU.
	Confirm        ConfirmFunc // Overwrite prompt; nil means TerminalConfirm.
}

// FileConfig mirrors the optional .src2file.yaml in the target directory.
// Zero values mean "not set": explicit flags always win over the file.
type FileConfig struct {
	Output        string   `yaml:"output"`
	Extensions    []string `yaml:"extensions"`
	Skip          []string `yaml:"skip"`
	Ignore        []string `yaml:"ignore"`
	MaxFileSizeKB int      `yaml:"max_file_size_kb"`
	Workers       int      `yaml:"workers"`
}

// LoadFileConfig reads the project config file from dir. A missing file is
// not an error and yields nil; a malformed one is reported so the user can
// fix it rather than silently running with defaults.
func LoadFileConfig(dir string) (*FileConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}
	return &cfg, nil
}

// SanitizeFileName makes a directory name usable as the default output file
// stem.
func SanitizeFileName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
