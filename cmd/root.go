package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/levmv/src2file/pkg/flatten"
	"github.com/levmv/src2file/pkg/logging"
)

var (
	flagOutput     string
	flagVerbose    bool
	flagExtensions string
	flagSkip       string
	flagIgnore     string
	flagWorkers    int
	flagMaxSizeKB  int
)

// RootCmd is the base command; src2file has a single operation, so the scan
// runs directly on it.
var RootCmd = &cobra.Command{
	Use:   "src2file [directory]",
	Short: "Flatten source code into a single context file",
	Long: `src2file walks a directory tree, filters files by extension and ignore
rules (including rebased .gitignore patterns), and concatenates everything
into one output document with a directory tree header, suitable for passing
a whole source tree to an LLM as context.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

func init() {
	RootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file path (default <dir-name>.txt)")
	RootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "show processing details")
	RootCmd.Flags().StringVarP(&flagExtensions, "extensions", "e", "", "extensions to include (e.g. go,js)")
	RootCmd.Flags().StringVarP(&flagSkip, "skip", "s", "", "extensions to skip from defaults")
	RootCmd.Flags().StringVarP(&flagIgnore, "ignore", "i", "", "additional ignore patterns")
	RootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "content reader pool size (default number of CPUs)")
	RootCmd.Flags().IntVar(&flagMaxSizeKB, "max-size", 0, fmt.Sprintf("per-file size limit in KiB (default %d)", flatten.DefaultMaxFileSizeKB))
}

// Execute runs the root command. A bare invocation prints the help text to
// standard error and exits non-zero, mirroring the no-arguments contract.
func Execute() {
	if len(os.Args) <= 1 {
		RootCmd.SetOut(os.Stderr)
		_ = RootCmd.Help()
		os.Exit(1)
	}

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runScan(cmd *cobra.Command, cliArgs []string) error {
	directory := "."
	if len(cliArgs) > 0 {
		directory = cliArgs[0]
	}

	info, err := os.Stat(directory)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory '%s' not found", directory)
	}

	logger, err := logging.New(flagVerbose)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logging.Sync(logger)

	args := flatten.Arguments{
		Directory:     directory,
		Output:        flagOutput,
		MaxFileSizeKB: flagMaxSizeKB,
		MaxWorkers:    flagWorkers,
	}
	if flagExtensions != "" {
		args.Extensions = splitCSV(flagExtensions)
	}
	if flagSkip != "" {
		args.SkipExtensions = splitCSV(flagSkip)
	}
	if flagIgnore != "" {
		args.IgnorePatterns = splitCSV(flagIgnore)
	}

	applyFileConfig(cmd, &args, directory)

	return flatten.Run(args, logger)
}

// applyFileConfig merges the optional .src2file.yaml from the target
// directory into args. Explicit flags always win over the file.
func applyFileConfig(cmd *cobra.Command, args *flatten.Arguments, directory string) {
	cfg, err := flatten.LoadFileConfig(directory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	if cfg == nil {
		return
	}

	if cfg.Output != "" && !cmd.Flags().Changed("output") {
		args.Output = cfg.Output
	}
	if len(cfg.Extensions) > 0 && !cmd.Flags().Changed("extensions") {
		args.Extensions = cfg.Extensions
	}
	if len(cfg.Skip) > 0 && !cmd.Flags().Changed("skip") {
		args.SkipExtensions = cfg.Skip
	}
	if len(cfg.Ignore) > 0 {
		args.IgnorePatterns = append(cfg.Ignore, args.IgnorePatterns...)
	}
	if cfg.MaxFileSizeKB > 0 && !cmd.Flags().Changed("max-size") {
		args.MaxFileSizeKB = cfg.MaxFileSizeKB
	}
	if cfg.Workers > 0 && !cmd.Flags().Changed("workers") {
		args.MaxWorkers = cfg.Workers
	}
}

// splitCSV splits a comma-separated flag value, trimming whitespace and
// dropping empty items.
func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
