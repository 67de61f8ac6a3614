// Package cli implements the fileset command line interface.
//
// Commands print results on stdout and keep operation diagnostics on
// stderr, so output stays pipeable. Glob patterns should be quoted to
// keep the shell from expanding them first.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codeglade/fileset"
	"github.com/codeglade/fileset/internal/config"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Execute runs the root command, printing any failure once to stderr.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		prefix := color.New(color.FgRed, color.Bold).Sprint("error:")
		fmt.Fprintln(os.Stderr, prefix, err)
		return err
	}
	return nil
}

type rootFlags struct {
	verbose   bool
	quiet     bool
	colorMode string
}

// NewRootCmd builds the fileset command tree.
func NewRootCmd() *cobra.Command {
	cfg := config.LoadOrDefault()
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "fileset",
		Short: "Glob-addressed batch file operations",
		Long: `fileset runs batch file operations over glob patterns.

Patterns support '**' for recursive matching. Quote them so the shell
does not expand them first:

  fileset rm 'build/**/*.log'
  fileset mv 'dist/*.tar.gz' releases/
  fileset append notes.txt 'reviewed'`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			applyFlags(cfg, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", cfg.Verbose, "log each operation as it happens")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "silence operation logging")
	pf.StringVar(&flags.colorMode, "color", cfg.Color, "color diagnostics: auto, always, or never")

	root.AddCommand(
		newListCmd(),
		newRemoveCmd(),
		newMoveCmd(),
		newCopyCmd(),
		newMkdirCmd(),
		newCatCmd(),
		newWriteCmd(),
		newAppendCmd(),
		newSizeCmd(),
		newTypeCmd(),
		newHashCmd(),
		newZipCmd(),
		newTarCmd(),
		newExtractCmd(),
	)

	return root
}

// applyFlags resolves verbosity and color once, before any operation
// runs. Quiet beats verbose when both are given.
func applyFlags(cfg *config.Settings, flags *rootFlags) {
	resolved := *cfg
	resolved.Color = flags.colorMode
	enabled := resolved.ColorEnabled()
	color.NoColor = !enabled
	fileset.ColorOutput(enabled)

	fileset.Verbose(flags.verbose && !flags.quiet)
}

// buildSet constructs the working set for a pattern, honoring the
// files/dirs filters.
func buildSet(pattern string, filesOnly, dirsOnly bool) (*fileset.Set, error) {
	switch {
	case filesOnly && dirsOnly:
		return nil, errors.New("--files and --dirs are mutually exclusive")
	case filesOnly:
		return fileset.Files(pattern)
	case dirsOnly:
		return fileset.Dirs(pattern)
	default:
		return fileset.All(pattern)
	}
}

// addKindFlags registers the shared --files/--dirs filters.
func addKindFlags(cmd *cobra.Command, filesOnly, dirsOnly *bool) {
	cmd.Flags().BoolVarP(filesOnly, "files", "f", false, "match regular files only")
	cmd.Flags().BoolVarP(dirsOnly, "dirs", "d", false, "match directories only")
}

// printCount reports a batch result on stdout, count highlighted.
func printCount(cmd *cobra.Command, verb string, n int, noun string) {
	if n == 1 {
		noun = strings.TrimSuffix(noun, "s")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", verb, color.GreenString("%d", n), noun)
}
