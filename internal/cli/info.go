package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeglade/fileset"
)

func newSizeCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "size <pattern>",
		Short: "Sum the size of everything matching a glob pattern",
		Long: `Sum the size of all matches. Directories contribute the combined size
of every file beneath them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := fileset.All(args[0])
			if err != nil {
				return err
			}
			total, err := set.TotalSize()
			if err != nil {
				return err
			}

			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), total)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), fileset.FormatBytes(total))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "bytes", false, "print the raw byte count")
	return cmd
}

func newTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <pattern>",
		Short: "Detect the content type of matching files",
		Long: `Detect MIME types by sniffing file content rather than trusting
extensions. Text files also get a charset guess.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := fileset.Files(args[0])
			if err != nil {
				return err
			}
			types, err := set.DetectTypes()
			if err != nil {
				return err
			}

			for _, ti := range types {
				if ti.Charset != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", ti.Path, ti.MIME, ti.Charset)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", ti.Path, ti.MIME)
			}
			return nil
		},
	}
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <pattern>",
		Short: "Print BLAKE2b-256 digests of matching files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := fileset.Files(args[0])
			if err != nil {
				return err
			}
			sums, err := set.Checksum()
			if err != nil {
				return err
			}

			// Emit in match order, not map order
			for _, p := range set.Paths() {
				if sum, ok := sums[p]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, p)
				}
			}
			return nil
		},
	}
}
