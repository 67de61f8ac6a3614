package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/codeglade/fileset"
)

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, ok, err := fileset.Target(args[0]).Read()
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no such file: %s", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <path> [content]",
		Short: "Write content to a file, replacing what was there",
		Long: `Write content to a file, creating it and any missing parent
directories. With content omitted or given as '-', it is read from
stdin.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := "-"
			if len(args) == 2 {
				content = args[1]
			}
			if content == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				content = string(data)
			}
			return fileset.Target(args[0]).Write(content)
		},
	}
}

func newAppendCmd() *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:   "append <path> <content>",
		Short: "Append content to a file, creating it when absent",
		Long: `Append content to a file. A newline separates the new content from
what is already there; files created by the append never start with
one. Use --no-newline to join content directly.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fileset.Target(args[0]).Append(args[1], !noNewline)
		},
	}

	cmd.Flags().BoolVar(&noNewline, "no-newline", false, "join content without a separating newline")
	return cmd
}
