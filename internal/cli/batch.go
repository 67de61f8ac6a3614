package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/codeglade/fileset"
)

func newListCmd() *cobra.Command {
	var filesOnly, dirsOnly, long bool

	cmd := &cobra.Command{
		Use:   "ls <pattern>",
		Short: "List paths matching a glob pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := buildSet(args[0], filesOnly, dirsOnly)
			if err != nil {
				return err
			}

			if long {
				infos, err := set.Stat()
				if err != nil {
					return err
				}
				for _, info := range infos {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %10s  %s  %s\n",
						info.Mode,
						fileset.FormatBytes(info.Size),
						info.Modified.Format(time.RFC3339),
						info.Path)
				}
				return nil
			}

			for _, p := range set.Paths() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	addKindFlags(cmd, &filesOnly, &dirsOnly)
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show mode, size, and modification time")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	var filesOnly, dirsOnly bool

	cmd := &cobra.Command{
		Use:   "rm <pattern>",
		Short: "Delete everything matching a glob pattern",
		Long: `Delete everything matching a glob pattern. Directories are removed
with their contents. The batch stops at the first failure; entries
already deleted stay deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := buildSet(args[0], filesOnly, dirsOnly)
			if err != nil {
				return err
			}
			n, err := set.Delete()
			if err != nil {
				return err
			}
			printCount(cmd, "removed", n, "paths")
			return nil
		},
	}

	addKindFlags(cmd, &filesOnly, &dirsOnly)
	return cmd
}

func newMoveCmd() *cobra.Command {
	var filesOnly, dirsOnly bool

	cmd := &cobra.Command{
		Use:   "mv <pattern> <dest>",
		Short: "Move matches to a destination",
		Long: `Move everything matching a glob pattern. A destination ending in a
path separator receives each match under its own base name; any other
destination is used verbatim, which only makes sense for single
matches. Moves across filesystems fall back to copy and delete.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := buildSet(args[0], filesOnly, dirsOnly)
			if err != nil {
				return err
			}
			n, err := set.MoveTo(args[1])
			if err != nil {
				return err
			}
			printCount(cmd, "moved", n, "paths")
			return nil
		},
	}

	addKindFlags(cmd, &filesOnly, &dirsOnly)
	return cmd
}

func newCopyCmd() *cobra.Command {
	var filesOnly, dirsOnly bool

	cmd := &cobra.Command{
		Use:   "cp <pattern> <dest>",
		Short: "Copy matches to a destination",
		Long: `Copy everything matching a glob pattern, recursing into directories.
The destination rule matches mv: a trailing path separator keeps each
match's base name, anything else is used verbatim.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := buildSet(args[0], filesOnly, dirsOnly)
			if err != nil {
				return err
			}
			n, err := set.CopyTo(args[1])
			if err != nil {
				return err
			}
			printCount(cmd, "copied", n, "paths")
			return nil
		},
	}

	addKindFlags(cmd, &filesOnly, &dirsOnly)
	return cmd
}

func newMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <pattern>",
		Short: "Create directories, parents included",
		Long: `Create directories with any missing parents. When the pattern matches
existing paths each one is ensured; when it matches nothing the pattern
itself is created as a directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := fileset.Dirs(args[0])
			if err != nil {
				return err
			}
			n, err := set.EnsureDirs()
			if err != nil {
				return err
			}
			printCount(cmd, "ensured", n, "dirs")
			return nil
		},
	}
}
