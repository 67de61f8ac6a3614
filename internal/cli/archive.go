package cli

import (
	"github.com/spf13/cobra"

	"github.com/codeglade/fileset"
)

func newZipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zip <pattern> <archive>",
		Short: "Pack matches into a ZIP archive",
		Long: `Pack everything matching a glob pattern into a ZIP archive. Files
enter under their base name; directories keep their tree beneath a
folder of the same name.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := fileset.All(args[0])
			if err != nil {
				return err
			}
			n, err := set.Zip(args[1])
			if err != nil {
				return err
			}
			printCount(cmd, "archived", n, "files")
			return nil
		},
	}
}

func newTarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tar <pattern> <archive>",
		Short: "Pack matches into a TAR archive",
		Long: `Pack everything matching a glob pattern into a TAR archive. The
archive extension picks the compression: .tar.gz and .tgz use gzip,
.tar.zst uses zstd, plain .tar is uncompressed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := fileset.All(args[0])
			if err != nil {
				return err
			}
			n, err := set.Tar(args[1])
			if err != nil {
				return err
			}
			printCount(cmd, "archived", n, "files")
			return nil
		},
	}
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <pattern> <dest>",
		Short: "Unpack matching archives into a directory",
		Long: `Unpack every matching archive into the destination directory. The
format comes from the extension: .zip, .tar, .tgz, .tar.gz, or
.tar.zst.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := fileset.Files(args[0])
			if err != nil {
				return err
			}
			n, err := set.ExtractTo(args[1])
			if err != nil {
				return err
			}
			printCount(cmd, "extracted", n, "files")
			return nil
		},
	}
}
