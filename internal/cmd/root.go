// Package cmd wires the ustar codec into a small cobra CLI. All archive
// logic lives in the root ustar package; these commands only move bytes
// between the filesystem and the codec.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command for the ustar CLI with all
// subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ustar",
		Short: "ustar - pack, unpack, and list USTAR tape archives",
		Long: `ustar packs files into USTAR tape archives and unpacks them again.

The archives it produces are plain uncompressed tar streams in the
POSIX USTAR layout, readable by any tar implementation.

Use subcommands to perform different operations:
  - pack:   Build an archive from a list of files
  - unpack: Extract an archive into a directory
  - list:   Show the entries of an archive`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging to stderr")

	rootCmd.AddCommand(NewPackCmd())
	rootCmd.AddCommand(NewUnpackCmd())
	rootCmd.AddCommand(NewListCmd())

	return rootCmd
}

// loggerFor builds the slog logger a subcommand passes to the codec,
// honoring the persistent --verbose flag.
func loggerFor(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
