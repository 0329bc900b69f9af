package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/meigma/ustar"
)

// packReadConcurrency bounds concurrent input-file reads.
const packReadConcurrency = 4

// NewPackCmd creates the pack subcommand: files in, one archive out.
func NewPackCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pack -o ARCHIVE FILE...",
		Short: "Build a USTAR archive from a list of files",
		Long: `Build a USTAR archive from a list of files.

Entries appear in the archive in argument order. Each entry records the
file's base name, permission bits, and modification time; directories
are not accepted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, output, args)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Path of the archive to write (required)")
	cmd.MarkFlagRequired("output")

	return cmd
}

func runPack(cmd *cobra.Command, output string, paths []string) error {
	entries := make([]ustar.Entry, len(paths))

	// Read inputs concurrently; entries stay in argument order.
	g := new(errgroup.Group)
	g.SetLimit(packReadConcurrency)
	for i, path := range paths {
		g.Go(func() error {
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if info.IsDir() {
				return fmt.Errorf("%s: is a directory", path)
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			entries[i] = ustar.Entry{
				Header: ustar.Header{
					Name:    filepath.Base(path),
					Mode:    info.Mode().Perm(),
					ModTime: info.ModTime(),
				},
				Content: ustar.Binary(content),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	data, err := ustar.Assemble(entries, ustar.AssembleWithLogger(loggerFor(cmd)))
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d entries, %d bytes)\n", output, len(entries), len(data))
	return nil
}
