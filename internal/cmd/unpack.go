package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meigma/ustar"
)

// NewUnpackCmd creates the unpack subcommand: archive in, files out.
func NewUnpackCmd() *cobra.Command {
	var (
		outDir string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "unpack ARCHIVE",
		Short: "Extract a USTAR archive into a directory",
		Long: `Extract a USTAR archive into a directory.

By default extraction is lenient: it stops quietly at the first block
that is not a USTAR header. With --strict, corrupt headers, checksum
mismatches, and truncated archives are reported as errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnpack(cmd, args[0], outDir, strict)
		},
	}

	cmd.Flags().StringVarP(&outDir, "dir", "d", ".", "Directory to extract into")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on malformed headers and checksum mismatches")

	return cmd
}

func runUnpack(cmd *cobra.Command, archive, outDir string, strict bool) error {
	data, err := os.ReadFile(archive)
	if err != nil {
		return err
	}

	entries, err := ustar.Extract(data,
		ustar.ExtractWithLogger(loggerFor(cmd)),
		ustar.ExtractStrict(strict),
	)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for _, e := range entries {
		name := e.Header.FullName()
		dest, err := safeJoin(outDir, name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		mode := e.Header.Mode
		if mode == 0 {
			mode = 0o644
		}
		if err := os.WriteFile(dest, e.Content.Bytes(), mode); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

// safeJoin joins name under dir, rejecting names that would escape it.
func safeJoin(dir, name string) (string, error) {
	joined := filepath.Join(dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(dir, joined)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("entry %q escapes %s", name, dir)
	}
	return joined, nil
}
