package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meigma/ustar"
)

// NewListCmd creates the list subcommand.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list ARCHIVE",
		Short: "Show the entries of a USTAR archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0])
		},
	}
	return cmd
}

func runList(cmd *cobra.Command, archive string) error {
	data, err := os.ReadFile(archive)
	if err != nil {
		return err
	}

	entries, err := ustar.Extract(data, ustar.ExtractWithLogger(loggerFor(cmd)))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tSIZE\tMODIFIED\tNAME")
	for _, e := range entries {
		h := e.Header
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			h.Mode, h.Size, h.ModTime.Format("2006-01-02 15:04:05"), h.FullName())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s := ustar.Inspect(data)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d entries, %d content bytes, digest %s\n",
		s.EntryCount, s.ContentBytes, s.Digest)
	if !s.Terminated {
		fmt.Fprintln(cmd.OutOrStdout(), "warning: archive has no terminator")
	}
	return nil
}
