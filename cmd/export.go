package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/icp-autopilot/internal/icp"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the latest ICP segments as a plain-text file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, st, err := initService(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		segments := svc.State().Segments
		if len(segments) == 0 {
			return eris.New("no analysis results to export")
		}

		report := icp.FormatReport(segments)
		if err := os.WriteFile(exportOut, []byte(report), 0o644); err != nil {
			return eris.Wrapf(err, "write %s", exportOut)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d segment(s) to %s\n", len(segments), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "icp-segments.txt", "output file path")
	rootCmd.AddCommand(exportCmd)
}
