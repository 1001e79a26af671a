package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past analysis runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		svc, st, err := initService(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		state := svc.State()
		if len(state.History) == 0 {
			fmt.Fprintln(out, "No analysis runs yet.")
			return nil
		}

		for _, entry := range state.History {
			fmt.Fprintf(out, "%s  %3d records  top: %s\n",
				entry.CreatedAt.Format("2006-01-02 15:04:05"), entry.RecordCount, entry.TopSegment)
		}

		if from, to, drifted := state.Drift(); drifted {
			fmt.Fprintf(out, "\nTop ICP drifted: %s -> %s\n", from, to)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
