package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run the full workflow: extract, enrich, analyze",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		emails, err := readEmails(args)
		if err != nil {
			return err
		}
		if len(emails) == 0 {
			return eris.New("no email addresses found in input")
		}

		svc, st, err := initService(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := svc.SetEmails(ctx, emails); err != nil {
			return err
		}
		fmt.Fprintf(out, "Loaded %d email(s)\n", len(emails))

		pipeline := initPipeline()
		records, err := pipeline.Run(ctx, emails, func(pct float64) {
			zap.L().Info("enrichment progress", zap.Float64("percent", pct))
		})
		if err != nil {
			return err
		}
		if err := svc.SetRecords(ctx, records); err != nil {
			return err
		}

		segments, err := initEngine().Analyze(ctx, records)
		if err != nil {
			return err
		}
		if err := svc.SetSegments(ctx, segments); err != nil {
			return err
		}

		for _, seg := range segments {
			marker := "  "
			if seg.IsTop {
				marker = "* "
			}
			fmt.Fprintf(out, "%s%s (%d%%)\n", marker, seg.Name, seg.Confidence)
		}

		if from, to, drifted := svc.State().Drift(); drifted {
			fmt.Fprintf(out, "Top ICP drifted: %s -> %s\n", from, to)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
