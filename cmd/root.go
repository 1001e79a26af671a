package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/icp-autopilot/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "icp-autopilot",
	Short: "Email-to-ICP discovery workflow",
	Long:  "Extracts email addresses, enriches each with firmographic data, and derives three ranked Ideal Customer Profile segments with suggested go-to-market actions.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
