package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/icp-autopilot/internal/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config.yaml with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		const path = "config.yaml"

		if !configInitForce {
			if _, err := os.Stat(path); err == nil {
				return eris.Errorf("%s already exists, use --force to overwrite", path)
			}
		}

		// Nested map mirrors the viper key paths.
		tree := map[string]any{}
		for key, value := range config.Defaults() {
			section, leaf, _ := strings.Cut(key, ".")
			sub, ok := tree[section].(map[string]any)
			if !ok {
				sub = map[string]any{}
				tree[section] = sub
			}
			sub[leaf] = value
		}

		data, err := yaml.Marshal(tree)
		if err != nil {
			return eris.Wrap(err, "marshal defaults")
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", path)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config.yaml")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
