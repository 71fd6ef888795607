package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/markdown-server/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config resolves the configuration the same way serve does
(environment variables, optional config file, defaults) and prints the
result, so deployments can verify what the server would run with.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		fmt.Fprint(os.Stdout, string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
