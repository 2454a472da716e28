package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/traindelay/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the dashboard configuration with an interactive wizard",
	Long:  `Runs an interactive wizard and writes the config file (.traindelay.yml unless --config is given).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
