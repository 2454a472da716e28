package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/traindelay/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "traindelay",
	Short: "Dashboard of precomputed Deutsche Bahn arrival delay findings",
	Long: `traindelay serves a small dashboard over a Deutsche Bahn train rides
sample: a dataset overview plus fifteen precomputed questions, each with a
pre-rendered plot and a short list of findings.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

