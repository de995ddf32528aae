package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "helios",
	Short: "Helios rooftop solar website",
	Long: `Helios serves the marketing site and account screens for the Helios
rooftop solar product, and estimates savings from the command line.

Available commands:
  serve       Start the web server
  estimate    Estimate solar savings for a monthly bill
  version     Print the version

Use "helios [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
