// Command myenglish runs the English learning suite: the REST shell, the
// terminal shell, and batch tooling around the content catalog.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-suite/internal/app"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "myenglish",
		Short:        "English learning suite",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to config.yaml (default: ./config.yaml)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSynthCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
