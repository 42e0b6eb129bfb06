package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hris-ops",
	Short: "Operational tooling for the HRIS data directory",
	Long: `hris-ops works directly on the JSON blob data directory used by the
HRIS server: cold backups, restores, restore drills and CSV exports.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(exportCmd)
}
