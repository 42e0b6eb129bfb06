package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soyticz12/HRIS/internal/ops"
)

var (
	restoreArchive string
	restoreTarget  string
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Unpack a backup archive into a directory",
	Args:  cobra.NoArgs,
	RunE:  runRestore,
}

func init() {
	restoreCmd.Flags().StringVar(&restoreArchive, "archive", "", "input backup archive (.tar.gz)")
	restoreCmd.Flags().StringVar(&restoreTarget, "target-dir", "data-restored", "restore target directory")
}

func runRestore(cmd *cobra.Command, args []string) error {
	if restoreArchive == "" {
		return fmt.Errorf("--archive is required")
	}
	return ops.RestoreDataDir(restoreArchive, restoreTarget)
}
