package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/soyticz12/HRIS/internal/ops"
)

var (
	backupDataDir string
	backupOut     string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Archive the data directory into a tar.gz",
	Args:  cobra.NoArgs,
	RunE:  runBackup,
}

func init() {
	backupCmd.Flags().StringVar(&backupDataDir, "data-dir", "data", "path to the data directory")
	backupCmd.Flags().StringVar(&backupOut, "out", "", "output archive path (.tar.gz)")
}

func runBackup(cmd *cobra.Command, args []string) error {
	out := backupOut
	if out == "" {
		ts := time.Now().UTC().Format("20060102T150405Z")
		out = filepath.Join("backups", "hris-"+ts+".tar.gz")
	}
	if err := ops.BackupDataDir(backupDataDir, out); err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
