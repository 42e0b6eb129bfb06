package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/soyticz12/HRIS/internal/export"
	"github.com/soyticz12/HRIS/internal/history"
	"github.com/soyticz12/HRIS/internal/storage"
)

var (
	exportDataDir string
	exportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export submission history as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDataDir, "data-dir", "data", "path to the data directory")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := storage.NewFileStore(exportDataDir)
	if err != nil {
		return err
	}
	raw, _, err := store.Read(storage.KeyHistory)
	if err != nil {
		return err
	}
	entries := history.Normalize(raw)

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := export.WriteCSV(out, entries, time.Now()); err != nil {
		return err
	}
	if exportOut != "" {
		fmt.Fprintln(os.Stderr, "wrote", exportOut)
	}
	return nil
}
