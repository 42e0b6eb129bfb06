package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/soyticz12/HRIS/internal/auth"
	"github.com/soyticz12/HRIS/internal/model"
	"github.com/soyticz12/HRIS/internal/storage"
)

var (
	seedDataDir  string
	seedUsername string
	seedPassword string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Write the initial admin account if no users exist yet",
	Args:  cobra.NoArgs,
	RunE:  runSeedAdmin,
}

func init() {
	seedAdminCmd.Flags().StringVar(&seedDataDir, "data-dir", "data", "path to the data directory")
	seedAdminCmd.Flags().StringVar(&seedUsername, "username", "admin", "initial admin username")
	seedAdminCmd.Flags().StringVar(&seedPassword, "password", "admin123", "initial admin password")
	rootCmd.AddCommand(seedAdminCmd)
}

func runSeedAdmin(cmd *cobra.Command, args []string) error {
	store, err := storage.NewFileStore(seedDataDir)
	if err != nil {
		return err
	}
	admin := model.StoredUser{
		Username: seedUsername,
		Password: seedPassword,
		Role:     model.RoleAdmin,
	}
	svc := auth.NewService(store, admin, log.New(os.Stderr, "", 0))
	if err := svc.EnsureSeeded(); err != nil {
		return err
	}
	fmt.Println("user store ready in", seedDataDir)
	return nil
}
