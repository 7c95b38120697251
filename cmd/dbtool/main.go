package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"mission-route-service/internal/adapters/repositories"
	"mission-route-service/internal/app"
	"mission-route-service/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dbtool",
		Short:        "Manage the missions database",
		SilenceUsage: true,
	}

	var seedPath string

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the missions schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load("")
			if err != nil {
				return err
			}
			db, err := app.OpenDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Fprintln(cmd.OutOrStdout(), "Initializing database schema...")
			if err := repositories.InitSchema(cmd.Context(), db); err != nil {
				return fmt.Errorf("schema initialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema ready.")
			return nil
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load missions from a JSON seed file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load("")
			if err != nil {
				return err
			}
			if seedPath == "" {
				seedPath = cfg.SeedPath
			}
			db, err := app.OpenDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Fprintln(cmd.OutOrStdout(), "Seeding database...")
			n, err := repositories.SeedFromJSON(cmd.Context(), db, seedPath)
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeding complete: %d missions.\n", n)
			return nil
		},
	}
	seedCmd.Flags().StringVar(&seedPath, "file", "", "seed file (defaults to SEED_PATH)")

	root.AddCommand(initCmd, seedCmd)
	return root
}
