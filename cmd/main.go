package main

import (
	"fmt"
	"log"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/davidthissen1/Nutrify/config"
	"github.com/davidthissen1/Nutrify/routes"
	"github.com/davidthissen1/Nutrify/services"
)

var rootCmd = &cobra.Command{
	Use:   "nutrify",
	Short: "Nutrition tracking API server",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		db, err := config.InitDB(cfg)
		if err != nil {
			return err
		}

		// Expired tokens are housekeeping, not access control: reads do
		// not check expiry unless configured to, so stale rows just
		// accumulate. Sweep them daily.
		authSvc := services.NewAuthService(db, cfg.SecretKey, cfg.EnforceTokenExpiry)
		sched := cron.New()
		if _, err := sched.AddFunc("@daily", func() {
			purged, err := authSvc.PurgeExpiredTokens()
			if err != nil {
				log.Printf("token purge: %v", err)
				return
			}
			if purged > 0 {
				log.Printf("token purge: removed %d expired tokens", purged)
			}
		}); err != nil {
			return fmt.Errorf("failed to schedule token purge: %w", err)
		}
		sched.Start()
		defer sched.Stop()

		r := routes.SetupRouter(db, cfg)
		log.Printf("Server listening on :%s", cfg.Port)
		return r.Run(":" + cfg.Port)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Provision or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		db, err := config.InitDB(cfg)
		if err != nil {
			return err
		}
		if err := config.Migrate(db); err != nil {
			return err
		}
		log.Println("Database initialized successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
