package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecoshare/ecoshare/internal/config"
	"github.com/ecoshare/ecoshare/internal/database"
	"github.com/ecoshare/ecoshare/internal/repository"
	"github.com/ecoshare/ecoshare/internal/services"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Expire overdue donations once and exit",
	Long: `Flip every Available donation whose expiry date has passed to Expired.

The server runs this sweep on a timer; the command exists for cron-style
deployments and for catching up after downtime.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSweep(); err != nil {
			log.Fatal(err)
		}
	},
}

func runSweep() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	donationRepo := repository.NewDonationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	lifecycleService := services.NewLifecycleService(donationRepo, profileRepo)

	expired, err := lifecycleService.ExpireDue(time.Now())
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	log.Printf("Sweep complete: %d donation(s) expired", expired)
	return nil
}
