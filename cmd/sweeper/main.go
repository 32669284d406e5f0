package main

import (
	"context"
	"log"
	"os"
	"time"

	"guard-deployment-backend/internal/app"
	"guard-deployment-backend/internal/config"
	"guard-deployment-backend/internal/database"
	"guard-deployment-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// sweeper runs one pass of the approval expiry, escalation and no-show
// sweeps. Schedule it externally, e.g. as a cron job every minute.
func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		MaxOpenConns: 2,
		MaxIdleConns: 1,
		SkipMigrate:  true,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	infra, err := app.NewInfrastructure(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize infrastructure:", err)
	}
	defer infra.Close()

	services := app.NewServices(db, cfg, infra)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	report, err := app.RunSweeps(ctx, services.Assignments, services.Approvals, time.Now().UTC())
	entry := logrus.WithFields(logrus.Fields{
		"expired":   report.Expired,
		"escalated": report.Escalated,
		"no_shows":  report.NoShows,
	})
	if err != nil {
		entry.WithError(err).Error("Sweep pass finished with errors")
		return 1
	}
	entry.Info("Sweep pass finished")
	return 0
}
