package worker

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"praxis/internal/infrastructure/config"
	"praxis/internal/infrastructure/database"
	"praxis/internal/interfaces/cli/bootstrap"
	"praxis/internal/shared/biztime"
	"praxis/internal/shared/logger"
)

var env string

// NewCommand builds the worker command. It runs the SLA scanner, outbox
// drain and stale-claim reaper without serving HTTP, for deployments that
// scale the drain loop separately from the API.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Start the background worker",
		Long:  `Run the SLA scanner and notification outbox drain without the HTTP server.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting worker", "environment", env)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	services := bootstrap.BuildServices(database.Get(), cfg, log)

	schedulerManager, err := bootstrap.BuildScheduler(services, cfg, log)
	if err != nil {
		return err
	}
	schedulerManager.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	if err := schedulerManager.Stop(); err != nil {
		log.Errorw("failed to stop scheduler", "error", err)
		return err
	}

	log.Info("worker exited gracefully")
	return nil
}
