package main

import (
	"os"

	"github.com/spf13/cobra"

	"praxis/internal/interfaces/cli/migrate"
	"praxis/internal/interfaces/cli/server"
	"praxis/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "praxis",
		Short: "Praxis escalation and delivery service",
		Long:  `Praxis runs the SLA escalation engine, the durable notification outbox and the tamper-evident audit ledger for the PMO platform.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		worker.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
