package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/roblesfd/helpdesk-backend/internal/interfaces/cli/migrate"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - ticketing and knowledge base backend",
		Long:  `Helpdesk is a REST backend for support tickets, notifications and a knowledge base, with built-in server and migration commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
