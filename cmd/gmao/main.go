package main

import (
	"os"

	"github.com/spf13/cobra"

	"gmao/internal/interfaces/cli/migrate"
	"gmao/internal/interfaces/cli/server"
	"gmao/internal/interfaces/cli/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gmao",
		Short: "GMAO - maintenance ticketing and asset tracking backend",
		Long:  `GMAO manages maintenance tickets, client assets and contract consumption, with built-in server, migration and administration commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
