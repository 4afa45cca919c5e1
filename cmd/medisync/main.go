package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "medisync",
		Short:        "MediSync healthcare record service and client",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(inventoryCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
