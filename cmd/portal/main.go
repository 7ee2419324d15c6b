package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/innovatepam/portal/cmd/portal/commands"
)

// @title InnovatEPAM Portal API
// @version 1.0
// @description Idea submission portal with an integrated todo and calendar workspace

// @contact.name InnovatEPAM Portal
// @contact.url https://github.com/innovatepam/portal

// @license.name MIT
// @license.url https://github.com/innovatepam/portal/blob/main/LICENSE

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal",
		Short: "InnovatEPAM Portal API Server",
		Long:  `InnovatEPAM Portal collects innovation ideas for review and gives every user a personal todo and calendar workspace.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewAdminCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
