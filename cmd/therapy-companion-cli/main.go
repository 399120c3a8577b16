// Package main is the entry point for the therapy-companion-cli application.
// It initializes the root command and registers the account, patient and
// report sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "therapy_companion_service/cmd/therapy-companion-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "therapy-companion-cli",
		Short: "Operations CLI for the therapy companion service",
		Long: `therapy-companion-cli is a command-line tool for operating the therapy
companion service. It registers therapist accounts, lists enrolled patients,
and exports weekly Excel reports directly against the service database.

The database is selected through the same configuration as the REST API
(CONFIG_PATH or the DATABASE_* environment variables).`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitAccountCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize account commands: %w", err)
	}

	if err := commands.InitPatientCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize patient commands: %w", err)
	}

	if err := commands.InitReportCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize report commands: %w", err)
	}

	return nil
}
