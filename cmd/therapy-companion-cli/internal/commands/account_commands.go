package commands

import (
	"context"
	"fmt"

	"therapy_companion_service/internal/domain/therapists"
	"therapy_companion_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AccountCommandHandler encapsulates logic for handling therapist account operations via CLI.
type AccountCommandHandler struct {
	accountService therapists.AccountService
	logger         logger.Logger
}

// NewAccountCommandHandler initializes and returns an AccountCommandHandler instance with
// configured logger and account service.
func NewAccountCommandHandler() (*AccountCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	services, err := setupServices(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to setup services: %w", err)
	}

	return &AccountCommandHandler{
		accountService: services.accounts,
		logger:         loggerInstance,
	}, nil
}

// RegisterTherapistCmd creates a therapist account and prints its access token
func (commandHandler *AccountCommandHandler) RegisterTherapistCmd(cmd *cobra.Command, _ []string) {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		commandHandler.logger.Error("invalid email flag ", err)
		return
	}

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}

	organization, err := cmd.Flags().GetString("organization")
	if err != nil {
		commandHandler.logger.Error("invalid organization flag ", err)
		return
	}

	password, err := cmd.Flags().GetString("password")
	if err != nil {
		commandHandler.logger.Error("invalid password flag ", err)
		return
	}

	therapist, err := commandHandler.accountService.Register(context.Background(), therapists.Registration{
		Email:        email,
		Name:         name,
		Organization: organization,
		Password:     password,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Therapist registered: ", therapist.Email)
	commandHandler.logger.Info("Access token: ", therapist.AccessToken)
}

// InitAccountCommands registers therapist account commands
func InitAccountCommands(rootCmd *cobra.Command) error {
	handler, err := NewAccountCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create account command handler %w", err)
	}

	var registerTherapistCmd = &cobra.Command{
		Use:   "register-therapist",
		Short: "Register a therapist account",
		Run:   handler.RegisterTherapistCmd,
	}
	registerTherapistCmd.Flags().StringP("email", "", "", "Email address of the therapist")
	registerTherapistCmd.Flags().StringP("name", "", "", "Full name of the therapist")
	registerTherapistCmd.Flags().StringP("organization", "", "", "Organization the therapist belongs to")
	registerTherapistCmd.Flags().StringP("password", "", "", "Password for the account")
	rootCmd.AddCommand(registerTherapistCmd)

	return nil
}
