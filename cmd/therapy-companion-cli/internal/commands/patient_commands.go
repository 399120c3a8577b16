package commands

import (
	"context"
	"fmt"

	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// PatientCommandHandler encapsulates logic for handling patient operations via CLI.
type PatientCommandHandler struct {
	enrollmentService patients.EnrollmentService
	logger            logger.Logger
}

// NewPatientCommandHandler initializes and returns a PatientCommandHandler instance with
// configured logger and enrollment service.
func NewPatientCommandHandler() (*PatientCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	services, err := setupServices(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to setup services: %w", err)
	}

	return &PatientCommandHandler{
		enrollmentService: services.enrollment,
		logger:            loggerInstance,
	}, nil
}

// ListPatientsCmd lists all enrolled patients
func (commandHandler *PatientCommandHandler) ListPatientsCmd(_ *cobra.Command, _ []string) {
	list, err := commandHandler.enrollmentService.List(context.Background(), adminIdentity())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if len(list) == 0 {
		commandHandler.logger.Info("No patients enrolled")
		return
	}

	commandHandler.logger.Info("Enrolled patients: ", len(list))
	for _, patient := range list {
		commandHandler.logger.Info(patient.ID, " | ", patient.Name,
			" | enrolled by ", patient.EnrolledBy,
			" at ", patient.EnrolledAt.Format("2006-01-02"))
	}
}

// InitPatientCommands registers patient commands
func InitPatientCommands(rootCmd *cobra.Command) error {
	handler, err := NewPatientCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create patient command handler %w", err)
	}

	var listPatientsCmd = &cobra.Command{
		Use:   "list-patients",
		Short: "List all enrolled patients",
		Run:   handler.ListPatientsCmd,
	}
	rootCmd.AddCommand(listPatientsCmd)

	return nil
}
