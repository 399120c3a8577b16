package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/reports"
	"therapy_companion_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ReportCommandHandler encapsulates logic for handling report operations via CLI.
type ReportCommandHandler struct {
	reportService reports.ReportService
	logger        logger.Logger
}

// NewReportCommandHandler initializes and returns a ReportCommandHandler instance with
// configured logger and report service.
func NewReportCommandHandler() (*ReportCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	services, err := setupServices(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to setup services: %w", err)
	}

	return &ReportCommandHandler{
		reportService: services.reports,
		logger:        loggerInstance,
	}, nil
}

// ExportReportCmd generates a weekly Excel report and saves it in a selected directory
func (commandHandler *ReportCommandHandler) ExportReportCmd(cmd *cobra.Command, _ []string) {
	patientID, err := cmd.Flags().GetString("patient-id")
	if err != nil {
		commandHandler.logger.Error("invalid patient-id flag ", err)
		return
	}

	weekValue, err := cmd.Flags().GetString("week")
	if err != nil {
		commandHandler.logger.Error("invalid week flag ", err)
		return
	}

	outputDir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		commandHandler.logger.Error("invalid output-dir flag ", err)
		return
	}

	week, err := checkins.ParseWeek(weekValue)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	report, err := commandHandler.reportService.GenerateWeekly(context.Background(), patientID, week, adminIdentity())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	reportFilePath := filepath.Join(outputDir, report.Filename)
	err = os.WriteFile(reportFilePath, report.FileData, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Report saved to ", reportFilePath)
}

// InitReportCommands registers report commands
func InitReportCommands(rootCmd *cobra.Command) error {
	handler, err := NewReportCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create report command handler %w", err)
	}

	var exportReportCmd = &cobra.Command{
		Use:   "export-report",
		Short: "Generate a weekly Excel report for a patient",
		Run:   handler.ExportReportCmd,
	}
	exportReportCmd.Flags().StringP("patient-id", "", "", "Identifier of the patient")
	exportReportCmd.Flags().StringP("week", "", "", "ISO week in YYYY-Www format (e.g. 2025-W02)")
	exportReportCmd.Flags().StringP("output-dir", "", ".", "Directory to store the generated report")
	rootCmd.AddCommand(exportReportCmd)

	return nil
}
