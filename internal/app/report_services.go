package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"therapy_companion_service/internal/domain/activity"
	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/reports"
	"therapy_companion_service/internal/domain/therapists"
	"therapy_companion_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// reportService implements the ReportService interface for weekly reports
type reportService struct {
	patientRepo patients.PatientRepository
	checkinRepo checkins.CheckInRepository
	reportRepo  reports.ReportRepository
	builder     reports.WorkbookBuilder
	mailer      reports.Mailer
	recorder    activity.Recorder
	systemName  string
	exportsDir  string
	logger      logger.Logger
}

// NewReportService creates a new instance of ReportService. exportsDir may
// be empty to skip writing workbook copies to disk.
func NewReportService(
	patientRepo patients.PatientRepository,
	checkinRepo checkins.CheckInRepository,
	reportRepo reports.ReportRepository,
	builder reports.WorkbookBuilder,
	mailer reports.Mailer,
	recorder activity.Recorder,
	systemName string,
	exportsDir string,
	logger logger.Logger,
) (reports.ReportService, error) {
	if builder == nil {
		return nil, fmt.Errorf("workbook builder cannot be nil")
	}
	return &reportService{
		patientRepo: patientRepo,
		checkinRepo: checkinRepo,
		reportRepo:  reportRepo,
		builder:     builder,
		mailer:      mailer,
		recorder:    recorder,
		systemName:  systemName,
		exportsDir:  exportsDir,
		logger:      logger,
	}, nil
}

func (s *reportService) weekData(ctx context.Context, patientID string, week checkins.Week) (checkins.WeekData, error) {
	listed, err := s.checkinRepo.ListByPatientAndDates(ctx, patientID, week.Dates())
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	data := make(checkins.WeekData, len(listed))
	for _, checkin := range listed {
		data[checkin.Date] = checkin
	}
	return data, nil
}

// GenerateWeekly builds the workbook, persists it and drops a copy into the
// exports directory for operators.
func (s *reportService) GenerateWeekly(ctx context.Context, patientID string, week checkins.Week, caller therapists.Identity) (*reports.Report, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if !patient.VisibleTo(caller) {
		return nil, patients.ErrAccessDenied
	}

	data, err := s.weekData(ctx, patientID, week)
	if err != nil {
		return nil, err
	}

	fileData, err := s.builder.Build(patient, week, data)
	if err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	report := &reports.Report{
		ID:        uuid.NewString(),
		PatientID: patientID,
		Week:      week.String(),
		Filename:  fmt.Sprintf("therapy_report_%s_%s_%s.xlsx", patientID, week, time.Now().Format("20060102_150405")),
		FileData:  fileData,
		CreatedAt: time.Now(),
	}
	if err := report.Validate(); err != nil {
		return nil, err
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	if s.exportsDir != "" {
		path := filepath.Join(s.exportsDir, report.Filename)
		if err := os.WriteFile(path, fileData, 0600); err != nil {
			s.logger.Warn("Failed to write workbook copy to ", path, ": ", err)
		}
	}

	s.recorder.Record(ctx, activity.TypeReportGenerated, map[string]interface{}{
		"patient_id": patientID,
		"week":       week.String(),
		"therapist":  caller.Email,
	})

	return report, nil
}

// composeEmailBody renders the plain text report email.
func (s *reportService) composeEmailBody(patient *patients.Patient, week checkins.Week, summary checkins.Summary, caller therapists.Identity) string {
	medicationSuffix := ""
	if summary.AvgMedication > 0 {
		medicationSuffix = " (excluding N/A)"
	}

	organization := caller.Organization
	if organization == "" {
		organization = "N/A"
	}

	return fmt.Sprintf(`Dear %s,

This is the weekly therapy tracking report for %s (ID: %s).

Week: %s
Completion Rate: %d/%d days (%.1f%%)

Summary Statistics:
- Average Emotional State: %.2f/5
- Average Medication Adherence: %.2f/5%s
- Average Physical Activity: %.2f/5

Please find the detailed Excel report attached.

Best regards,
%s

---
This is an automated report. Please do not reply to this email.
Generated by: %s (%s)
Organization: %s
`,
		patient.TherapistName,
		patient.Name, patient.ID,
		week,
		summary.CompletedDays, summary.TotalDays, summary.CompletionPercent(),
		summary.AvgEmotional,
		summary.AvgMedication, medicationSuffix,
		summary.AvgActivity,
		s.systemName,
		caller.Name, caller.Email,
		organization,
	)
}

// EmailWeekly generates the weekly report and emails it. Delivery failures
// are returned inside the outcome so the client still gets the prepared
// content as a preview.
func (s *reportService) EmailWeekly(ctx context.Context, patientID string, week checkins.Week, recipient string, caller therapists.Identity) (*reports.EmailOutcome, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if !patient.VisibleTo(caller) {
		return nil, patients.ErrAccessDenied
	}

	if recipient == "" {
		recipient = patient.TherapistEmail
	}

	// Reuse the latest stored workbook for this week, generating one only
	// when none exists yet.
	report, err := s.reportRepo.LatestByPatientWeek(ctx, patientID, week.String())
	if errors.Is(err, reports.ErrReportNotFound) {
		report, err = s.GenerateWeekly(ctx, patientID, week, caller)
	}
	if err != nil {
		return nil, err
	}

	data, err := s.weekData(ctx, patientID, week)
	if err != nil {
		return nil, err
	}
	summary := checkins.Summarize(data)

	subject := fmt.Sprintf("Weekly Therapy Report - %s - Week %s", patient.Name, week)
	body := s.composeEmailBody(patient, week, summary, caller)

	outcome := &reports.EmailOutcome{
		Recipient:  recipient,
		Subject:    subject,
		Body:       body,
		Attachment: report.Filename,
	}

	replyTo := ""
	if !caller.IsAdmin() {
		replyTo = caller.Email
	}

	err = s.mailer.Send(ctx, reports.Message{
		To:             recipient,
		ReplyTo:        replyTo,
		Subject:        subject,
		Body:           body,
		AttachmentName: report.Filename,
		Attachment:     report.FileData,
	})
	if err != nil {
		s.logger.Warn("Report email to ", recipient, " not sent: ", err)
		outcome.Note = fmt.Sprintf("Email not sent: %v", err)
		return outcome, nil
	}

	outcome.Sent = true
	outcome.Note = "Email sent with Excel attachment"

	s.recorder.Record(ctx, activity.TypeEmailSent, map[string]interface{}{
		"patient_id": patientID,
		"recipient":  recipient,
		"week":       week.String(),
		"therapist":  caller.Email,
	})

	return outcome, nil
}
