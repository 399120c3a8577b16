package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"therapy_companion_service/internal/app"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/reports"
	"therapy_companion_service/internal/domain/therapists"
	"therapy_companion_service/internal/infrastructure/export"
	"therapy_companion_service/internal/infrastructure/mail"
	"therapy_companion_service/internal/infrastructure/persistence"
	"therapy_companion_service/internal/infrastructure/persistence/models"
	"therapy_companion_service/internal/pkg/config"
	"therapy_companion_service/internal/pkg/logger"
)

// In commands/common.go
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// adminIdentity is the identity CLI commands act as. CLI invocations run on
// the host with direct database access, so they carry admin privileges.
func adminIdentity() therapists.Identity {
	return therapists.Identity{
		Email:        therapists.AdminEmail,
		Name:         "System Admin",
		Organization: "System",
	}
}

// cliServices bundles the application services the CLI commands operate on.
type cliServices struct {
	accounts   therapists.AccountService
	enrollment patients.EnrollmentService
	reports    reports.ReportService
}

var (
	servicesOnce   sync.Once
	sharedServices *cliServices
	servicesErr    error
)

// setupServices opens the service database and wires the application
// services, exactly as the REST API does at startup. The wiring runs once
// and is shared across all command handlers of an invocation. Configuration
// comes from CONFIG_PATH or the DATABASE_* environment variables.
func setupServices(log logger.Logger) (*cliServices, error) {
	servicesOnce.Do(func() {
		sharedServices, servicesErr = initializeServices(log)
	})
	return sharedServices, servicesErr
}

func initializeServices(log logger.Logger) (*cliServices, error) {
	cfg, err := config.InitializeRestConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(
		&models.TherapistModel{},
		&models.PatientModel{},
		&models.CheckInModel{},
		&models.ReportModel{},
		&models.ActivityLogModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	therapistRepo, err := persistence.NewGormTherapistRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create therapist repository: %w", err)
	}

	patientRepo, err := persistence.NewGormPatientRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create patient repository: %w", err)
	}

	checkinRepo, err := persistence.NewGormCheckInRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create check-in repository: %w", err)
	}

	reportRepo, err := persistence.NewGormReportRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create report repository: %w", err)
	}

	activityRepo, err := persistence.NewGormActivityRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity repository: %w", err)
	}

	builder, err := export.NewExcelWorkbookBuilder(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create workbook builder: %w", err)
	}

	mailer, err := mail.NewSMTPMailer(cfg.SMTP, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}

	recorder, err := app.NewActivityRecorder(activityRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity recorder: %w", err)
	}

	accountService, err := app.NewAccountService(therapistRepo, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	enrollmentService, err := app.NewEnrollmentService(patientRepo, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create enrollment service: %w", err)
	}

	reportService, err := app.NewReportService(patientRepo, checkinRepo, reportRepo,
		builder, mailer, recorder, cfg.SystemName, filepath.Join(cfg.DataDir, "excel_exports"), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}

	return &cliServices{
		accounts:   accountService,
		enrollment: enrollmentService,
		reports:    reportService,
	}, nil
}
