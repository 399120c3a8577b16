// cmd/therapy-companion-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	v1 "therapy_companion_service/internal/api/rest/v1"
	"therapy_companion_service/internal/app"
	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/privacy"
	"therapy_companion_service/internal/domain/reports"
	"therapy_companion_service/internal/domain/system"
	"therapy_companion_service/internal/domain/therapists"
	"therapy_companion_service/internal/infrastructure/export"
	"therapy_companion_service/internal/infrastructure/mail"
	"therapy_companion_service/internal/infrastructure/persistence"
	"therapy_companion_service/internal/infrastructure/persistence/models"
	"therapy_companion_service/internal/pkg/config"
	"therapy_companion_service/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	restConfig, err := config.InitializeRestConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Create the data directory layout before anything touches it
	if err := createDataDirectories(restConfig.DataDir); err != nil {
		return fmt.Errorf("failed to create data directories: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// createDataDirectories lays out the on-disk data directory. The database
// file, workbook exports and file logs all live under dataDir.
func createDataDirectories(dataDir string) error {
	for _, dir := range []string{
		dataDir,
		filepath.Join(dataDir, "excel_exports"),
		filepath.Join(dataDir, "logs"),
	} {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return err
		}
	}
	return nil
}

// appServices holds all initialized application services
type appServices struct {
	accounts   therapists.AccountService
	enrollment patients.EnrollmentService
	checkins   checkins.CheckInService
	reports    reports.ReportService
	privacy    privacy.Service
	stats      system.StatsService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(
		&models.TherapistModel{},
		&models.PatientModel{},
		&models.CheckInModel{},
		&models.ReportModel{},
		&models.ActivityLogModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
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

	// Initialize infrastructure
	builder, err := export.NewExcelWorkbookBuilder(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create workbook builder: %w", err)
	}

	mailer, err := mail.NewSMTPMailer(cfg.SMTP, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}

	// Initialize services
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

	checkinService, err := app.NewCheckInService(checkinRepo, patientRepo, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create check-in service: %w", err)
	}

	reportService, err := app.NewReportService(patientRepo, checkinRepo, reportRepo,
		builder, mailer, recorder, cfg.SystemName, filepath.Join(cfg.DataDir, "excel_exports"), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}

	privacyService, err := app.NewPrivacyService(patientRepo, checkinRepo, reportRepo, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create privacy service: %w", err)
	}

	statsService, err := app.NewStatsService(therapistRepo, patientRepo, checkinRepo, reportRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		accounts:   accountService,
		enrollment: enrollmentService,
		checkins:   checkinService,
		reports:    reportService,
		privacy:    privacyService,
		stats:      statsService,
	}, nil
}

// corsConfig restricts origins in production while keeping local
// development open.
func corsConfig(cfg *config.RestConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if cfg.Production && len(cfg.AllowedOrigins) > 0 && cfg.AllowedOrigins[0] != "*" {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	return corsCfg
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(corsConfig(cfg)))

	// Setup API routes
	v1.SetupRoutes(r,
		services.accounts,
		services.enrollment,
		services.checkins,
		services.reports,
		services.privacy,
		services.stats,
		cfg.MasterToken,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
