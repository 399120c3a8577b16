package v1

import (
	"time"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/privacy"
	"therapy_companion_service/internal/domain/reports"
	"therapy_companion_service/internal/domain/system"
	"therapy_companion_service/internal/domain/therapists"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes sets up all the API routes.
func SetupRoutes(r *gin.Engine,
	accountService therapists.AccountService,
	enrollmentService patients.EnrollmentService,
	checkinService checkins.CheckInService,
	reportService reports.ReportService,
	privacyService privacy.Service,
	statsService system.StatsService,
	masterToken string) {

	r.Use(Metrics())
	r.Use(ClientIPContext())

	systemHandler := NewSystemHandler(statsService)
	r.GET("/", systemHandler.Index)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(BasePath) // lookup in version file
	api.GET("/health", systemHandler.Health)

	auth := BearerAuth(accountService, masterToken)
	api.GET("/stats", auth, systemHandler.Stats)

	// Therapy Routes
	therapy := api.Group("/therapy")
	therapistHandler := NewTherapistHandler(accountService)
	therapy.POST("/register-therapist", NewRateLimit(5, 24*time.Hour), therapistHandler.Register)
	therapy.POST("/login", NewRateLimit(10, time.Hour), therapistHandler.Login)

	patientHandler := NewPatientHandler(enrollmentService, checkinService)
	therapy.POST("/save-patient", auth, patientHandler.SavePatient)
	therapy.GET("/get-all-patients", auth, patientHandler.GetAllPatients)
	therapy.POST("/save-checkin", auth, patientHandler.SaveCheckIn)
	therapy.GET("/get-week-data/:patientId/:week", auth, patientHandler.GetWeekData)

	reportHandler := NewReportHandler(reportService)
	therapy.GET("/generate-excel-report/:patientId/:week", auth, NewRateLimit(20, time.Hour), reportHandler.GenerateExcelReport)
	therapy.POST("/email-report", auth, NewRateLimit(10, time.Hour), reportHandler.EmailReport)

	// Privacy Routes
	privacyGroup := api.Group("/privacy")
	privacyHandler := NewPrivacyHandler(privacyService)
	privacyGroup.DELETE("/delete-patient/:patientId", auth, privacyHandler.DeletePatient)
	privacyGroup.GET("/export-patient-data/:patientId", auth, privacyHandler.ExportPatientData)
}
