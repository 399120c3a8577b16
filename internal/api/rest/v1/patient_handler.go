package v1

import (
	"net/http"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"

	"github.com/gin-gonic/gin"
)

// PatientHandler defines the interface for patient enrollment and check-ins
type PatientHandler interface {
	SavePatient(ctx *gin.Context)
	GetAllPatients(ctx *gin.Context)
	SaveCheckIn(ctx *gin.Context)
	GetWeekData(ctx *gin.Context)
}

// patientHandler struct holds the enrollment and check-in services
type patientHandler struct {
	enrollmentService patients.EnrollmentService
	checkinService    checkins.CheckInService
}

// NewPatientHandler creates a new PatientHandler
func NewPatientHandler(enrollmentService patients.EnrollmentService, checkinService checkins.CheckInService) PatientHandler {
	return &patientHandler{
		enrollmentService: enrollmentService,
		checkinService:    checkinService,
	}
}

// SavePatient enrolls a patient for the calling therapist
func (handler *patientHandler) SavePatient(ctx *gin.Context) {
	var req SavePatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing patient ID or data"})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	_, err := handler.enrollmentService.Enroll(ctx.Request.Context(), req.PatientID, req.PatientData, identityFromContext(ctx))
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Success: true, Message: "Patient enrolled successfully"})
}

// GetAllPatients lists the patients enrolled by the calling therapist
func (handler *patientHandler) GetAllPatients(ctx *gin.Context) {
	listed, err := handler.enrollmentService.List(ctx.Request.Context(), identityFromContext(ctx))
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	views := make([]map[string]interface{}, 0, len(listed))
	for _, patient := range listed {
		views = append(views, NewPatientView(patient))
	}

	ctx.JSON(http.StatusOK, PatientsResponse{Success: true, Patients: views})
}

// SaveCheckIn records a daily check-in for a patient
func (handler *patientHandler) SaveCheckIn(ctx *gin.Context) {
	var req SaveCheckInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing patient ID or check-in data"})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := handler.checkinService.Record(ctx.Request.Context(), req.ToDomain(), identityFromContext(ctx)); err != nil {
		writeDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Success: true, Message: "Daily check-in saved successfully"})
}

// GetWeekData returns a patient's check-ins for one ISO week keyed by date
func (handler *patientHandler) GetWeekData(ctx *gin.Context) {
	week, err := checkins.ParseWeek(ctx.Param("week"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	data, err := handler.checkinService.WeekData(ctx.Request.Context(), ctx.Param("patientId"), week, identityFromContext(ctx))
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	views := make(map[string]CheckInView, len(data))
	for date, checkin := range data {
		views[date] = NewCheckInView(checkin)
	}

	ctx.JSON(http.StatusOK, WeekDataResponse{Success: true, WeekData: views})
}
