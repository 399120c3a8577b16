package v1

import (
	"fmt"
	"net/http"
	"time"

	"therapy_companion_service/internal/domain/privacy"

	"github.com/gin-gonic/gin"
)

// PrivacyHandler defines the interface for data subject rights operations
type PrivacyHandler interface {
	DeletePatient(ctx *gin.Context)
	ExportPatientData(ctx *gin.Context)
}

// privacyHandler struct holds the privacy service
type privacyHandler struct {
	privacyService privacy.Service
}

// NewPrivacyHandler creates a new PrivacyHandler
func NewPrivacyHandler(privacyService privacy.Service) PrivacyHandler {
	return &privacyHandler{privacyService: privacyService}
}

// DeletePatient removes every record held about a patient
func (handler *privacyHandler) DeletePatient(ctx *gin.Context) {
	patientID := ctx.Param("patientId")

	if err := handler.privacyService.DeletePatientData(ctx.Request.Context(), patientID, identityFromContext(ctx)); err != nil {
		writeDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Success: true, Message: "All patient data deleted successfully"})
}

// ExportPatientData returns every record held about a patient as a JSON download
func (handler *privacyHandler) ExportPatientData(ctx *gin.Context) {
	patientID := ctx.Param("patientId")

	export, err := handler.privacyService.ExportPatientData(ctx.Request.Context(), patientID, identityFromContext(ctx))
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	filename := fmt.Sprintf("patient_data_%s_%s.json", patientID, time.Now().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.JSON(http.StatusOK, export)
}
