//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/privacy"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPrivacyHandler_DeletePatient_Success(t *testing.T) {
	mockPrivacyService := new(MockPrivacyService)
	handler := NewPrivacyHandler(mockPrivacyService)

	mockPrivacyService.On("DeletePatientData", mock.Anything, "PT-001", testIdentity).Return(nil)

	w, c := jsonRequest(t, "DELETE", "/api/privacy/delete-patient/PT-001", nil)
	c.Params = gin.Params{{Key: "patientId", Value: "PT-001"}}
	setIdentity(c, testIdentity)

	handler.DeletePatient(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "All patient data deleted successfully")
	mockPrivacyService.AssertExpectations(t)
}

func TestPrivacyHandler_DeletePatient_AccessDenied(t *testing.T) {
	mockPrivacyService := new(MockPrivacyService)
	handler := NewPrivacyHandler(mockPrivacyService)

	mockPrivacyService.On("DeletePatientData", mock.Anything, "PT-001", testIdentity).
		Return(patients.ErrAccessDenied)

	w, c := jsonRequest(t, "DELETE", "/api/privacy/delete-patient/PT-001", nil)
	c.Params = gin.Params{{Key: "patientId", Value: "PT-001"}}
	setIdentity(c, testIdentity)

	handler.DeletePatient(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPrivacyHandler_ExportPatientData_Success(t *testing.T) {
	mockPrivacyService := new(MockPrivacyService)
	handler := NewPrivacyHandler(mockPrivacyService)

	mockPrivacyService.On("ExportPatientData", mock.Anything, "PT-001", testIdentity).
		Return(&privacy.Export{
			PatientInfo: &patients.Patient{ID: "PT-001", Name: "Jane", EnrolledBy: "alice@clinic.org"},
			ExportDate:  time.Now(),
			ExportedBy:  "alice@clinic.org",
		}, nil)

	w, c := jsonRequest(t, "GET", "/api/privacy/export-patient-data/PT-001", nil)
	c.Params = gin.Params{{Key: "patientId", Value: "PT-001"}}
	setIdentity(c, testIdentity)

	handler.ExportPatientData(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "patient_data_PT-001_")
	assert.Contains(t, w.Body.String(), `"exported_by":"alice@clinic.org"`)
}

func TestPrivacyHandler_ExportPatientData_NotFound(t *testing.T) {
	mockPrivacyService := new(MockPrivacyService)
	handler := NewPrivacyHandler(mockPrivacyService)

	mockPrivacyService.On("ExportPatientData", mock.Anything, "PT-404", testIdentity).
		Return(nil, patients.ErrPatientNotFound)

	w, c := jsonRequest(t, "GET", "/api/privacy/export-patient-data/PT-404", nil)
	c.Params = gin.Params{{Key: "patientId", Value: "PT-404"}}
	setIdentity(c, testIdentity)

	handler.ExportPatientData(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
