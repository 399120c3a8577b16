//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/therapists"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testIdentity = therapists.Identity{
	Email:        "alice@clinic.org",
	Name:         "Alice",
	Organization: "Clinic",
}

func TestPatientHandler_SavePatient_Success(t *testing.T) {
	mockEnrollmentService := new(MockEnrollmentService)
	mockCheckInService := new(MockCheckInService)
	handler := NewPatientHandler(mockEnrollmentService, mockCheckInService)

	mockEnrollmentService.On("Enroll", mock.Anything, "PT-001", mock.Anything, testIdentity).
		Return(&patients.Patient{ID: "PT-001", Name: "Jane", EnrolledBy: "alice@clinic.org"}, nil)

	w, c := jsonRequest(t, "POST", "/api/therapy/save-patient", SavePatientRequest{
		PatientID:   "PT-001",
		PatientData: map[string]interface{}{"name": "Jane"},
	})
	setIdentity(c, testIdentity)

	handler.SavePatient(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Patient enrolled successfully")
	mockEnrollmentService.AssertExpectations(t)
}

func TestPatientHandler_SavePatient_MissingData(t *testing.T) {
	mockEnrollmentService := new(MockEnrollmentService)
	mockCheckInService := new(MockCheckInService)
	handler := NewPatientHandler(mockEnrollmentService, mockCheckInService)

	w, c := jsonRequest(t, "POST", "/api/therapy/save-patient", map[string]interface{}{
		"patientId": "PT-001",
	})
	setIdentity(c, testIdentity)

	handler.SavePatient(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockEnrollmentService.AssertNotCalled(t, "Enroll")
}

func TestPatientHandler_GetAllPatients_Success(t *testing.T) {
	mockEnrollmentService := new(MockEnrollmentService)
	mockCheckInService := new(MockCheckInService)
	handler := NewPatientHandler(mockEnrollmentService, mockCheckInService)

	mockEnrollmentService.On("List", mock.Anything, testIdentity).
		Return([]*patients.Patient{
			{
				ID:         "PT-001",
				Name:       "Jane",
				EnrolledBy: "alice@clinic.org",
				EnrolledAt: time.Now(),
				Details:    map[string]interface{}{"language": "en"},
			},
		}, nil)

	w, c := jsonRequest(t, "GET", "/api/therapy/get-all-patients", nil)
	setIdentity(c, testIdentity)

	handler.GetAllPatients(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"patientId":"PT-001"`)
	assert.Contains(t, w.Body.String(), `"language":"en"`)
}

func TestPatientHandler_SaveCheckIn_Success(t *testing.T) {
	mockEnrollmentService := new(MockEnrollmentService)
	mockCheckInService := new(MockCheckInService)
	handler := NewPatientHandler(mockEnrollmentService, mockCheckInService)

	mockCheckInService.On("Record", mock.Anything, mock.MatchedBy(func(checkin *checkins.CheckIn) bool {
		return checkin.PatientID == "PT-001" && checkin.Date == "2025-01-06" && checkin.Emotional.Value == 4
	}), testIdentity).Return(nil)

	w, c := jsonRequest(t, "POST", "/api/therapy/save-checkin", SaveCheckInRequest{
		PatientID: "PT-001",
		CheckInData: &CheckInPayload{
			Date:      "2025-01-06",
			Time:      "09:30",
			Emotional: RatingPayload{Value: 4, Notes: "calm"},
		},
	})
	setIdentity(c, testIdentity)

	handler.SaveCheckIn(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Daily check-in saved successfully")
	mockCheckInService.AssertExpectations(t)
}

func TestPatientHandler_SaveCheckIn_UnknownPatient(t *testing.T) {
	mockEnrollmentService := new(MockEnrollmentService)
	mockCheckInService := new(MockCheckInService)
	handler := NewPatientHandler(mockEnrollmentService, mockCheckInService)

	mockCheckInService.On("Record", mock.Anything, mock.Anything, mock.Anything).
		Return(patients.ErrPatientNotFound)

	w, c := jsonRequest(t, "POST", "/api/therapy/save-checkin", SaveCheckInRequest{
		PatientID: "PT-404",
		CheckInData: &CheckInPayload{
			Date: "2025-01-06",
			Time: "09:30",
		},
	})
	setIdentity(c, testIdentity)

	handler.SaveCheckIn(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Patient not found")
}

func TestPatientHandler_GetWeekData_Success(t *testing.T) {
	mockEnrollmentService := new(MockEnrollmentService)
	mockCheckInService := new(MockCheckInService)
	handler := NewPatientHandler(mockEnrollmentService, mockCheckInService)

	week, err := checkins.ParseWeek("2025-W02")
	require.NoError(t, err)

	mockCheckInService.On("WeekData", mock.Anything, "PT-001", week, testIdentity).
		Return(checkins.WeekData{
			"2025-01-06": &checkins.CheckIn{
				PatientID: "PT-001",
				Date:      "2025-01-06",
				Time:      "09:30",
				Emotional: checkins.Rating{Value: 4},
			},
		}, nil)

	w, c := jsonRequest(t, "GET", "/api/therapy/get-week-data/PT-001/2025-W02", nil)
	c.Params = gin.Params{
		{Key: "patientId", Value: "PT-001"},
		{Key: "week", Value: "2025-W02"},
	}
	setIdentity(c, testIdentity)

	handler.GetWeekData(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"weekData"`)
	assert.Contains(t, w.Body.String(), `"2025-01-06"`)
}

func TestPatientHandler_GetWeekData_BadWeek(t *testing.T) {
	mockEnrollmentService := new(MockEnrollmentService)
	mockCheckInService := new(MockCheckInService)
	handler := NewPatientHandler(mockEnrollmentService, mockCheckInService)

	w, c := jsonRequest(t, "GET", "/api/therapy/get-week-data/PT-001/not-a-week", nil)
	c.Params = gin.Params{
		{Key: "patientId", Value: "PT-001"},
		{Key: "week", Value: "not-a-week"},
	}
	setIdentity(c, testIdentity)

	handler.GetWeekData(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockCheckInService.AssertNotCalled(t, "WeekData")
}
