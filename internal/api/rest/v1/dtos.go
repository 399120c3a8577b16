package v1

import (
	"errors"
	"fmt"
	"time"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/system"
	"therapy_companion_service/internal/domain/therapists"

	"github.com/go-playground/validator/v10"
)

func validateStruct(v interface{}) error {
	validate := validator.New()

	err := validate.Struct(v)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// RegisterTherapistRequest is the payload for therapist registration.
type RegisterTherapistRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Name         string `json:"name" validate:"required,min=1,max=255"`
	Organization string `json:"organization" validate:"required,min=1,max=255"`
	Password     string `json:"password" validate:"required,min=8,max=128"`
}

// Validate for validating RegisterTherapistRequest struct
func (r *RegisterTherapistRequest) Validate() error {
	return validateStruct(r)
}

// LoginRequest is the payload for therapist login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validateStruct(r)
}

// SavePatientRequest is the payload for patient enrollment. PatientData
// carries the client's free-form enrollment fields.
type SavePatientRequest struct {
	PatientID   string                 `json:"patientId" validate:"required,min=1,max=50"`
	PatientData map[string]interface{} `json:"patientData" validate:"required"`
}

// Validate for validating SavePatientRequest struct
func (r *SavePatientRequest) Validate() error {
	return validateStruct(r)
}

// RatingPayload is one rated dimension of a daily check-in.
type RatingPayload struct {
	Value int    `json:"value" validate:"min=0,max=5"`
	Notes string `json:"notes" validate:"max=2000"`
}

// CheckInPayload is the check-in content submitted by the client.
type CheckInPayload struct {
	Date       string        `json:"date" validate:"required"`
	Time       string        `json:"time" validate:"required"`
	Emotional  RatingPayload `json:"emotional"`
	Medication RatingPayload `json:"medication"`
	Activity   RatingPayload `json:"activity"`
}

// SaveCheckInRequest is the payload for recording a daily check-in.
type SaveCheckInRequest struct {
	PatientID   string          `json:"patientId" validate:"required,min=1,max=50"`
	CheckInData *CheckInPayload `json:"checkinData" validate:"required"`
}

// Validate for validating SaveCheckInRequest struct
func (r *SaveCheckInRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain converts the request into a check-in entity.
func (r *SaveCheckInRequest) ToDomain() *checkins.CheckIn {
	return &checkins.CheckIn{
		PatientID:  r.PatientID,
		Date:       r.CheckInData.Date,
		Time:       r.CheckInData.Time,
		Emotional:  checkins.Rating{Value: r.CheckInData.Emotional.Value, Notes: r.CheckInData.Emotional.Notes},
		Medication: checkins.Rating{Value: r.CheckInData.Medication.Value, Notes: r.CheckInData.Medication.Notes},
		Activity:   checkins.Rating{Value: r.CheckInData.Activity.Value, Notes: r.CheckInData.Activity.Notes},
	}
}

// EmailReportRequest is the payload for emailing a weekly report.
type EmailReportRequest struct {
	PatientID       string `json:"patientId" validate:"required,min=1,max=50"`
	Week            string `json:"week" validate:"required"`
	CustomRecipient string `json:"customRecipient" validate:"omitempty,email"`
}

// Validate for validating EmailReportRequest struct
func (r *EmailReportRequest) Validate() error {
	return validateStruct(r)
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// InfoResponse is the uniform success payload for operations without a body.
type InfoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TherapistView is the public shape of a therapist account.
type TherapistView struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
}

// AuthResponse is returned from registration and login. The access token is
// only ever surfaced here.
type AuthResponse struct {
	Success     bool          `json:"success"`
	Message     string        `json:"message,omitempty"`
	AccessToken string        `json:"access_token"`
	Therapist   TherapistView `json:"therapist"`
}

// NewAuthResponse builds the auth payload for a therapist.
func NewAuthResponse(message string, therapist *therapists.Therapist) AuthResponse {
	return AuthResponse{
		Success:     true,
		Message:     message,
		AccessToken: therapist.AccessToken,
		Therapist: TherapistView{
			Email:        therapist.Email,
			Name:         therapist.Name,
			Organization: therapist.Organization,
		},
	}
}

// CheckInView is the wire shape of one daily check-in.
type CheckInView struct {
	Date       string        `json:"date"`
	Time       string        `json:"time"`
	Emotional  RatingPayload `json:"emotional"`
	Medication RatingPayload `json:"medication"`
	Activity   RatingPayload `json:"activity"`
	RecordedBy string        `json:"recordedBy"`
}

// NewCheckInView converts a check-in entity to its wire shape.
func NewCheckInView(checkin *checkins.CheckIn) CheckInView {
	return CheckInView{
		Date:       checkin.Date,
		Time:       checkin.Time,
		Emotional:  RatingPayload{Value: checkin.Emotional.Value, Notes: checkin.Emotional.Notes},
		Medication: RatingPayload{Value: checkin.Medication.Value, Notes: checkin.Medication.Notes},
		Activity:   RatingPayload{Value: checkin.Activity.Value, Notes: checkin.Activity.Notes},
		RecordedBy: checkin.RecordedBy,
	}
}

// WeekDataResponse maps dates to the check-ins recorded on them.
type WeekDataResponse struct {
	Success  bool                   `json:"success"`
	WeekData map[string]CheckInView `json:"weekData"`
}

// NewPatientView flattens a patient into the enrollment shape clients
// submitted, with the service-stamped fields folded in.
func NewPatientView(patient *patients.Patient) map[string]interface{} {
	view := make(map[string]interface{}, len(patient.Details)+6)
	for k, v := range patient.Details {
		view[k] = v
	}
	view["patientId"] = patient.ID
	view["name"] = patient.Name
	view["therapistName"] = patient.TherapistName
	view["therapistEmail"] = patient.TherapistEmail
	view["enrolledBy"] = patient.EnrolledBy
	view["therapistOrganization"] = patient.Organization
	view["enrollmentTimestamp"] = patient.EnrolledAt.Format(time.RFC3339)
	return view
}

// PatientsResponse lists the caller's patients.
type PatientsResponse struct {
	Success  bool                     `json:"success"`
	Patients []map[string]interface{} `json:"patients"`
}

// EmailReportResponse reports the outcome of emailing a weekly report. When
// the email could not be sent the prepared content is included as a preview.
type EmailReportResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Recipient  string `json:"recipient"`
	Subject    string `json:"subject"`
	Content    string `json:"content,omitempty"`
	Attachment string `json:"attachment,omitempty"`
	Note       string `json:"note,omitempty"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string          `json:"status"`
	Service   string          `json:"service"`
	Version   string          `json:"version"`
	Features  []string        `json:"features"`
	Security  SecuritySummary `json:"security"`
	Timestamp string          `json:"timestamp"`
}

// SecuritySummary describes the security posture reported by the health check.
type SecuritySummary struct {
	Authentication   string `json:"authentication"`
	RateLimiting     string `json:"rate_limiting"`
	CORS             string `json:"cors"`
	HTTPSOnlyCookies bool   `json:"https_only_cookies"`
}

// StatsResponse is the admin statistics payload.
type StatsResponse struct {
	Success   bool          `json:"success"`
	Stats     *system.Stats `json:"stats"`
	Timestamp string        `json:"timestamp"`
}
