//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterTherapistRequest_Validate(t *testing.T) {
	valid := RegisterTherapistRequest{
		Email:        "alice@clinic.org",
		Name:         "Alice",
		Organization: "Clinic",
		Password:     "long enough password",
	}
	assert.NoError(t, valid.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())

	shortPassword := valid
	shortPassword.Password = "short"
	assert.Error(t, shortPassword.Validate())
}

func TestSaveCheckInRequest_Validate(t *testing.T) {
	valid := SaveCheckInRequest{
		PatientID: "PT-001",
		CheckInData: &CheckInPayload{
			Date:      "2025-01-06",
			Time:      "09:30",
			Emotional: RatingPayload{Value: 4},
		},
	}
	assert.NoError(t, valid.Validate())

	missingData := SaveCheckInRequest{PatientID: "PT-001"}
	assert.Error(t, missingData.Validate())

	outOfRange := valid
	outOfRange.CheckInData = &CheckInPayload{
		Date:      "2025-01-06",
		Time:      "09:30",
		Emotional: RatingPayload{Value: 6},
	}
	assert.Error(t, outOfRange.Validate())
}

func TestSaveCheckInRequest_ToDomain(t *testing.T) {
	req := SaveCheckInRequest{
		PatientID: "PT-001",
		CheckInData: &CheckInPayload{
			Date:       "2025-01-06",
			Time:       "09:30",
			Emotional:  RatingPayload{Value: 4, Notes: "calm"},
			Medication: RatingPayload{Value: 5},
			Activity:   RatingPayload{Value: 2, Notes: "tired"},
		},
	}

	checkin := req.ToDomain()
	assert.Equal(t, "PT-001", checkin.PatientID)
	assert.Equal(t, "2025-01-06", checkin.Date)
	assert.Equal(t, 4, checkin.Emotional.Value)
	assert.Equal(t, "calm", checkin.Emotional.Notes)
	assert.Equal(t, 5, checkin.Medication.Value)
	assert.Equal(t, "tired", checkin.Activity.Notes)
}

func TestEmailReportRequest_Validate(t *testing.T) {
	valid := EmailReportRequest{PatientID: "PT-001", Week: "2025-W02"}
	assert.NoError(t, valid.Validate())

	withRecipient := valid
	withRecipient.CustomRecipient = "supervisor@clinic.org"
	assert.NoError(t, withRecipient.Validate())

	badRecipient := valid
	badRecipient.CustomRecipient = "not-an-email"
	assert.Error(t, badRecipient.Validate())
}
