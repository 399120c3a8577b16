//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/therapists"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentService_Enroll(t *testing.T) {
	svc := setupServices(t)
	caller := registerTherapist(t, svc.Accounts, "alice@clinic.org")

	patient := enrollPatient(t, svc.Enrollment, "PT-001", caller)
	assert.Equal(t, "Jane Doe", patient.Name)
	assert.Equal(t, "alice@clinic.org", patient.EnrolledBy)
	assert.Equal(t, "Example Clinic", patient.Organization)
	assert.False(t, patient.EnrolledAt.IsZero())
	assert.Equal(t, "en", patient.Details["language"])
}

func TestEnrollmentService_List_ScopedToEnroller(t *testing.T) {
	svc := setupServices(t)
	alice := registerTherapist(t, svc.Accounts, "alice@clinic.org")
	bob := registerTherapist(t, svc.Accounts, "bob@clinic.org")

	enrollPatient(t, svc.Enrollment, "PT-001", alice)
	enrollPatient(t, svc.Enrollment, "PT-002", alice)
	enrollPatient(t, svc.Enrollment, "PT-003", bob)

	mine, err := svc.Enrollment.List(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	admin := therapists.Identity{Email: therapists.AdminEmail, Name: "System Admin"}
	all, err := svc.Enrollment.List(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestEnrollmentService_Get_AccessDenied(t *testing.T) {
	svc := setupServices(t)
	alice := registerTherapist(t, svc.Accounts, "alice@clinic.org")
	bob := registerTherapist(t, svc.Accounts, "bob@clinic.org")

	enrollPatient(t, svc.Enrollment, "PT-001", alice)

	_, err := svc.Enrollment.Get(context.Background(), "PT-001", bob)
	assert.ErrorIs(t, err, patients.ErrAccessDenied)

	_, err = svc.Enrollment.Get(context.Background(), "PT-404", alice)
	assert.ErrorIs(t, err, patients.ErrPatientNotFound)
}

func TestCheckInService_Record(t *testing.T) {
	svc := setupServices(t)
	caller := registerTherapist(t, svc.Accounts, "alice@clinic.org")
	enrollPatient(t, svc.Enrollment, "PT-001", caller)

	checkin := &checkins.CheckIn{
		PatientID:  "PT-001",
		Date:       "2025-01-06",
		Time:       "09:30",
		Emotional:  checkins.Rating{Value: 4, Notes: "calm"},
		Medication: checkins.Rating{Value: checkins.MedicationAllDoses},
		Activity:   checkins.Rating{Value: 3},
	}
	err := svc.CheckIns.Record(context.Background(), checkin, caller)
	require.NoError(t, err)
	assert.Equal(t, "alice@clinic.org", checkin.RecordedBy)
}

func TestCheckInService_Record_UnknownPatient(t *testing.T) {
	svc := setupServices(t)
	caller := registerTherapist(t, svc.Accounts, "alice@clinic.org")

	err := svc.CheckIns.Record(context.Background(), &checkins.CheckIn{
		PatientID: "PT-404",
		Date:      "2025-01-06",
		Time:      "09:30",
	}, caller)
	assert.ErrorIs(t, err, patients.ErrPatientNotFound)
}

func TestCheckInService_Record_OtherTherapistsPatient(t *testing.T) {
	svc := setupServices(t)
	alice := registerTherapist(t, svc.Accounts, "alice@clinic.org")
	bob := registerTherapist(t, svc.Accounts, "bob@clinic.org")
	enrollPatient(t, svc.Enrollment, "PT-001", alice)

	err := svc.CheckIns.Record(context.Background(), &checkins.CheckIn{
		PatientID: "PT-001",
		Date:      "2025-01-06",
		Time:      "09:30",
	}, bob)
	assert.ErrorIs(t, err, patients.ErrAccessDenied)
}

func TestCheckInService_WeekData(t *testing.T) {
	svc := setupServices(t)
	caller := registerTherapist(t, svc.Accounts, "alice@clinic.org")
	enrollPatient(t, svc.Enrollment, "PT-001", caller)

	for _, date := range []string{"2025-01-06", "2025-01-08"} {
		require.NoError(t, svc.CheckIns.Record(context.Background(), &checkins.CheckIn{
			PatientID:  "PT-001",
			Date:       date,
			Time:       "09:30",
			Emotional:  checkins.Rating{Value: 4},
			Medication: checkins.Rating{Value: checkins.MedicationAllDoses},
			Activity:   checkins.Rating{Value: 3},
		}, caller))
	}
	// A check-in outside the requested week.
	require.NoError(t, svc.CheckIns.Record(context.Background(), &checkins.CheckIn{
		PatientID: "PT-001",
		Date:      "2025-01-13",
		Time:      "09:30",
	}, caller))

	week, err := checkins.ParseWeek("2025-W02")
	require.NoError(t, err)

	data, err := svc.CheckIns.WeekData(context.Background(), "PT-001", week, caller)
	require.NoError(t, err)
	assert.Len(t, data, 2)
	assert.Contains(t, data, "2025-01-06")
	assert.Contains(t, data, "2025-01-08")
}

func TestCheckInService_WeekData_UnenrolledPatientIsEmpty(t *testing.T) {
	svc := setupServices(t)
	caller := registerTherapist(t, svc.Accounts, "alice@clinic.org")

	week, err := checkins.ParseWeek("2025-W02")
	require.NoError(t, err)

	data, err := svc.CheckIns.WeekData(context.Background(), "PT-404", week, caller)
	require.NoError(t, err)
	assert.Empty(t, data)
}
