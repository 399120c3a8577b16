//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/privacy"
	"therapy_companion_service/internal/domain/reports"
	"therapy_companion_service/internal/domain/system"
	"therapy_companion_service/internal/domain/therapists"
	"therapy_companion_service/internal/infrastructure/export"
	"therapy_companion_service/internal/infrastructure/persistence"
	"therapy_companion_service/internal/pkg/config"
	"therapy_companion_service/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// stubMailer captures messages instead of dialing SMTP. Set failWith to
// simulate delivery failures.
type stubMailer struct {
	sent     []reports.Message
	failWith error
}

func (m *stubMailer) Send(_ context.Context, msg reports.Message) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.sent = append(m.sent, msg)
	return nil
}

// serviceContext wires every application service against a fresh database.
type serviceContext struct {
	Persistence *persistence.TestContext
	Mailer      *stubMailer
	Accounts    therapists.AccountService
	Enrollment  patients.EnrollmentService
	CheckIns    checkins.CheckInService
	Reports     reports.ReportService
	Privacy     privacy.Service
	Stats       system.StatsService
}

func setupServices(t *testing.T) *serviceContext {
	t.Helper()

	pctx := persistence.SetupTestDB(t, config.SqliteDbType)
	log := testutil.SetupTestLogger(t)
	mailer := &stubMailer{}

	recorder, err := NewActivityRecorder(pctx.ActivityRepo, log)
	require.NoError(t, err)

	accounts, err := NewAccountService(pctx.TherapistRepo, recorder, log)
	require.NoError(t, err)

	enrollment, err := NewEnrollmentService(pctx.PatientRepo, recorder, log)
	require.NoError(t, err)

	checkinSvc, err := NewCheckInService(pctx.CheckInRepo, pctx.PatientRepo, recorder, log)
	require.NoError(t, err)

	builder, err := export.NewExcelWorkbookBuilder(log)
	require.NoError(t, err)

	reportSvc, err := NewReportService(pctx.PatientRepo, pctx.CheckInRepo, pctx.ReportRepo,
		builder, mailer, recorder, "Therapeutic Companion System", t.TempDir(), log)
	require.NoError(t, err)

	privacySvc, err := NewPrivacyService(pctx.PatientRepo, pctx.CheckInRepo, pctx.ReportRepo, recorder, log)
	require.NoError(t, err)

	stats, err := NewStatsService(pctx.TherapistRepo, pctx.PatientRepo, pctx.CheckInRepo, pctx.ReportRepo, log)
	require.NoError(t, err)

	return &serviceContext{
		Persistence: pctx,
		Mailer:      mailer,
		Accounts:    accounts,
		Enrollment:  enrollment,
		CheckIns:    checkinSvc,
		Reports:     reportSvc,
		Privacy:     privacySvc,
		Stats:       stats,
	}
}

// registerTherapist creates an account and returns its identity.
func registerTherapist(t *testing.T, svc therapists.AccountService, email string) therapists.Identity {
	t.Helper()

	therapist, err := svc.Register(context.Background(), therapists.Registration{
		Email:        email,
		Name:         "Dr. Example",
		Organization: "Example Clinic",
		Password:     "correct horse battery staple",
	})
	require.NoError(t, err)
	return therapist.Identity()
}

// enrollPatient enrolls a patient for the given caller.
func enrollPatient(t *testing.T, svc patients.EnrollmentService, patientID string, caller therapists.Identity) *patients.Patient {
	t.Helper()

	patient, err := svc.Enroll(context.Background(), patientID, map[string]interface{}{
		"name":           "Jane Doe",
		"therapistName":  caller.Name,
		"therapistEmail": caller.Email,
		"language":       "en",
	}, caller)
	require.NoError(t, err)
	return patient
}
