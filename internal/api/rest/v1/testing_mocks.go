//go:build unit
// +build unit

package v1

import (
	"context"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/privacy"
	"therapy_companion_service/internal/domain/reports"
	"therapy_companion_service/internal/domain/system"
	"therapy_companion_service/internal/domain/therapists"

	"github.com/stretchr/testify/mock"
)

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, reg therapists.Registration) (*therapists.Therapist, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*therapists.Therapist), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) (*therapists.Therapist, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*therapists.Therapist), args.Error(1)
}

func (m *MockAccountService) ValidateToken(ctx context.Context, token string) (*therapists.Therapist, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*therapists.Therapist), args.Error(1)
}

// MockEnrollmentService is a mock implementation of EnrollmentService
type MockEnrollmentService struct {
	mock.Mock
}

func (m *MockEnrollmentService) Enroll(ctx context.Context, patientID string, details map[string]interface{}, caller therapists.Identity) (*patients.Patient, error) {
	args := m.Called(ctx, patientID, details, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patients.Patient), args.Error(1)
}

func (m *MockEnrollmentService) List(ctx context.Context, caller therapists.Identity) ([]*patients.Patient, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*patients.Patient), args.Error(1)
}

func (m *MockEnrollmentService) Get(ctx context.Context, patientID string, caller therapists.Identity) (*patients.Patient, error) {
	args := m.Called(ctx, patientID, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patients.Patient), args.Error(1)
}

// MockCheckInService is a mock implementation of CheckInService
type MockCheckInService struct {
	mock.Mock
}

func (m *MockCheckInService) Record(ctx context.Context, checkin *checkins.CheckIn, caller therapists.Identity) error {
	args := m.Called(ctx, checkin, caller)
	return args.Error(0)
}

func (m *MockCheckInService) WeekData(ctx context.Context, patientID string, week checkins.Week, caller therapists.Identity) (checkins.WeekData, error) {
	args := m.Called(ctx, patientID, week, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(checkins.WeekData), args.Error(1)
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GenerateWeekly(ctx context.Context, patientID string, week checkins.Week, caller therapists.Identity) (*reports.Report, error) {
	args := m.Called(ctx, patientID, week, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.Report), args.Error(1)
}

func (m *MockReportService) EmailWeekly(ctx context.Context, patientID string, week checkins.Week, recipient string, caller therapists.Identity) (*reports.EmailOutcome, error) {
	args := m.Called(ctx, patientID, week, recipient, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.EmailOutcome), args.Error(1)
}

// MockPrivacyService is a mock implementation of the privacy Service
type MockPrivacyService struct {
	mock.Mock
}

func (m *MockPrivacyService) DeletePatientData(ctx context.Context, patientID string, caller therapists.Identity) error {
	args := m.Called(ctx, patientID, caller)
	return args.Error(0)
}

func (m *MockPrivacyService) ExportPatientData(ctx context.Context, patientID string, caller therapists.Identity) (*privacy.Export, error) {
	args := m.Called(ctx, patientID, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*privacy.Export), args.Error(1)
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Collect(ctx context.Context) (*system.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*system.Stats), args.Error(1)
}
