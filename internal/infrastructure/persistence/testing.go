//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"therapy_companion_service/internal/domain/activity"
	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/reports"
	"therapy_companion_service/internal/domain/therapists"
	"therapy_companion_service/internal/infrastructure/persistence/models"
	"therapy_companion_service/internal/pkg/config"
	"therapy_companion_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	TherapistRepo therapists.TherapistRepository
	PatientRepo   patients.PatientRepository
	CheckInRepo   checkins.CheckInRepository
	ReportRepo    reports.ReportRepository
	ActivityRepo  activity.Repository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(
		&models.TherapistModel{},
		&models.PatientModel{},
		&models.CheckInModel{},
		&models.ReportModel{},
		&models.ActivityLogModel{},
	)
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	log := testutil.SetupTestLogger(t)

	therapistRepo, err := NewGormTherapistRepository(db, log)
	require.NoError(t, err, "Failed to create therapist repository")

	patientRepo, err := NewGormPatientRepository(db, log)
	require.NoError(t, err, "Failed to create patient repository")

	checkinRepo, err := NewGormCheckInRepository(db, log)
	require.NoError(t, err, "Failed to create check-in repository")

	reportRepo, err := NewGormReportRepository(db, log)
	require.NoError(t, err, "Failed to create report repository")

	activityRepo, err := NewGormActivityRepository(db, log)
	require.NoError(t, err, "Failed to create activity repository")

	return &TestContext{
		DB:            db,
		TherapistRepo: therapistRepo,
		PatientRepo:   patientRepo,
		CheckInRepo:   checkinRepo,
		ReportRepo:    reportRepo,
		ActivityRepo:  activityRepo,
	}
}

// CreateTestTherapist creates a therapist account with default values
func CreateTestTherapist(t *testing.T, email string) *therapists.Therapist {
	t.Helper()

	hash, err := therapists.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	token, err := therapists.GenerateAccessToken()
	require.NoError(t, err)

	return &therapists.Therapist{
		Email:        email,
		Name:         "Test Therapist",
		Organization: "Test Clinic",
		PasswordHash: hash,
		AccessToken:  token,
		Active:       true,
		CreatedAt:    time.Now(),
	}
}

// CreateTestPatient creates a patient enrolled by the given therapist email
func CreateTestPatient(t *testing.T, patientID, enrolledBy string) *patients.Patient {
	t.Helper()

	return &patients.Patient{
		ID:             patientID,
		Name:           "Test Patient",
		TherapistName:  "Test Therapist",
		TherapistEmail: enrolledBy,
		EnrolledBy:     enrolledBy,
		Organization:   "Test Clinic",
		EnrolledAt:     time.Now(),
		Details:        map[string]interface{}{"language": "en"},
	}
}

// CreateTestCheckIn creates a check-in for a patient on the given date
func CreateTestCheckIn(t *testing.T, patientID, date string) *checkins.CheckIn {
	t.Helper()

	return &checkins.CheckIn{
		PatientID:  patientID,
		Date:       date,
		Time:       "09:30",
		Emotional:  checkins.Rating{Value: 4, Notes: "steady morning"},
		Medication: checkins.Rating{Value: checkins.MedicationAllDoses},
		Activity:   checkins.Rating{Value: 3},
		RecordedBy: "therapist@example.org",
		CreatedAt:  time.Now(),
	}
}
