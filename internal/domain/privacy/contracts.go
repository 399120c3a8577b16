// Package privacy contains the data subject rights operations, i.e.
// full deletion and full export of everything stored about a patient.
package privacy

import (
	"context"
	"time"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/therapists"
)

// Export bundles every record held about a patient.
type Export struct {
	PatientInfo *patients.Patient   `json:"patient_info"`
	CheckIns    []*checkins.CheckIn `json:"checkins"`
	ExportDate  time.Time           `json:"export_date"`
	ExportedBy  string              `json:"exported_by"`
}

// Service defines the data subject rights operations.
type Service interface {
	// DeletePatientData removes the patient record, all check-ins and all
	// stored reports. Deleting an unknown patient is not an error.
	DeletePatientData(ctx context.Context, patientID string, caller therapists.Identity) error

	// ExportPatientData returns everything stored about the patient.
	// Returns patients.ErrPatientNotFound or patients.ErrAccessDenied.
	ExportPatientData(ctx context.Context, patientID string, caller therapists.Identity) (*Export, error)
}
