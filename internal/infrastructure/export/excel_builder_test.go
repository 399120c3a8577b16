//go:build unit
// +build unit

package export

import (
	"bytes"
	"testing"
	"time"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testPatient() *patients.Patient {
	return &patients.Patient{
		ID:             "PT-001",
		Name:           "Jane Doe",
		TherapistName:  "Dr. Smith",
		TherapistEmail: "smith@clinic.org",
		EnrolledBy:     "smith@clinic.org",
		EnrolledAt:     time.Now(),
	}
}

func testWeekData(t *testing.T) (checkins.Week, checkins.WeekData) {
	t.Helper()

	week, err := checkins.ParseWeek("2025-W02")
	require.NoError(t, err)

	data := checkins.WeekData{
		"2025-01-06": &checkins.CheckIn{
			PatientID:  "PT-001",
			Date:       "2025-01-06",
			Time:       "09:30",
			Emotional:  checkins.Rating{Value: 4, Notes: "good start"},
			Medication: checkins.Rating{Value: checkins.MedicationAllDoses},
			Activity:   checkins.Rating{Value: 3, Notes: "short walk"},
		},
		"2025-01-08": &checkins.CheckIn{
			PatientID:  "PT-001",
			Date:       "2025-01-08",
			Time:       "20:15",
			Emotional:  checkins.Rating{Value: 2, Notes: "difficult day"},
			Medication: checkins.Rating{Value: checkins.MedicationPartialDoses, Notes: "forgot evening dose"},
			Activity:   checkins.Rating{Value: 1},
		},
	}
	return week, data
}

func TestExcelWorkbookBuilder_Build_SheetLayout(t *testing.T) {
	builder, err := NewExcelWorkbookBuilder(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	week, data := testWeekData(t)
	raw, err := builder.Build(testPatient(), week, data)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Weekly Summary", "Daily Check-ins", "Detailed Notes"}, f.GetSheetList())

	title, err := f.GetCellValue("Weekly Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "WEEKLY THERAPY TRACKING REPORT", title)

	patientID, err := f.GetCellValue("Weekly Summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "PT-001", patientID)

	completion, err := f.GetCellValue("Weekly Summary", "E4")
	require.NoError(t, err)
	assert.Equal(t, "2/7 (28.6%)", completion)
}

func TestExcelWorkbookBuilder_Build_DailyRows(t *testing.T) {
	builder, err := NewExcelWorkbookBuilder(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	week, data := testWeekData(t)
	raw, err := builder.Build(testPatient(), week, data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Daily Check-ins")
	require.NoError(t, err)
	require.Len(t, rows, 8, "header plus seven weekdays")

	// Monday has a completed check-in.
	assert.Equal(t, "2025-01-06", rows[1][0])
	assert.Equal(t, "Monday", rows[1][1])
	assert.Equal(t, "4", rows[1][3])
	assert.Equal(t, "Yes, All Doses", rows[1][5])
	assert.Equal(t, "Completed", rows[1][9])

	// Tuesday has no entry.
	assert.Equal(t, "Tuesday", rows[2][1])
	assert.Equal(t, "-", rows[2][3])
	assert.Equal(t, "No Response", rows[2][9])

	// Wednesday recorded partial adherence.
	assert.Equal(t, "Partial Doses", rows[3][5])
}

func TestExcelWorkbookBuilder_Build_NotesOnlyForFilledFields(t *testing.T) {
	builder, err := NewExcelWorkbookBuilder(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	week, data := testWeekData(t)
	raw, err := builder.Build(testPatient(), week, data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Detailed Notes")
	require.NoError(t, err)

	// Header plus four non-empty note fields across the two check-ins.
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Date", "Category", "Rating", "Notes"}, rows[0][:4])
	assert.Equal(t, "good start", rows[1][3])
	assert.Equal(t, "difficult day", rows[3][3])
	assert.Equal(t, "forgot evening dose", rows[4][3])
}

func TestExcelWorkbookBuilder_Build_EmptyWeek(t *testing.T) {
	builder, err := NewExcelWorkbookBuilder(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	week, err := checkins.ParseWeek("2025-W02")
	require.NoError(t, err)

	raw, err := builder.Build(testPatient(), week, checkins.WeekData{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	completion, err := f.GetCellValue("Weekly Summary", "E4")
	require.NoError(t, err)
	assert.Equal(t, "0/7 (0.0%)", completion)

	avg, err := f.GetCellValue("Weekly Summary", "E5")
	require.NoError(t, err)
	assert.Equal(t, "N/A", avg)
}
