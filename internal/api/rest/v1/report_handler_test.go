//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/reports"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportHandler_GenerateExcelReport_Success(t *testing.T) {
	mockReportService := new(MockReportService)
	handler := NewReportHandler(mockReportService)

	week, err := checkins.ParseWeek("2025-W02")
	require.NoError(t, err)

	mockReportService.On("GenerateWeekly", mock.Anything, "PT-001", week, testIdentity).
		Return(&reports.Report{
			ID:        "r-1",
			PatientID: "PT-001",
			Week:      "2025-W02",
			Filename:  "therapy_report_PT-001_2025-W02_20250110_090000.xlsx",
			FileData:  []byte{0x50, 0x4b, 0x03, 0x04},
		}, nil)

	w, c := jsonRequest(t, "GET", "/api/therapy/generate-excel-report/PT-001/2025-W02", nil)
	c.Params = gin.Params{
		{Key: "patientId", Value: "PT-001"},
		{Key: "week", Value: "2025-W02"},
	}
	setIdentity(c, testIdentity)

	handler.GenerateExcelReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, reports.XlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "therapy_report_PT-001_2025-W02_")
	assert.Equal(t, []byte{0x50, 0x4b, 0x03, 0x04}, w.Body.Bytes())
}

func TestReportHandler_GenerateExcelReport_PatientNotFound(t *testing.T) {
	mockReportService := new(MockReportService)
	handler := NewReportHandler(mockReportService)

	mockReportService.On("GenerateWeekly", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, patients.ErrPatientNotFound)

	w, c := jsonRequest(t, "GET", "/api/therapy/generate-excel-report/PT-404/2025-W02", nil)
	c.Params = gin.Params{
		{Key: "patientId", Value: "PT-404"},
		{Key: "week", Value: "2025-W02"},
	}
	setIdentity(c, testIdentity)

	handler.GenerateExcelReport(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReportHandler_EmailReport_Sent(t *testing.T) {
	mockReportService := new(MockReportService)
	handler := NewReportHandler(mockReportService)

	week, err := checkins.ParseWeek("2025-W02")
	require.NoError(t, err)

	mockReportService.On("EmailWeekly", mock.Anything, "PT-001", week, "", testIdentity).
		Return(&reports.EmailOutcome{
			Sent:       true,
			Recipient:  "alice@clinic.org",
			Subject:    "Weekly Therapy Report - Jane - Week 2025-W02",
			Attachment: "report.xlsx",
			Note:       "Email sent with Excel attachment",
		}, nil)

	w, c := jsonRequest(t, "POST", "/api/therapy/email-report", EmailReportRequest{
		PatientID: "PT-001",
		Week:      "2025-W02",
	})
	setIdentity(c, testIdentity)

	handler.EmailReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email sent successfully")
	assert.NotContains(t, w.Body.String(), `"content"`)
}

func TestReportHandler_EmailReport_DeliveryFailedReturnsPreview(t *testing.T) {
	mockReportService := new(MockReportService)
	handler := NewReportHandler(mockReportService)

	week, err := checkins.ParseWeek("2025-W02")
	require.NoError(t, err)

	mockReportService.On("EmailWeekly", mock.Anything, "PT-001", week, "", testIdentity).
		Return(&reports.EmailOutcome{
			Sent:      false,
			Recipient: "alice@clinic.org",
			Subject:   "Weekly Therapy Report - Jane - Week 2025-W02",
			Body:      "Dear Alice, ...",
			Note:      "Email not sent: smtp credentials are not configured",
		}, nil)

	w, c := jsonRequest(t, "POST", "/api/therapy/email-report", EmailReportRequest{
		PatientID: "PT-001",
		Week:      "2025-W02",
	})
	setIdentity(c, testIdentity)

	handler.EmailReport(c)

	assert.Equal(t, http.StatusOK, w.Code, "a prepared preview is still a success")
	assert.Contains(t, w.Body.String(), "Email report prepared")
	assert.Contains(t, w.Body.String(), "Dear Alice")
}

func TestReportHandler_EmailReport_BadWeek(t *testing.T) {
	mockReportService := new(MockReportService)
	handler := NewReportHandler(mockReportService)

	w, c := jsonRequest(t, "POST", "/api/therapy/email-report", EmailReportRequest{
		PatientID: "PT-001",
		Week:      "2025/02",
	})
	setIdentity(c, testIdentity)

	handler.EmailReport(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockReportService.AssertNotCalled(t, "EmailWeekly")
}
