package v1

import (
	"fmt"
	"net/http"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/reports"

	"github.com/gin-gonic/gin"
)

// ReportHandler defines the interface for weekly report operations
type ReportHandler interface {
	GenerateExcelReport(ctx *gin.Context)
	EmailReport(ctx *gin.Context)
}

// reportHandler struct holds the report service
type reportHandler struct {
	reportService reports.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService reports.ReportService) ReportHandler {
	return &reportHandler{reportService: reportService}
}

// GenerateExcelReport builds the weekly workbook and streams it for download
func (handler *reportHandler) GenerateExcelReport(ctx *gin.Context) {
	week, err := checkins.ParseWeek(ctx.Param("week"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	report, err := handler.reportService.GenerateWeekly(ctx.Request.Context(), ctx.Param("patientId"), week, identityFromContext(ctx))
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", report.Filename))
	ctx.Data(http.StatusOK, reports.XlsxContentType, report.FileData)
}

// EmailReport generates the weekly report and emails it to the recipient.
// When delivery fails the prepared content is returned as a preview so the
// client can still use it.
func (handler *reportHandler) EmailReport(ctx *gin.Context) {
	var req EmailReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload"})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	week, err := checkins.ParseWeek(req.Week)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	outcome, err := handler.reportService.EmailWeekly(ctx.Request.Context(), req.PatientID, week, req.CustomRecipient, identityFromContext(ctx))
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	resp := EmailReportResponse{
		Success:    true,
		Recipient:  outcome.Recipient,
		Subject:    outcome.Subject,
		Attachment: outcome.Attachment,
		Note:       outcome.Note,
	}
	if outcome.Sent {
		resp.Message = "Email sent successfully"
	} else {
		resp.Message = "Email report prepared"
		resp.Content = outcome.Body
	}

	ctx.JSON(http.StatusOK, resp)
}
