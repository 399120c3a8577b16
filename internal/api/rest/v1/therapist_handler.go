package v1

import (
	"errors"
	"net/http"
	"strings"

	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/therapists"

	"github.com/gin-gonic/gin"
)

// writeDomainError maps domain errors onto HTTP status codes. Validation
// failures and anything unrecognized fall back to 400 and 500 respectively.
func writeDomainError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, therapists.ErrEmailTaken):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email already registered"})
	case errors.Is(err, therapists.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, therapists.ErrAccountInactive):
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Account deactivated"})
	case errors.Is(err, patients.ErrPatientNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Patient not found"})
	case errors.Is(err, patients.ErrAccessDenied):
		ctx.JSON(http.StatusForbidden, ErrorResponse{Error: "Unauthorized access"})
	case strings.Contains(err.Error(), "validation"):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// TherapistHandler defines the interface for therapist account operations
type TherapistHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
}

// therapistHandler struct holds the account service
type therapistHandler struct {
	accountService therapists.AccountService
}

// NewTherapistHandler creates a new TherapistHandler
func NewTherapistHandler(accountService therapists.AccountService) TherapistHandler {
	return &therapistHandler{accountService: accountService}
}

// Register creates a therapist account and returns its first access token
func (handler *therapistHandler) Register(ctx *gin.Context) {
	var req RegisterTherapistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload"})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	therapist, err := handler.accountService.Register(ctx.Request.Context(), therapists.Registration{
		Email:        req.Email,
		Name:         req.Name,
		Organization: req.Organization,
		Password:     req.Password,
	})
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewAuthResponse("Registration successful", therapist))
}

// Login verifies credentials and returns a fresh session token
func (handler *therapistHandler) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload"})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	therapist, err := handler.accountService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewAuthResponse("", therapist))
}
