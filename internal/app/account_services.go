package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"therapy_companion_service/internal/domain/activity"
	"therapy_companion_service/internal/domain/therapists"
	"therapy_companion_service/internal/pkg/logger"
)

// accountService implements the AccountService interface for therapist accounts
type accountService struct {
	therapistRepo therapists.TherapistRepository
	recorder      activity.Recorder
	logger        logger.Logger
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(therapistRepo therapists.TherapistRepository, recorder activity.Recorder, logger logger.Logger) (therapists.AccountService, error) {
	return &accountService{
		therapistRepo: therapistRepo,
		recorder:      recorder,
		logger:        logger,
	}, nil
}

// Register creates a therapist account with a hashed password and a fresh
// access token. The token is returned to the client exactly once here.
func (s *accountService) Register(ctx context.Context, reg therapists.Registration) (*therapists.Therapist, error) {
	passwordHash, err := therapists.HashPassword(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := therapists.GenerateAccessToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	therapist := &therapists.Therapist{
		Email:        reg.Email,
		Name:         reg.Name,
		Organization: reg.Organization,
		PasswordHash: passwordHash,
		AccessToken:  token,
		Active:       true,
		CreatedAt:    time.Now(),
	}

	if err := therapist.Validate(); err != nil {
		return nil, err
	}

	if err := s.therapistRepo.Create(ctx, therapist); err != nil {
		return nil, fmt.Errorf("failed to create therapist: %w", err)
	}

	s.recorder.Record(ctx, activity.TypeTherapistRegistration, map[string]interface{}{
		"email": therapist.Email,
	})

	s.logger.Info("Registered therapist ", therapist.Email)
	return therapist, nil
}

// Login verifies credentials and rotates the access token, invalidating any
// earlier session.
func (s *accountService) Login(ctx context.Context, email, password string) (*therapists.Therapist, error) {
	therapist, err := s.therapistRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get therapist by email: %w", err)
	}

	if !therapists.CheckPassword(therapist.PasswordHash, password) {
		return nil, therapists.ErrInvalidCredentials
	}

	if !therapist.Active {
		return nil, therapists.ErrAccountInactive
	}

	token, err := therapists.GenerateAccessToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	now := time.Now()
	therapist.AccessToken = token
	therapist.LastLogin = &now

	if err := s.therapistRepo.UpdateByEmail(ctx, therapist); err != nil {
		return nil, fmt.Errorf("failed to update therapist: %w", err)
	}

	s.recorder.Record(ctx, activity.TypeTherapistLogin, map[string]interface{}{
		"email": email,
	})

	s.logger.Info("Therapist logged in: ", email)
	return therapist, nil
}

// ValidateToken resolves a bearer token to an active therapist account.
func (s *accountService) ValidateToken(ctx context.Context, token string) (*therapists.Therapist, error) {
	if token == "" {
		return nil, therapists.ErrTokenInvalid
	}

	therapist, err := s.therapistRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, therapists.ErrTokenInvalid) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get therapist by token: %w", err)
	}

	if !therapist.Active {
		return nil, therapists.ErrTokenInvalid
	}

	return therapist, nil
}
