package therapists

import (
	"context"
	"errors"
)

// Domain errors handlers branch on when mapping to HTTP status codes.
var (
	// ErrEmailTaken is returned when registering an already registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login with a wrong email or password.
	// It deliberately does not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountInactive is returned for deactivated accounts.
	ErrAccountInactive = errors.New("account deactivated")

	// ErrTokenInvalid is returned when a bearer token resolves to no active therapist.
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// Registration carries the input for creating a therapist account.
type Registration struct {
	Email        string
	Name         string
	Organization string
	Password     string
}

// AccountService defines methods for therapist registration, login and token validation.
type AccountService interface {
	// Register creates a new therapist account and returns it with a fresh
	// access token. Returns ErrEmailTaken for duplicate registrations.
	Register(ctx context.Context, reg Registration) (*Therapist, error)

	// Login verifies credentials, rotates the access token and records the
	// login time. Returns ErrInvalidCredentials or ErrAccountInactive.
	Login(ctx context.Context, email, password string) (*Therapist, error)

	// ValidateToken resolves a bearer token to an active therapist.
	// Returns ErrTokenInvalid when no active account carries the token.
	ValidateToken(ctx context.Context, token string) (*Therapist, error)
}

// TherapistRepository defines the interface for therapist persistence.
type TherapistRepository interface {
	Create(ctx context.Context, therapist *Therapist) error
	GetByEmail(ctx context.Context, email string) (*Therapist, error)
	GetByToken(ctx context.Context, token string) (*Therapist, error)
	UpdateByEmail(ctx context.Context, therapist *Therapist) error
	Count(ctx context.Context) (int64, error)
}
