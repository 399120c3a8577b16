package therapists

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// AdminEmail identifies the built-in system administrator. Requests carrying
// the master token act as this identity and bypass ownership checks.
const AdminEmail = "admin@system"

// Therapist entity
type Therapist struct {
	Email        string    `validate:"required,email"`
	Name         string    `validate:"required,min=1,max=255"`
	Organization string    `validate:"required,min=1,max=255"`
	PasswordHash string    `validate:"required"`
	AccessToken  string    `validate:"required"`
	Active       bool      ``
	CreatedAt    time.Time `validate:"required"`
	LastLogin    *time.Time
}

// Validate for validating Therapist struct
func (t *Therapist) Validate() error {
	validate := validator.New()

	err := validate.Struct(t)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Identity is the authenticated caller attached to each request.
type Identity struct {
	Email        string
	Name         string
	Organization string
}

// IsAdmin reports whether the identity is the system administrator.
func (i Identity) IsAdmin() bool {
	return i.Email == AdminEmail
}

// Identity returns the request identity for this therapist.
func (t *Therapist) Identity() Identity {
	return Identity{
		Email:        t.Email,
		Name:         t.Name,
		Organization: t.Organization,
	}
}

// GenerateAccessToken returns a new URL-safe bearer token.
func GenerateAccessToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
