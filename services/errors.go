package services

import (
	"errors"
	"fmt"

	"registrations/models"

	"gorm.io/gorm"
)

var (
	// ErrForbidden is returned when the caller's role or scope does not allow the operation
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when the target row is absent or outside the caller's scope
	ErrNotFound = errors.New("participant not found")
	// ErrConflict is returned when the identifier or email is already taken
	ErrConflict = errors.New("participant already exists")
	// ErrValidation is returned for malformed payloads and unknown enum tags
	ErrValidation = errors.New("validation failure")
	// ErrCredentialIssuance is returned when a password or its hash could not be generated
	ErrCredentialIssuance = errors.New("credential issuance failure")
	// ErrCredentialDelivery is returned when the one-time password could not be sent
	ErrCredentialDelivery = errors.New("credential delivery failure")
	// ErrStoreUnavailable wraps any other persistence error
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInvalidCredentials is returned by Authenticate for an unknown email or a wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// storeError maps a gorm error onto the service taxonomy
func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, models.ErrInvalidEnum):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}
