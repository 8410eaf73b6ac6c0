package services

import (
	"context"
	"fmt"
	"time"

	"registrations/metrics"
	"registrations/models"
	"registrations/utils/credentials"
	"registrations/utils/permissions"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	participantsTable = "participants"
	// contain_cv is computed by the database so CV bytes never leave it for a preview
	previewColumns = "id, first_name, last_name, email, role, competition, university_name, cv IS NOT NULL AS contain_cv"
)

// Store is the persistence contract of the participant service.
// Every filter it receives comes from permissions.Resolve, never from raw caller input.
type Store interface {
	ListPreview(ctx context.Context, filter permissions.Filter) ([]models.ParticipantPreview, error)
	ListByAffiliation(ctx context.Context, university models.University) ([]models.ParticipantPreview, error)
	GetByID(ctx context.Context, id uuid.UUID, filter permissions.Filter) (*models.Participant, error)
	FindByEmail(ctx context.Context, email string) (*models.Participant, error)
	Create(ctx context.Context, minimal models.MinimalParticipant, university models.University, cred credentials.Credential) error
	Delete(ctx context.Context, id uuid.UUID, filter permissions.Filter) error
}

// ParticipantStore is the gorm implementation of Store
type ParticipantStore struct {
	db *gorm.DB
}

func NewParticipantStore(db *gorm.DB) *ParticipantStore {
	return &ParticipantStore{db: db}
}

// scoped applies a resolved filter as WHERE clauses
func scoped(tx *gorm.DB, filter permissions.Filter) *gorm.DB {
	if filter.ID != nil {
		tx = tx.Where("id = ?", *filter.ID)
	}
	if filter.University != nil {
		tx = tx.Where("university_name = ?", *filter.University)
	}
	if len(filter.Roles) > 0 {
		tx = tx.Where("role IN ?", filter.Roles)
	}
	return tx
}

// ListPreview returns the previews of every row matching filter in insertion order
func (s *ParticipantStore) ListPreview(ctx context.Context, filter permissions.Filter) ([]models.ParticipantPreview, error) {
	defer metrics.RecordDBOperation("list_preview", participantsTable, time.Now())

	previews := make([]models.ParticipantPreview, 0)
	err := scoped(s.db.WithContext(ctx).Model(&models.Participant{}), filter).
		Select(previewColumns).
		Order("created_at, id").
		Scan(&previews).Error
	if err != nil {
		return nil, storeError(err)
	}
	return previews, nil
}

// ListByAffiliation returns the previews of every row of a university
func (s *ParticipantStore) ListByAffiliation(ctx context.Context, university models.University) ([]models.ParticipantPreview, error) {
	if !university.Valid() {
		return nil, fmt.Errorf("%w: university %q", ErrValidation, university)
	}
	return s.ListPreview(ctx, permissions.Filter{University: &university})
}

// GetByID returns the full record, attachments included, if it matches filter
func (s *ParticipantStore) GetByID(ctx context.Context, id uuid.UUID, filter permissions.Filter) (*models.Participant, error) {
	defer metrics.RecordDBOperation("get", participantsTable, time.Now())

	var participant models.Participant
	err := scoped(s.db.WithContext(ctx).Where("id = ?", id), filter).
		Take(&participant).Error
	if err != nil {
		return nil, storeError(err)
	}
	return &participant, nil
}

// FindByEmail returns the record owning email, used to authenticate logins
func (s *ParticipantStore) FindByEmail(ctx context.Context, email string) (*models.Participant, error) {
	defer metrics.RecordDBOperation("find_by_email", participantsTable, time.Now())

	var participant models.Participant
	if err := s.db.WithContext(ctx).Where("email = ?", email).Take(&participant).Error; err != nil {
		return nil, storeError(err)
	}
	return &participant, nil
}

// Create inserts a new record from the creation payload. Sensitive fields stay null.
func (s *ParticipantStore) Create(ctx context.Context, minimal models.MinimalParticipant, university models.University, cred credentials.Credential) error {
	defer metrics.RecordDBOperation("create", participantsTable, time.Now())

	if err := minimal.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if !university.Valid() {
		return fmt.Errorf("%w: university %q", ErrValidation, university)
	}
	if cred.ID == uuid.Nil || cred.Hash == "" {
		return fmt.Errorf("%w: missing identifier or password hash", ErrValidation)
	}

	competition := minimal.Competition
	participant := models.Participant{
		ID:           cred.ID,
		Role:         minimal.Role,
		Email:        minimal.Email,
		FirstName:    minimal.FirstName,
		LastName:     minimal.LastName,
		University:   &university,
		Competition:  &competition,
		PasswordHash: cred.Hash,
	}
	return storeError(s.db.WithContext(ctx).Create(&participant).Error)
}

// Delete removes the row only if it exists and matches filter, in a single statement
func (s *ParticipantStore) Delete(ctx context.Context, id uuid.UUID, filter permissions.Filter) error {
	defer metrics.RecordDBOperation("delete", participantsTable, time.Now())

	result := scoped(s.db.WithContext(ctx).Where("id = ?", id), filter).
		Delete(&models.Participant{})
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
