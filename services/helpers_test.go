package services

import (
	"math/rand/v2"
	"testing"
	"time"

	"registrations/database"
	"registrations/models"
	"registrations/utils/credentials"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var cheapParams = credentials.Params{Memory: 64, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open("file::memory:"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every statement on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestIssuer(seed byte) *credentials.Issuer {
	var s [32]byte
	s[0] = seed
	return credentials.NewIssuer(rand.NewChaCha8(s), credentials.WithParams(cheapParams))
}

type seedOption func(*models.Participant)

func withCV(cv []byte) seedOption {
	return func(p *models.Participant) { p.CV = cv }
}

func withCreatedAt(at time.Time) seedOption {
	return func(p *models.Participant) { p.CreatedAt = at }
}

func seedParticipant(t *testing.T, db *gorm.DB, role models.Role, university *models.University, opts ...seedOption) *models.Participant {
	t.Helper()
	id := uuid.New()
	competition := models.CompetitionProgramming
	p := &models.Participant{
		ID:           id,
		Role:         role,
		Email:        id.String() + "@example.com",
		FirstName:    "First",
		LastName:     "Last",
		University:   university,
		Competition:  &competition,
		PasswordHash: "$argon2id$v=19$m=64,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5",
	}
	for _, opt := range opts {
		opt(p)
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func exists(t *testing.T, db *gorm.DB, id uuid.UUID) bool {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Participant{}).Where("id = ?", id).Count(&count).Error)
	return count == 1
}
