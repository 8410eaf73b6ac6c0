package database

import (
	"context"
	"testing"

	"registrations/config"
	"registrations/models"
	"registrations/utils/credentials"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(sqlite.Open("file::memory:"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func TestPopulateSeedsOrganizerOnce(t *testing.T) {
	config.Env.DefaultOrganizerEmail = "organizer@example.com"
	config.Env.DefaultPassword = "correct horse battery staple"
	t.Cleanup(func() { config.Env = config.Config{} })

	db := newTestDB(t)
	issuer := credentials.NewIssuer(nil, credentials.WithParams(credentials.Params{
		Memory: 64, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32,
	}))

	require.NoError(t, Populate(context.Background(), db, issuer))
	require.NoError(t, Populate(context.Background(), db, issuer))

	var rows []models.Participant
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, models.RoleOrganizer, rows[0].Role)
	assert.Equal(t, "organizer@example.com", rows[0].Email)
	assert.Nil(t, rows[0].University)

	ok, err := credentials.Verify(rows[0].PasswordHash, "correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPopulateRequiresStrongDefaultPassword(t *testing.T) {
	t.Cleanup(func() { config.Env = config.Config{} })
	db := newTestDB(t)
	issuer := credentials.NewIssuer(nil, credentials.WithParams(credentials.Params{
		Memory: 64, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32,
	}))

	for _, password := range []string{"", "admin"} {
		config.Env = config.Config{DefaultOrganizerEmail: "organizer@example.com", DefaultPassword: password}
		assert.ErrorIs(t, Populate(context.Background(), db, issuer), ErrNoDefaultPassword)
	}

	var count int64
	require.NoError(t, db.Model(&models.Participant{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(config.Config{
		PostgresHost: "db", PostgresPort: "5432", PostgresUser: "app",
		PostgresDB: "registrations", PostgresPassword: "s3cret", PostgresTimeZone: "UTC",
	})
	assert.Equal(t, "host=db port=5432 user=app dbname=registrations password=s3cret sslmode=disable TimeZone=UTC", dsn)
}
