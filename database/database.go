package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"registrations/config"
	"registrations/models"
	"registrations/utils/credentials"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// ErrNoDefaultPassword is returned when an empty database must be seeded but DEFAULT_PASSWORD is unusable
var ErrNoDefaultPassword = fmt.Errorf("DEFAULT_PASSWORD must be set to at least %d characters to seed the first organizer", credentials.MinPasswordLength)

// PostgresDSN builds the connection string from the loaded configuration
func PostgresDSN(cfg config.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=%s",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresDB, cfg.PostgresPassword, cfg.PostgresTimeZone)
}

// Open opens a gorm connection on any dialector with the settings the store relies on
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// InitDB connects to Postgres, migrates the schema and seeds the default organizer if needed
func InitDB() error {
	db, err := Open(postgres.Open(PostgresDSN(config.Env)))
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := Populate(context.Background(), db, credentials.NewIssuer(nil)); err != nil {
		return fmt.Errorf("failed to populate database: %w", err)
	}
	DB = db
	return nil
}

// Migrate creates or updates the participants table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Participant{})
}

// Populate seeds an organizer account when the participants table is empty,
// otherwise nobody could ever log in to provision the first accounts
func Populate(ctx context.Context, db *gorm.DB, issuer *credentials.Issuer) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Participant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := config.Env.DefaultPassword
	if len(password) < credentials.MinPasswordLength {
		return ErrNoDefaultPassword
	}
	hash, err := issuer.Hash(password)
	if err != nil {
		return err
	}

	email := config.Env.DefaultOrganizerEmail
	if email == "" {
		return errors.New("default organizer email not configured")
	}

	organizer := models.Participant{
		ID:           uuid.New(),
		Role:         models.RoleOrganizer,
		Email:        email,
		FirstName:    "Organizer",
		LastName:     "Organizer",
		PasswordHash: hash,
	}
	if err := db.WithContext(ctx).Create(&organizer).Error; err != nil {
		return err
	}
	logrus.WithField("email", email).Info("Default organizer created")
	return nil
}
