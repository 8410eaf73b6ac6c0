package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config holds every setting read from the environment
type Config struct {
	APIPort string `envconfig:"API_PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`

	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     string `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"postgres"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"registrations"`
	PostgresTimeZone string `envconfig:"POSTGRES_TIMEZONE" default:"America/Montreal"`

	JWTSecret     string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiration time.Duration `envconfig:"JWT_EXPIRATION" default:"24h"`

	// Organizer account seeded into an empty database
	DefaultOrganizerEmail string `envconfig:"DEFAULT_ORGANIZER_EMAIL" default:"organizer@registrations.local"`
	DefaultPassword       string `envconfig:"DEFAULT_PASSWORD"`

	// University assigned to every newly provisioned participant
	DefaultUniversity string `envconfig:"DEFAULT_UNIVERSITY" default:"unassigned"`
	PasswordLength    int    `envconfig:"PASSWORD_LENGTH" default:"16"`

	MailHost     string `envconfig:"MAIL_HOST"`
	MailPort     string `envconfig:"MAIL_PORT" default:"587"`
	MailUsername string `envconfig:"MAIL_USERNAME"`
	MailPassword string `envconfig:"MAIL_PASSWORD"`
	MailFrom     string `envconfig:"MAIL_FROM"`
	ClientUrl    string `envconfig:"CLIENT_URL" default:"http://localhost:5173"`

	RateLimitRate  int `envconfig:"RATE_LIMIT_RATE" default:"6000"`
	RateLimitBurst int `envconfig:"RATE_LIMIT_BURST" default:"600"`
}

// Env is the loaded configuration, populated by Load
var Env Config

// Load reads the optional .env file then decodes the environment into Env
func Load() error {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		logrus.Debug("No .env file found, using process environment")
	}
	return envconfig.Process("", &Env)
}

// MailEnabled reports whether an SMTP relay is configured for credential delivery
func (c Config) MailEnabled() bool {
	return c.MailHost != ""
}
