// Package credentials mints the one-time password handed to a newly provisioned
// participant and derives the argon2id hash that is stored in its place.
package credentials

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

const (
	// MinPasswordLength is the shortest password an Issuer will ever generate
	MinPasswordLength = 16

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// Largest multiple of len(alphabet) below 256, bytes above are rejected to avoid modulo bias
	maxUnbiased = 256 - 256%len(alphabet)
)

var (
	// ErrIssuance is returned when the random source fails, no account may be created without it
	ErrIssuance = errors.New("credential issuance failed")
	// ErrMalformedHash is returned by Verify when the stored hash is not a valid argon2id PHC string
	ErrMalformedHash = errors.New("malformed password hash")
)

// Params are the argon2id cost parameters
type Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams follows the OWASP baseline for argon2id
var DefaultParams = Params{
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// validate rejects cost parameters argon2 cannot run with
func (p Params) validate() error {
	switch {
	case p.Iterations < 1:
		return errors.New("iterations must be at least 1")
	case p.Parallelism < 1:
		return errors.New("parallelism must be at least 1")
	case p.Memory < 8*uint32(p.Parallelism):
		return fmt.Errorf("memory must be at least %d KiB", 8*uint32(p.Parallelism))
	case p.SaltLength < 1:
		return errors.New("salt must not be empty")
	case p.KeyLength < 1:
		return errors.New("key must not be empty")
	}
	return nil
}

// Credential is the result of one issuance. Password is the only copy of the cleartext
// secret and must be delivered once, never logged or stored.
type Credential struct {
	ID       uuid.UUID
	Password string
	Hash     string
}

// Issuer generates account identifiers, passwords and password hashes
type Issuer struct {
	random         io.Reader
	params         Params
	passwordLength int
}

// Option configures an Issuer
type Option func(*Issuer)

// WithParams overrides the argon2id cost parameters. Hash refuses parameters argon2 cannot run with.
func WithParams(params Params) Option {
	return func(i *Issuer) {
		i.params = params
	}
}

// WithPasswordLength sets the generated password length, values under MinPasswordLength are raised to it
func WithPasswordLength(length int) Option {
	return func(i *Issuer) {
		i.passwordLength = max(length, MinPasswordLength)
	}
}

// NewIssuer creates an Issuer reading from random. A nil reader selects crypto/rand.
func NewIssuer(random io.Reader, opts ...Option) *Issuer {
	if random == nil {
		random = rand.Reader
	}
	i := &Issuer{
		random:         random,
		params:         DefaultParams,
		passwordLength: MinPasswordLength,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Issue mints a fresh identifier, password and hash
func (i *Issuer) Issue() (Credential, error) {
	id, err := uuid.NewRandomFromReader(i.random)
	if err != nil {
		return Credential{}, fmt.Errorf("%w: id: %w", ErrIssuance, err)
	}
	password, err := i.generatePassword()
	if err != nil {
		return Credential{}, err
	}
	hash, err := i.Hash(password)
	if err != nil {
		return Credential{}, err
	}
	return Credential{ID: id, Password: password, Hash: hash}, nil
}

// generatePassword draws an alphanumeric password by rejection sampling
func (i *Issuer) generatePassword() (string, error) {
	out := make([]byte, 0, i.passwordLength)
	buf := make([]byte, i.passwordLength*2)
	for len(out) < i.passwordLength {
		if _, err := io.ReadFull(i.random, buf); err != nil {
			return "", fmt.Errorf("%w: password: %w", ErrIssuance, err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == i.passwordLength {
				break
			}
		}
	}
	return string(out), nil
}

// Hash derives the PHC-encoded argon2id hash of password with a fresh salt
func (i *Issuer) Hash(password string) (string, error) {
	if err := i.params.validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIssuance, err)
	}
	salt := make([]byte, i.params.SaltLength)
	if _, err := io.ReadFull(i.random, salt); err != nil {
		return "", fmt.Errorf("%w: salt: %w", ErrIssuance, err)
	}
	key := argon2.IDKey([]byte(password), salt, i.params.Iterations, i.params.Memory, i.params.Parallelism, i.params.KeyLength)
	return encode(i.params, salt, key), nil
}

// Verify reports whether password matches the PHC-encoded argon2id hash
func Verify(encodedHash, password string) (bool, error) {
	params, salt, key, err := decode(encodedHash)
	if err != nil {
		return false, err
	}
	candidate := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func encode(params Params, salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		params.Memory,
		params.Iterations,
		params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decode(encodedHash string) (Params, []byte, []byte, error) {
	var params Params
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return params, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: salt: %w", ErrMalformedHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, fmt.Errorf("%w: key", ErrMalformedHash)
	}
	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(key))
	if err := params.validate(); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	return params, salt, key, nil
}
