package utils

import (
	"errors"
	"fmt"
	"time"

	"registrations/models"
	"registrations/utils/permissions"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "registrations-api"

var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the JWT payload carrying a caller's role and university
type TokenClaims struct {
	Role       models.Role        `json:"role"`
	University *models.University `json:"university,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a token for the participant, valid for ttl
func GenerateJWT(participant *models.Participant, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret not configured")
	}
	now := time.Now()
	claims := TokenClaims{
		Role:       participant.Role,
		University: participant.University,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   participant.ID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseJWT validates the token signature and expiry and returns the caller's claims
func ParseJWT(tokenStr, secret string) (permissions.Claims, error) {
	var claims TokenClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return permissions.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return permissions.Claims{}, fmt.Errorf("%w: subject: %v", ErrInvalidToken, err)
	}
	// Role and university decode through the enum validators, an unknown tag fails above
	return permissions.Claims{
		Subject:    subject,
		Role:       claims.Role,
		University: claims.University,
	}, nil
}
