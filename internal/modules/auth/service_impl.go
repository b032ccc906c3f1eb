package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

type service struct {
	adminEmail        string
	adminPasswordHash string
	jwtKey            []byte
}

// NewService builds the auth service for the single admin principal
// configured through the environment.
func NewService(adminEmail, adminPasswordHash, jwtSecret string) Service {
	return &service{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		jwtKey:            []byte(jwtSecret),
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	if s.adminEmail == "" || email != s.adminEmail {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := &jwt.StandardClaims{
		Subject:   email,
		ExpiresAt: time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
