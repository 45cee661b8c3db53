package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/home-financing/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an issued API token stays valid
const TokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned for an unknown client or wrong secret
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator issues API tokens to the configured client
type Authenticator struct {
	config *config.Config
	log    *logrus.Logger
	now    func() time.Time
}

// NewAuthenticator initializes a new authenticator
func NewAuthenticator(cfg *config.Config, log *logrus.Logger) *Authenticator {
	return &Authenticator{config: cfg, log: log, now: time.Now}
}

// IssueToken checks client credentials and returns a signed JWT
func (a *Authenticator) IssueToken(clientID, secret string) (string, error) {
	if clientID != a.config.ClientID || a.config.ClientSecretHash == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.config.ClientSecretHash), []byte(secret)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := a.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   clientID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	})
	tokenString, err := token.SignedString([]byte(a.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	a.log.Infof("Token issued for client: %s", clientID)
	return tokenString, nil
}
