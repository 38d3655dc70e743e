// Package auth guards the admin dashboard behind a single configured
// username and password. It is a demo placeholder, not a security boundary:
// there is no lockout, rate limiting or token issuance.
package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/metinatakli/novaflix/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultUsername = "admin"
	DefaultPassword = "novaflix"
)

type Gate struct {
	username     string
	passwordHash []byte
}

func NewGate(username, password string) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &Gate{
		username:     username,
		passwordHash: hash,
	}, nil
}

// Authenticate succeeds only for the exact configured pair. Every other
// input yields domain.ErrInvalidCredentials.
func (g *Gate) Authenticate(username, password string) error {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password))

	if !usernameMatch || passwordErr != nil {
		return domain.ErrInvalidCredentials
	}

	return nil
}
