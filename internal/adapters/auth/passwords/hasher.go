package passwords

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"remedios-api/internal/ports/auth"
)

// Hasher implementa auth.PasswordHasher con bcrypt.
type Hasher struct {
	cost int
}

// NewHasher crea un Hasher. Un cost fuera de rango usa bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", auth.ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (h *Hasher) Compare(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return auth.ErrMismatch
	}
	// hash corrupto o con formato inesperado: para el login es lo mismo que no coincidir
	return fmt.Errorf("%w: %v", auth.ErrMismatch, err)
}

var _ auth.PasswordHasher = (*Hasher)(nil)
