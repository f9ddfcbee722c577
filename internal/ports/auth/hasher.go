package auth

import "errors"

// ErrMismatch indica que el password no corresponde al hash.
var ErrMismatch = errors.New("password mismatch")

// ErrPasswordTooLong indica que el password supera lo que el algoritmo puede hashear.
var ErrPasswordTooLong = errors.New("password too long")

// PasswordHasher es el borde entre el dominio de usuarios y el algoritmo de hashing.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare devuelve ErrMismatch si plain no corresponde a hash.
	Compare(hash, plain string) error
}
