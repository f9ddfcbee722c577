package postal

import (
	"context"
	"errors"
)

var (
	ErrInvalidPostalCode = errors.New("invalid postal code")
	ErrNotFound          = errors.New("postal code not found")
	ErrUpstream          = errors.New("postal lookup upstream error")
)

// Address es el resultado transitorio de una consulta por CEP. No se persiste.
type Address struct {
	PostalCode string
	Street     string
	District   string
	City       string
	State      string
}

// Lookup resuelve un CEP a dirección.
type Lookup interface {
	Lookup(ctx context.Context, postalCode string) (Address, error)
}
