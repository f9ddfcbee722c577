package users

import "context"

type Repository interface {
	// GetByUsername devuelve ErrNotFound si no existe.
	GetByUsername(ctx context.Context, username string) (User, error)
	// Create asigna el ID; ErrUsernameTaken si el username ya existe.
	Create(ctx context.Context, u User) (User, error)
}

// Throttle limita intentos fallidos de login por username.
// El límite y la ventana los define la implementación.
type Throttle interface {
	Blocked(ctx context.Context, key string) (bool, error)
	// Fail registra un intento fallido y devuelve el total dentro de la ventana.
	Fail(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}
