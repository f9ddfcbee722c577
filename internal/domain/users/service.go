package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"remedios-api/internal/platform/logger"
	"remedios-api/internal/ports/auth"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// MaxPasswordBytes es el máximo que acepta bcrypt.
const MaxPasswordBytes = 72

type Service struct {
	repo     Repository
	hasher   auth.PasswordHasher
	throttle Throttle
	log      logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, hasher auth.PasswordHasher, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   repo,
		hasher: hasher,
		log:    log.With(map[string]any{"component": "users"}),
		now:    time.Now,
	}
}

// WithThrottle activa el bloqueo por intentos fallidos. nil lo desactiva.
func (s *Service) WithThrottle(t Throttle) *Service {
	s.throttle = t
	return s
}

// Authenticate devuelve el usuario si username existe y password coincide con su hash.
// Cualquier diferencia (usuario inexistente o password incorrecto) es ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	if s.throttleEnabled() {
		blocked, err := s.throttle.Blocked(ctx, username)
		if err != nil {
			// sin redis no se bloquea a nadie
			s.log.Warn("login throttle unavailable", map[string]any{"err": err})
		} else if blocked {
			return User{}, ErrTooManyAttempts
		}
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, s.fail(ctx, username)
		}
		return User{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrMismatch) {
			return User{}, s.fail(ctx, username)
		}
		return User{}, err
	}

	if s.throttleEnabled() {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn("login throttle reset failed", map[string]any{"err": err})
		}
	}
	return u, nil
}

// Register crea un usuario con el password hasheado.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" || len(in.Password) > MaxPasswordBytes {
		return User{}, ErrInvalidInput
	}

	hash, err := s.hasher.Hash(in.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return User{}, ErrInvalidInput
	}
	if err != nil {
		return User{}, fmt.Errorf("register: %w", err)
	}

	return s.repo.Create(ctx, User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
}

func (s *Service) throttleEnabled() bool {
	return s.throttle != nil
}

func (s *Service) fail(ctx context.Context, username string) error {
	if !s.throttleEnabled() {
		return ErrInvalidCredentials
	}

	n, err := s.throttle.Fail(ctx, username)
	if err != nil {
		s.log.Warn("login throttle unavailable", map[string]any{"err": err})
		return ErrInvalidCredentials
	}
	s.log.Debug("login failed", map[string]any{"username": username, "attempts": n})
	return ErrInvalidCredentials
}
