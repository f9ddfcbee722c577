package memory

import (
	"context"
	"sync"

	"remedios-api/internal/domain/users"
)

type userRepo struct {
	mu         sync.RWMutex
	byUsername map[string]users.User
	nextID     int64
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byUsername: make(map[string]users.User),
	}
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[username]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[u.Username]; exists {
		return users.User{}, users.ErrUsernameTaken
	}
	r.nextID++
	u.ID = r.nextID
	r.byUsername[u.Username] = u
	return u, nil
}
