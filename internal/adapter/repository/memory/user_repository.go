package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ledgerworks/bank-ledger/internal/domain"
	"github.com/ledgerworks/bank-ledger/internal/logger"
)

// UserRepository is the in-process identity store, keyed by username.
// Usernames are unique; a second registration under the same name fails.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return domain.User{}, domain.ErrDuplicateUsername
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.Username] = user

	logger.Info("user repository create success", logger.Fields{
		"username": user.Username,
	})

	return user, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}

	return user, nil
}
