// Package user owns the canonical User aggregates. The registry is an
// in-memory, thread-safe key-value store keyed by user name with
// create-if-absent semantics; the engine receives users by reference and
// never creates or deletes them itself.
package user

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/models"
)

type Registry struct {
	logger *zap.Logger

	mu    sync.RWMutex
	users map[string]*models.User
	order []string
}

func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		logger: logger,
		users:  make(map[string]*models.User),
	}
}

// Get returns the user by name or models.ErrUserNotFound.
func (r *Registry) Get(name string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[name]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

// GetOrCreate returns the existing user or creates one with a fresh ID.
func (r *Registry) GetOrCreate(name, phone, email string) (*models.User, error) {
	if name == "" {
		return nil, models.ErrEmptyUserName
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[name]; ok {
		return u, nil
	}
	u := models.NewUser(uuid.New(), name, phone, email)
	r.users[name] = u
	r.order = append(r.order, name)
	return u, nil
}

// Add registers a user if the name is not taken; duplicates are ignored.
func (r *Registry) Add(u *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Name]; ok {
		return
	}
	r.users[u.Name] = u
	r.order = append(r.order, u.Name)
}

// All returns every user in registration order.
func (r *Registry) All() []*models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.User, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.users[name])
	}
	return out
}

// Count returns the number of registered users.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
