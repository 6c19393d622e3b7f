package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/songkeeper/internal/common"
)

// InMemoryRepository is a map-backed Repository used in tests and for
// running the server without a database.
type InMemoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]*User
	byName map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:   make(map[string]*User),
		byName: make(map[string]string),
	}
}

func (r *InMemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	stored.CreatedAt = time.Now()

	r.byID[stored.ID] = &stored
	r.byName[stored.Username] = stored.ID

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) GetByUsername(_ context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *r.byID[id]
	return &result, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *user
	return &result, nil
}

// Delete removes a user. Only tests use it, to simulate an account deleted
// after token issuance.
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	delete(r.byName, user.Username)
	delete(r.byID, id)
	return nil
}
