package songs

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/songkeeper/internal/common"
)

// InMemoryRepository is a map-backed Repository used in tests and for
// running the server without a database.
type InMemoryRepository struct {
	mu    sync.RWMutex
	songs map[string]*Song
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{songs: make(map[string]*Song)}
}

func (r *InMemoryRepository) Create(_ context.Context, song *Song) (*Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *song
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	stored.CreatedAt = time.Now()
	r.songs[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]*Song, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Song, 0, len(r.songs))
	for _, song := range r.songs {
		copied := *song
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*Song, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	song, ok := r.songs[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *song
	return &result, nil
}

func (r *InMemoryRepository) Update(_ context.Context, song *Song) (*Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.songs[song.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	stored := *song
	stored.CreatedAt = current.CreatedAt
	r.songs[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) (*Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	song, ok := r.songs[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.songs, id)

	result := *song
	return &result, nil
}
