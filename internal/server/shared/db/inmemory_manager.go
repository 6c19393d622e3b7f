package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/songkeeper/internal/server/songs"
	"github.com/dmitrijs2005/songkeeper/internal/server/users"
)

// InMemoryRepositoryManager backs the repositories with process memory.
// Used in tests and when the server is started without a database DSN.
type InMemoryRepositoryManager struct {
	users users.Repository
	songs songs.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Close() error {
	return nil
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) Songs() songs.Repository {
	return m.songs
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{
		users: users.NewInMemoryRepository(),
		songs: songs.NewInMemoryRepository(),
	}
}
