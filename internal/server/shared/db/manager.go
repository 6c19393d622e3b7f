// Package db wires repositories to their storage backend behind a single
// RepositoryManager, so the rest of the server does not care whether it
// runs on PostgreSQL or in memory.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/songkeeper/internal/server/songs"
	"github.com/dmitrijs2005/songkeeper/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Songs() songs.Repository
	Close() error
}
