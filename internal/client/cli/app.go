// Package cli implements the interactive songkeeper client. It talks to the
// server over the bearer session strategy: the token lives in process
// memory only and is never written to disk.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/songkeeper/internal/client/api"
	"github.com/dmitrijs2005/songkeeper/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *api.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerURL),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
