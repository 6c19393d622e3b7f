package songs

import "context"

type Repository interface {
	Create(ctx context.Context, song *Song) (*Song, error)
	List(ctx context.Context) ([]*Song, error)
	GetByID(ctx context.Context, id string) (*Song, error)
	Update(ctx context.Context, song *Song) (*Song, error)
	Delete(ctx context.Context, id string) (*Song, error)
}
