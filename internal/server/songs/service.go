package songs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/songkeeper/internal/common"
)

// Service implements song CRUD on top of a Repository. It is the protected
// resource the authorization gate exists for; it contains no auth logic
// itself.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(song *Song) error {
	if strings.TrimSpace(song.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if strings.TrimSpace(song.Author) == "" {
		return fmt.Errorf("%w: author is required", common.ErrorValidation)
	}
	if strings.TrimSpace(song.Words) == "" {
		return fmt.Errorf("%w: words are required", common.ErrorValidation)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, song *Song) (*Song, error) {
	if err := validate(song); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, song)
	if err != nil {
		return nil, fmt.Errorf("%w: creating song: %v", common.ErrStoreUnavailable, err)
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]*Song, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing songs: %v", common.ErrStoreUnavailable, err)
	}
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Song, error) {
	song, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: loading song: %v", common.ErrStoreUnavailable, err)
	}
	return song, nil
}

func (s *Service) Update(ctx context.Context, song *Song) (*Song, error) {
	if err := validate(song); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, song)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: updating song: %v", common.ErrStoreUnavailable, err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*Song, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: deleting song: %v", common.ErrStoreUnavailable, err)
	}
	return deleted, nil
}
