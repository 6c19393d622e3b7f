package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/songkeeper/internal/common"
	"github.com/dmitrijs2005/songkeeper/internal/server/auth"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// Service is the credential verifier: it owns registration and
// username/password verification against the user store. It holds no
// per-request state.
type Service struct {
	repo Repository

	// dummyHash is compared against when the username is unknown, so the
	// miss path costs the same as a wrong password.
	dummyHash string
}

func NewService(repo Repository) (*Service, error) {
	dummy, err := auth.HashPassword([]byte("songkeeper-dummy-password"))
	if err != nil {
		return nil, fmt.Errorf("preparing dummy hash: %w", err)
	}
	return &Service{repo: repo, dummyHash: dummy}, nil
}

// Register creates a new user with a bcrypt-hashed password. A taken
// username yields common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLen {
		return nil, fmt.Errorf("%w: username must be at least %d characters", common.ErrorValidation, minUsernameLen)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLen)
	}

	hash, err := auth.HashPassword([]byte(password))
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := s.repo.Create(ctx, &User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("%w: creating user: %v", common.ErrStoreUnavailable, err)
	}

	return user, nil
}

// Authenticate validates a username/password pair. An unknown username and
// a wrong password both return common.ErrInvalidCredentials; the unknown
// path still performs a bcrypt comparison so the two are not
// distinguishable by timing. Store failures surface as
// common.ErrStoreUnavailable, never as a credential rejection.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(s.dummyHash, []byte(password))
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: looking up user: %v", common.ErrStoreUnavailable, err)
	}

	if !auth.CheckPassword(user.PasswordHash, []byte(password)) {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID resolves a user by id. The bearer-transport authorization gate
// uses it to confirm the account still exists after token issuance.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: looking up user: %v", common.ErrStoreUnavailable, err)
	}
	return user, nil
}
