package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/nextx/admin-api/internal/admin/domain"
	"github.com/nextx/admin-api/internal/admin/store"
	"github.com/nextx/admin-api/pkg/cryptox"
	"github.com/nextx/admin-api/pkg/idx"
	"github.com/nextx/admin-api/pkg/slogx"
)

var ErrInvalidInput = errors.New("invalid_input")

// UserService owns account administration. Passwords are generated here, not
// chosen by the caller: the plaintext is returned once from CreateUser and
// exists nowhere else.
type UserService struct {
	Store store.Store
}

// CreateUserInput carries the admin-supplied fields of a new account.
type CreateUserInput struct {
	Username string
	FullName string
	Email    string
	Scopes   []string
	Roles    []string
}

// CreateUser provisions an account with a random password and returns the
// plaintext alongside the stored record.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (domain.User, string, error) {
	l := slogx.FromContext(ctx)

	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return domain.User{}, "", ErrInvalidInput
	}

	password, err := cryptox.GeneratePassword()
	if err != nil {
		return domain.User{}, "", err
	}
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, "", err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     in.Username,
		PasswordHash: hash,
		FullName:     in.FullName,
		Email:        in.Email,
		Scopes:       in.Scopes,
		Roles:        in.Roles,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		return domain.User{}, "", err
	}

	l.Info("user created",
		slog.String("user_id", u.ID),
		slog.String("username", u.Username),
	)
	return u, password, nil
}

// ResetPassword replaces the user's password with a fresh random one and
// returns the plaintext.
func (s *UserService) ResetPassword(ctx context.Context, id string) (string, error) {
	password, err := cryptox.GeneratePassword()
	if err != nil {
		return "", err
	}
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, id, hash); err != nil {
		return "", err
	}
	slogx.FromContext(ctx).Info("password reset", slog.String("user_id", id))
	return password, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.Store.Users().GetUserByUsername(ctx, username)
}

func (s *UserService) ListUsers(ctx context.Context, filters []domain.Filter, page domain.Paging) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx, filters, page)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) error {
	if err := s.Store.Users().UpdateUser(ctx, id, patch); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("user updated", slog.String("user_id", id))
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("user deleted", slog.String("user_id", id))
	return nil
}
