package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// ErrValidation wraps request validation failures.
var ErrValidation = errors.New("invalid user")

// Service holds user identity workflows. It also satisfies the admin check
// the route guards need.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert registers or refreshes the user for the given email. Role is left
// untouched for existing users.
func (s *Service) Upsert(ctx context.Context, email, name string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, &User{Email: email, Name: strings.TrimSpace(name)})
}

// MakeAdmin grants the admin role to an existing user.
func (s *Service) MakeAdmin(ctx context.Context, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	return s.repo.SetRole(ctx, email, RoleAdmin)
}

// IsAdmin reports whether the email has the admin role. Unknown emails are
// not admins.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.repo.IsAdmin(ctx, email)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*User, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email is not a valid address", ErrValidation)
	}
	return nil
}
