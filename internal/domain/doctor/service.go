package doctor

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// ErrValidation wraps request validation failures.
var ErrValidation = errors.New("invalid doctor")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the fields of a new roster entry.
type CreateInput struct {
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Specialty *string `json:"specialty,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
}

func (s *Service) Create(ctx context.Context, in *CreateInput) (*Doctor, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, fmt.Errorf("%w: email is not a valid address", ErrValidation)
	}
	d := &Doctor{
		Email:     in.Email,
		Name:      strings.TrimSpace(in.Name),
		Specialty: in.Specialty,
		ImageURL:  in.ImageURL,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Delete removes the doctor with the given email. Removing an absent email
// reports deleted false without error.
func (s *Service) Delete(ctx context.Context, email string) (bool, error) {
	return s.repo.DeleteByEmail(ctx, email)
}
