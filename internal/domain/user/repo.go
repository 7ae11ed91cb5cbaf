package user

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no user exists for the email.
var ErrNotFound = errors.New("user not found")

type Repository interface {
	// Upsert inserts the user or refreshes the name of an existing row.
	// The role of an existing user is never touched by an upsert.
	Upsert(ctx context.Context, u *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// SetRole updates the role of an existing user; ErrNotFound when the
	// email has no row.
	SetRole(ctx context.Context, email, role string) error
	// List returns a page of users and the total count.
	List(ctx context.Context, limit, offset int) ([]*User, int, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}
