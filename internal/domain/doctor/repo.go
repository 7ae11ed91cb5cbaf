package doctor

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by Create when a doctor with the same email
// already exists.
var ErrDuplicate = errors.New("doctor already exists")

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)
	// DeleteByEmail removes the doctor and reports whether a row was
	// deleted. Deleting an absent email is not an error.
	DeleteByEmail(ctx context.Context, email string) (bool, error)
}
