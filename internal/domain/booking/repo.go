package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrDuplicate is returned by Create when the natural key
	// (service_name, date, slot, patient_email) already exists.
	ErrDuplicate = errors.New("booking already exists")

	// ErrNotFound is returned when no booking matches the lookup.
	ErrNotFound = errors.New("booking not found")

	// ErrPaymentConflict is returned when a booking is already paid under a
	// different transaction id.
	ErrPaymentConflict = errors.New("booking already paid with a different transaction")
)

type Repository interface {
	// Create inserts the booking, relying on the unique natural-key index
	// to reject duplicates with ErrDuplicate.
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByNaturalKey(ctx context.Context, serviceName, date, slot, patientEmail string) (*Booking, error)
	ListByEmail(ctx context.Context, email string) ([]*Booking, error)
	// BookedSlots returns, per service name, the slots already booked on
	// the given date.
	BookedSlots(ctx context.Context, date string) (map[string][]string, error)
	// ConfirmPayment marks the booking paid and records the payment in a
	// single transaction. Re-confirming with the same transaction id is a
	// no-op; a different id yields ErrPaymentConflict.
	ConfirmPayment(ctx context.Context, id uuid.UUID, p *Payment) (*Booking, error)
}
