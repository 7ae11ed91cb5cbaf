package booking

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ErrValidation wraps all request validation failures.
var ErrValidation = errors.New("invalid booking")

// CreateInput carries the client-supplied fields of a new booking.
type CreateInput struct {
	ServiceName  string  `json:"serviceName"`
	Date         string  `json:"date"`
	Slot         string  `json:"slot"`
	PatientName  string  `json:"patientName"`
	PatientEmail string  `json:"patientEmail"`
	Phone        *string `json:"phone,omitempty"`
}

func (in *CreateInput) validate() error {
	for field, val := range map[string]string{
		"serviceName":  in.ServiceName,
		"date":         in.Date,
		"slot":         in.Slot,
		"patientName":  in.PatientName,
		"patientEmail": in.PatientEmail,
	} {
		if strings.TrimSpace(val) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}
	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if _, err := mail.ParseAddress(in.PatientEmail); err != nil {
		return fmt.Errorf("%w: patientEmail is not a valid address", ErrValidation)
	}
	return nil
}

// Service holds the booking workflows.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts the booking. When the same patient already holds the same
// service, date and slot, the existing booking is returned with created
// false; the insert is attempted first so concurrent requests race on the
// unique index rather than on a read.
func (s *Service) Create(ctx context.Context, in *CreateInput) (*Booking, bool, error) {
	if err := in.validate(); err != nil {
		return nil, false, err
	}
	b := &Booking{
		ServiceName:  in.ServiceName,
		Date:         in.Date,
		Slot:         in.Slot,
		PatientName:  in.PatientName,
		PatientEmail: in.PatientEmail,
		Phone:        in.Phone,
	}
	err := s.repo.Create(ctx, b)
	if err == nil {
		return b, true, nil
	}
	if !errors.Is(err, ErrDuplicate) {
		return nil, false, err
	}
	existing, err := s.repo.GetByNaturalKey(ctx, in.ServiceName, in.Date, in.Slot, in.PatientEmail)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByEmail(ctx context.Context, email string) ([]*Booking, error) {
	return s.repo.ListByEmail(ctx, email)
}

// ConfirmPayment settles the booking against a gateway transaction.
func (s *Service) ConfirmPayment(ctx context.Context, id uuid.UUID, transactionID string, amountCents int64, currency, patientEmail string) (*Booking, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, fmt.Errorf("%w: transactionId is required", ErrValidation)
	}
	p := &Payment{
		TransactionID: transactionID,
		AmountCents:   amountCents,
		Currency:      currency,
		PatientEmail:  patientEmail,
	}
	return s.repo.ConfirmPayment(ctx, id, p)
}
