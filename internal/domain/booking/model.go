package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking maps to the booking table. A booking is uniquely identified by
// its id and also by the natural key (service_name, date, slot,
// patient_email), which is enforced with a unique index.
type Booking struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ServiceName   string    `db:"service_name" json:"serviceName"`
	Date          string    `db:"date" json:"date"`
	Slot          string    `db:"slot" json:"slot"`
	PatientName   string    `db:"patient_name" json:"patientName"`
	PatientEmail  string    `db:"patient_email" json:"patientEmail"`
	Phone         *string   `db:"phone" json:"phone,omitempty"`
	Paid          bool      `db:"paid" json:"paid"`
	TransactionID *string   `db:"transaction_id" json:"transactionId,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Payment records a settled gateway transaction against a booking. Written
// only inside the confirmation transaction that also flips the booking to
// paid.
type Payment struct {
	ID            uuid.UUID `db:"id" json:"id"`
	TransactionID string    `db:"transaction_id" json:"transactionId"`
	BookingID     uuid.UUID `db:"booking_id" json:"bookingId"`
	AmountCents   int64     `db:"amount_cents" json:"amountCents"`
	Currency      string    `db:"currency" json:"currency"`
	PatientEmail  string    `db:"patient_email" json:"patientEmail"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
