package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const bookingCols = `id, service_name, date, slot, patient_name, patient_email, phone, paid, transaction_id, created_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(&b.ID, &b.ServiceName, &b.Date, &b.Slot, &b.PatientName,
		&b.PatientEmail, &b.Phone, &b.Paid, &b.TransactionID, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *repoPG) Create(ctx context.Context, b *Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO booking (id, service_name, date, slot, patient_name, patient_email, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+bookingCols,
		b.ID, b.ServiceName, b.Date, b.Slot, b.PatientName, b.PatientEmail, b.Phone)
	created, err := scanBooking(row)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	*b = *created
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookingCols+` FROM booking WHERE id = $1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *repoPG) GetByNaturalKey(ctx context.Context, serviceName, date, slot, patientEmail string) (*Booking, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+bookingCols+` FROM booking
		WHERE service_name = $1 AND date = $2 AND slot = $3 AND patient_email = $4`,
		serviceName, date, slot, patientEmail)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *repoPG) ListByEmail(ctx context.Context, email string) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingCols+` FROM booking
		WHERE patient_email = $1
		ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (r *repoPG) BookedSlots(ctx context.Context, date string) (map[string][]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT service_name, slot FROM booking WHERE date = $1`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string][]string)
	for rows.Next() {
		var name, slot string
		if err := rows.Scan(&name, &slot); err != nil {
			return nil, err
		}
		out[name] = append(out[name], slot)
	}
	return out, rows.Err()
}

func (r *repoPG) ConfirmPayment(ctx context.Context, id uuid.UUID, p *Payment) (*Booking, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT `+bookingCols+` FROM booking WHERE id = $1 FOR UPDATE`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.Paid {
		if b.TransactionID != nil && *b.TransactionID == p.TransactionID {
			// Idempotent re-confirmation of the same transaction.
			return b, tx.Commit(ctx)
		}
		return nil, ErrPaymentConflict
	}

	row = tx.QueryRow(ctx, `
		UPDATE booking SET paid = TRUE, transaction_id = $2
		WHERE id = $1
		RETURNING `+bookingCols, id, p.TransactionID)
	b, err = scanBooking(row)
	if err != nil {
		return nil, err
	}

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.BookingID = id
	_, err = tx.Exec(ctx, `
		INSERT INTO payment (id, transaction_id, booking_id, amount_cents, currency, patient_email)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.TransactionID, p.BookingID, p.AmountCents, p.Currency, p.PatientEmail)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: transaction %s already recorded", ErrPaymentConflict, p.TransactionID)
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return b, nil
}
