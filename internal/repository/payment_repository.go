package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/railway-platform-reservation/internal/model"
    "github.com/iliyamo/railway-platform-reservation/internal/store"
)

// PaymentRepo persists payments.  Payment rows are append-only and
// immutable; one row is written per settlement attempt.
type PaymentRepo struct {
    db *sql.DB
}

// NewPaymentRepo returns a new PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// GetByBookingID returns the most recent payment recorded for a
// booking, or store.ErrPaymentNotFound when none exists.
func (r *PaymentRepo) GetByBookingID(ctx context.Context, bookingID uint64) (*model.Payment, error) {
    const q = `SELECT payment_id, booking_id, amount, payment_status, payment_time
               FROM payments WHERE booking_id = ?
               ORDER BY payment_time DESC, payment_id DESC LIMIT 1`
    var p model.Payment
    err := r.db.QueryRowContext(ctx, q, bookingID).Scan(&p.PaymentID, &p.BookingID, &p.Amount, &p.PaymentStatus, &p.PaymentTime)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, store.ErrPaymentNotFound
    }
    if err != nil {
        return nil, err
    }
    return &p, nil
}

// Append inserts a new payment and populates the generated payment
// id on the provided record.
func (r *PaymentRepo) Append(ctx context.Context, p *model.Payment) error {
    const q = `INSERT INTO payments (booking_id, amount, payment_status, payment_time) VALUES (?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, p.BookingID, p.Amount, p.PaymentStatus, p.PaymentTime)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    p.PaymentID = uint64(id)
    return nil
}

var _ store.PaymentStore = (*PaymentRepo)(nil)
