package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/railway-platform-reservation/internal/model"
    "github.com/iliyamo/railway-platform-reservation/internal/store"
)

// BookingRepo persists bookings.  Bookings are append-only: once
// created they are never updated, the linked ticket carries all
// further state change.  All timestamps are stored in UTC.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `booking_id, user_id, platform_number, booking_time, selected_duration, ticket_id`

func scanBooking(row interface{ Scan(...any) error }, b *model.Booking) error {
    return row.Scan(&b.BookingID, &b.UserID, &b.PlatformNumber, &b.BookingTime, &b.SelectedDuration, &b.TicketID)
}

// LoadAll returns every booking, newest first.  Used by the admin
// booking overview.
func (r *BookingRepo) LoadAll(ctx context.Context) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY booking_time DESC, booking_id DESC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Booking, 0)
    for rows.Next() {
        var b model.Booking
        if err := scanBooking(rows, &b); err != nil {
            return nil, err
        }
        out = append(out, b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// GetByID returns one booking or store.ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = ? LIMIT 1`
    var b model.Booking
    err := scanBooking(r.db.QueryRowContext(ctx, q, id), &b)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, store.ErrBookingNotFound
    }
    if err != nil {
        return nil, err
    }
    return &b, nil
}

// ListByUser returns all bookings created by the given user, newest
// first.  When no bookings exist an empty slice is returned.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = ? ORDER BY booking_time DESC, booking_id DESC`
    rows, err := r.db.QueryContext(ctx, q, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Booking, 0)
    for rows.Next() {
        var b model.Booking
        if err := scanBooking(rows, &b); err != nil {
            return nil, err
        }
        out = append(out, b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Append inserts a new booking and populates the generated booking
// id on the provided record.  AUTO_INCREMENT keeps id assignment
// atomic per record kind.
func (r *BookingRepo) Append(ctx context.Context, b *model.Booking) error {
    const q = `INSERT INTO bookings (user_id, platform_number, booking_time, selected_duration, ticket_id) VALUES (?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, b.UserID, b.PlatformNumber, b.BookingTime, b.SelectedDuration, b.TicketID)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.BookingID = uint64(id)
    return nil
}

var _ store.BookingStore = (*BookingRepo)(nil)
