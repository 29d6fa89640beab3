// Package store defines the record-store interfaces consumed by the
// booking engine.  Each record kind supports loading, appending and
// updating by identifier; identifier assignment on append must be
// atomic per record kind.  The MySQL implementations live in the
// repository package; tests substitute in-memory fakes.
package store

import (
    "context"
    "errors"

    "github.com/iliyamo/railway-platform-reservation/internal/model"
)

// ErrPlatformNotFound is returned when no platform exists for the
// requested platform number.
var ErrPlatformNotFound = errors.New("platform not found")

// ErrPlatformExists is returned when appending a platform whose
// number is already taken.
var ErrPlatformExists = errors.New("platform already exists")

// ErrBookingNotFound is returned when no booking exists for the
// requested booking id.
var ErrBookingNotFound = errors.New("booking not found")

// ErrTicketNotFound is returned when no ticket exists for the
// requested ticket id.
var ErrTicketNotFound = errors.New("ticket not found")

// ErrPaymentNotFound is returned when no payment exists for the
// requested booking id.
var ErrPaymentNotFound = errors.New("payment not found")

// PlatformStore persists Platform records keyed by platform number.
type PlatformStore interface {
    LoadAll(ctx context.Context) ([]model.Platform, error)
    GetByNumber(ctx context.Context, number uint64) (*model.Platform, error)
    Append(ctx context.Context, p *model.Platform) error
    UpdateByNumber(ctx context.Context, number uint64, p *model.Platform) error
}

// BookingStore persists Booking records.  Append assigns the next
// booking id and sets it on the passed record.
type BookingStore interface {
    LoadAll(ctx context.Context) ([]model.Booking, error)
    GetByID(ctx context.Context, id uint64) (*model.Booking, error)
    ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error)
    Append(ctx context.Context, b *model.Booking) error
}

// TicketStore persists Ticket records.  Append assigns the next
// ticket id and sets it on the passed record.  CountActiveByPlatform
// counts bookings whose linked ticket is currently stored as ACTIVE
// for the given platform; it must not apply lazy expiry.
type TicketStore interface {
    GetByID(ctx context.Context, id uint64) (*model.Ticket, error)
    Append(ctx context.Context, t *model.Ticket) error
    UpdateByID(ctx context.Context, id uint64, t *model.Ticket) error
    CountActiveByPlatform(ctx context.Context, platformNumber uint64) (int, error)
}

// PaymentStore persists Payment records.  Append assigns the next
// payment id and sets it on the passed record.
type PaymentStore interface {
    GetByBookingID(ctx context.Context, bookingID uint64) (*model.Payment, error)
    Append(ctx context.Context, p *model.Payment) error
}
