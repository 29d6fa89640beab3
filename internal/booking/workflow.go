package booking

import (
    "context"
    "time"

    "github.com/iliyamo/railway-platform-reservation/internal/model"
    "github.com/iliyamo/railway-platform-reservation/internal/store"
)

// CreateBooking persists a new ticket in PENDING_PAYMENT state and a
// booking referencing it, and returns the persisted booking.  The
// ticket's expiry time is fixed at issuance as issue time plus the
// selected duration.  Identifier assignment happens in the stores on
// append.
//
// CreateBooking does not check capacity; the caller must have
// confirmed availability first.  Use Reserve for the composed,
// race-free admission path.
func (e *Engine) CreateBooking(ctx context.Context, userID, platformNumber uint64, durationHours uint32) (*model.Booking, error) {
    if durationHours == 0 {
        return nil, ErrInvalidDuration
    }
    now := e.now().UTC()

    ticket := &model.Ticket{
        IssueTime:      now,
        ExpiryTime:     now.Add(time.Duration(durationHours) * time.Hour),
        Status:         model.TicketPendingPayment,
        PlatformNumber: platformNumber,
    }
    if err := e.tickets.Append(ctx, ticket); err != nil {
        return nil, err
    }

    b := &model.Booking{
        UserID:           userID,
        PlatformNumber:   platformNumber,
        BookingTime:      now,
        SelectedDuration: durationHours,
        TicketID:         ticket.TicketID,
    }
    if err := e.bookings.Append(ctx, b); err != nil {
        return nil, err
    }
    return b, nil
}

// Reserve atomically admits a booking: it runs the availability
// check and the booking creation under the platform's admission
// lock, so two concurrent callers cannot both pass the check before
// either commits.  A missing platform is reported via
// store.ErrPlatformNotFound and a full platform via ErrPlatformFull.
func (e *Engine) Reserve(ctx context.Context, userID, platformNumber uint64, durationHours uint32) (*model.Booking, error) {
    if durationHours == 0 {
        return nil, ErrInvalidDuration
    }
    l := e.platformLock(platformNumber)
    l.Lock()
    defer l.Unlock()

    allowed, reason, err := e.CheckAvailability(ctx, platformNumber)
    if err != nil {
        return nil, err
    }
    if !allowed {
        if reason == ReasonPlatformNotFound {
            return nil, store.ErrPlatformNotFound
        }
        return nil, ErrPlatformFull
    }
    return e.CreateBooking(ctx, userID, platformNumber, durationHours)
}
