package booking

import (
    "context"
    "time"

    "github.com/iliyamo/railway-platform-reservation/internal/model"
)

// RefreshState applies lazy, read-triggered expiry to a ticket and
// returns the refreshed record.  An ACTIVE ticket whose expiry time
// has passed transitions to EXPIRED and the change is persisted.
// Tickets in any other state are returned unchanged regardless of
// elapsed time; there is no background sweep, so staleness is
// bounded only by read frequency.  The operation is idempotent.
//
// Every read path that exposes ticket status must go through here.
func (e *Engine) RefreshState(ctx context.Context, ticketID uint64) (*model.Ticket, error) {
    t, err := e.tickets.GetByID(ctx, ticketID)
    if err != nil {
        return nil, err
    }
    changed, err := applyExpiry(t, e.now().UTC())
    if err != nil {
        return nil, err
    }
    if changed {
        if err := e.tickets.UpdateByID(ctx, t.TicketID, t); err != nil {
            return nil, err
        }
    }
    return t, nil
}

// applyExpiry mutates the ticket in place when the expiry transition
// fires and reports whether it did.  A zero issue or expiry time on
// an ACTIVE ticket is a data-integrity failure and is surfaced
// instead of being ignored.
func applyExpiry(t *model.Ticket, now time.Time) (bool, error) {
    if t.Status != model.TicketActive {
        return false, nil
    }
    if t.IssueTime.IsZero() || t.ExpiryTime.IsZero() {
        return false, ErrCorruptTicket
    }
    if now.After(t.ExpiryTime) {
        t.Status = model.TicketExpired
        return true, nil
    }
    return false, nil
}
