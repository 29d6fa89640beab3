package booking

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/railway-platform-reservation/internal/model"
)

// Scenario: an ACTIVE ticket whose expiry has passed transitions to
// EXPIRED on read; a second refresh is a no-op.
func TestRefreshStateExpiresActiveTicket(t *testing.T) {
    clock := newFakeClock(testStart)
    e, db := newTestEngine(WithClock(clock.Now))
    seedPlatform(t, db, 1, 1)
    ctx := context.Background()

    b, err := e.Reserve(ctx, 7, 1, 2)
    require.NoError(t, err)
    _, _, err = e.ProcessPayment(ctx, b.BookingID, 20)
    require.NoError(t, err)

    // Still inside the booked window: no transition.
    clock.Advance(time.Hour)
    got, err := e.RefreshState(ctx, b.TicketID)
    require.NoError(t, err)
    assert.Equal(t, model.TicketActive, got.Status)

    clock.Advance(2 * time.Hour)
    got, err = e.RefreshState(ctx, b.TicketID)
    require.NoError(t, err)
    assert.Equal(t, model.TicketExpired, got.Status)
    assert.Equal(t, model.TicketExpired, db.tickets[b.TicketID].Status)

    // Idempotent: refreshing again yields the same result.
    got, err = e.RefreshState(ctx, b.TicketID)
    require.NoError(t, err)
    assert.Equal(t, model.TicketExpired, got.Status)
}

// A pending ticket is untouched by refresh regardless of elapsed
// time; only payment settles its fate.
func TestRefreshStateLeavesPendingTicket(t *testing.T) {
    clock := newFakeClock(testStart)
    e, db := newTestEngine(WithClock(clock.Now))
    seedPlatform(t, db, 1, 1)
    ctx := context.Background()

    b, err := e.Reserve(ctx, 7, 1, 1)
    require.NoError(t, err)

    clock.Advance(48 * time.Hour)
    got, err := e.RefreshState(ctx, b.TicketID)
    require.NoError(t, err)
    assert.Equal(t, model.TicketPendingPayment, got.Status)
}

// An ACTIVE ticket with zero timestamps indicates storage corruption
// and must surface an error instead of being silently skipped.
func TestRefreshStateCorruptTimestamps(t *testing.T) {
    e, db := newTestEngine()
    db.tickets[1] = model.Ticket{TicketID: 1, Status: model.TicketActive, PlatformNumber: 1}
    db.nextTicket = 1

    _, err := e.RefreshState(context.Background(), 1)
    assert.ErrorIs(t, err, ErrCorruptTicket)
}
