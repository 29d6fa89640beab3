package booking

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/railway-platform-reservation/internal/model"
    "github.com/iliyamo/railway-platform-reservation/internal/store"
)

func TestProcessPaymentUnknownBooking(t *testing.T) {
    e, _ := newTestEngine()

    _, _, err := e.ProcessPayment(context.Background(), 123, 10)
    assert.ErrorIs(t, err, store.ErrBookingNotFound)
}

func TestProcessPaymentRejectsZeroAmount(t *testing.T) {
    e, _ := newTestEngine()

    _, _, err := e.ProcessPayment(context.Background(), 1, 0)
    assert.ErrorIs(t, err, ErrInvalidAmount)
}

// A settlement applies only to a ticket awaiting payment: a second
// attempt against an already-ACTIVE ticket is rejected without
// touching the ticket or writing another payment record.
func TestDuplicateSettlementRejected(t *testing.T) {
    e, db := newTestEngine()
    seedPlatform(t, db, 1, 3)
    ctx := context.Background()

    b, err := e.Reserve(ctx, 7, 1, 1)
    require.NoError(t, err)

    success, _, err := e.ProcessPayment(ctx, b.BookingID, 10)
    require.NoError(t, err)
    require.True(t, success)

    _, _, err = e.ProcessPayment(ctx, b.BookingID, 10)
    assert.ErrorIs(t, err, ErrAlreadySettled)

    assert.Equal(t, model.TicketActive, db.tickets[b.TicketID].Status)
    assert.Len(t, db.payments, 1)
}

// No sequence of operations may move a ticket out of a terminal
// state: settlement against cancelled or expired tickets is
// rejected and refresh leaves them untouched.
func TestStateMachineClosure(t *testing.T) {
    decline := func(uint64, uint32) bool { return false }
    e, db := newTestEngine(WithDecider(decline))
    seedPlatform(t, db, 1, 3)
    ctx := context.Background()

    b, err := e.Reserve(ctx, 7, 1, 1)
    require.NoError(t, err)

    success, _, err := e.ProcessPayment(ctx, b.BookingID, 10)
    require.NoError(t, err)
    require.False(t, success)
    require.Equal(t, model.TicketCancelled, db.tickets[b.TicketID].Status)

    _, _, err = e.ProcessPayment(ctx, b.BookingID, 10)
    assert.ErrorIs(t, err, ErrAlreadySettled)
    assert.Equal(t, model.TicketCancelled, db.tickets[b.TicketID].Status)

    got, err := e.RefreshState(ctx, b.TicketID)
    require.NoError(t, err)
    assert.Equal(t, model.TicketCancelled, got.Status)

    // Force a terminal EXPIRED ticket and verify it stays terminal.
    exp := db.tickets[b.TicketID]
    exp.Status = model.TicketExpired
    db.tickets[b.TicketID] = exp

    _, _, err = e.ProcessPayment(ctx, b.BookingID, 10)
    assert.ErrorIs(t, err, ErrAlreadySettled)
    got, err = e.RefreshState(ctx, b.TicketID)
    require.NoError(t, err)
    assert.Equal(t, model.TicketExpired, got.Status)
}
