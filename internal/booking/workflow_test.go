package booking

import (
    "context"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/railway-platform-reservation/internal/model"
    "github.com/iliyamo/railway-platform-reservation/internal/store"
)

// fakeClock is a controllable time source safe for concurrent use.
type fakeClock struct {
    mu sync.Mutex
    t  time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{t: t} }

func (c *fakeClock) Now() time.Time {
    c.mu.Lock()
    defer c.mu.Unlock()
    return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
    c.mu.Lock()
    defer c.mu.Unlock()
    c.t = c.t.Add(d)
}

var testStart = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func seedPlatform(t *testing.T, db *memDB, number uint64, capacity uint32) {
    t.Helper()
    db.platforms[number] = model.Platform{PlatformNumber: number, Capacity: capacity}
}

func TestCheckAvailabilityUnknownPlatform(t *testing.T) {
    e, _ := newTestEngine()

    allowed, reason, err := e.CheckAvailability(context.Background(), 42)
    require.NoError(t, err)
    assert.False(t, allowed)
    assert.Equal(t, ReasonPlatformNotFound, reason)
}

// Scenario: a capacity-1 platform accepts a booking, the ticket goes
// ACTIVE after successful payment, and the platform then reports
// full until that ticket leaves the ACTIVE state.
func TestReserveSettleThenPlatformFull(t *testing.T) {
    clock := newFakeClock(testStart)
    e, db := newTestEngine(WithClock(clock.Now))
    seedPlatform(t, db, 1, 1)
    ctx := context.Background()

    b, err := e.Reserve(ctx, 7, 1, 2)
    require.NoError(t, err)
    assert.Equal(t, uint64(7), b.UserID)
    assert.Equal(t, uint32(2), b.SelectedDuration)

    ticket := db.tickets[b.TicketID]
    assert.Equal(t, model.TicketPendingPayment, ticket.Status)
    assert.Equal(t, testStart, ticket.IssueTime)
    assert.Equal(t, testStart.Add(2*time.Hour), ticket.ExpiryTime)

    // A pending ticket does not occupy a capacity unit yet.
    allowed, reason, err := e.CheckAvailability(ctx, 1)
    require.NoError(t, err)
    assert.True(t, allowed)
    assert.Equal(t, ReasonAvailable, reason)

    success, pay, err := e.ProcessPayment(ctx, b.BookingID, 20)
    require.NoError(t, err)
    assert.True(t, success)
    assert.Equal(t, model.PaymentSuccess, pay.PaymentStatus)
    assert.Equal(t, model.TicketActive, db.tickets[b.TicketID].Status)

    allowed, reason, err = e.CheckAvailability(ctx, 1)
    require.NoError(t, err)
    assert.False(t, allowed)
    assert.Equal(t, ReasonPlatformFull, reason)

    _, err = e.Reserve(ctx, 8, 1, 1)
    assert.ErrorIs(t, err, ErrPlatformFull)
}

// Scenario: a failed settlement cancels the ticket, freeing the
// capacity unit for the next booking attempt.
func TestFailedSettlementFreesCapacity(t *testing.T) {
    declineAll := func(uint64, uint32) bool { return false }
    e, db := newTestEngine(WithDecider(declineAll))
    seedPlatform(t, db, 1, 1)
    ctx := context.Background()

    b, err := e.Reserve(ctx, 7, 1, 2)
    require.NoError(t, err)

    success, pay, err := e.ProcessPayment(ctx, b.BookingID, 20)
    require.NoError(t, err)
    assert.False(t, success)
    assert.Equal(t, model.PaymentFailed, pay.PaymentStatus)
    assert.Equal(t, model.TicketCancelled, db.tickets[b.TicketID].Status)

    // The cancelled ticket does not count toward capacity.
    allowed, reason, err := e.CheckAvailability(ctx, 1)
    require.NoError(t, err)
    assert.True(t, allowed)
    assert.Equal(t, ReasonAvailable, reason)

    _, err = e.Reserve(ctx, 8, 1, 1)
    require.NoError(t, err)
}

func TestReserveRejectsZeroDuration(t *testing.T) {
    e, db := newTestEngine()
    seedPlatform(t, db, 1, 5)

    _, err := e.Reserve(context.Background(), 7, 1, 0)
    assert.ErrorIs(t, err, ErrInvalidDuration)

    _, err = e.CreateBooking(context.Background(), 7, 1, 0)
    assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestReserveUnknownPlatform(t *testing.T) {
    e, _ := newTestEngine()

    _, err := e.Reserve(context.Background(), 7, 99, 1)
    assert.ErrorIs(t, err, store.ErrPlatformNotFound)
}

// Concurrent admissions on one platform must never produce duplicate
// booking or ticket identifiers, and a full platform must reject
// every concurrent attempt.
func TestReserveConcurrent(t *testing.T) {
    e, db := newTestEngine()
    seedPlatform(t, db, 3, 2)
    ctx := context.Background()

    const n = 16
    var wg sync.WaitGroup
    bookings := make([]*model.Booking, n)
    for i := 0; i < n; i++ {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            b, err := e.Reserve(ctx, uint64(100+i), 3, 1)
            if err == nil {
                bookings[i] = b
            }
        }(i)
    }
    wg.Wait()

    seenBooking := make(map[uint64]bool)
    seenTicket := make(map[uint64]bool)
    for _, b := range bookings {
        require.NotNil(t, b)
        assert.False(t, seenBooking[b.BookingID], "duplicate booking id %d", b.BookingID)
        assert.False(t, seenTicket[b.TicketID], "duplicate ticket id %d", b.TicketID)
        seenBooking[b.BookingID] = true
        seenTicket[b.TicketID] = true
    }

    // Fill the platform, then hammer it: every further admission
    // must be rejected.
    _, _, err := e.ProcessPayment(ctx, bookings[0].BookingID, 10)
    require.NoError(t, err)
    _, _, err = e.ProcessPayment(ctx, bookings[1].BookingID, 10)
    require.NoError(t, err)

    var rejected sync.WaitGroup
    for i := 0; i < n; i++ {
        rejected.Add(1)
        go func() {
            defer rejected.Done()
            _, err := e.Reserve(ctx, 999, 3, 1)
            assert.ErrorIs(t, err, ErrPlatformFull)
        }()
    }
    rejected.Wait()

    active, err := e.tickets.CountActiveByPlatform(ctx, 3)
    require.NoError(t, err)
    assert.Equal(t, 2, active)
}
