package booking

import (
    "context"
    "sync"

    "github.com/iliyamo/railway-platform-reservation/internal/model"
    "github.com/iliyamo/railway-platform-reservation/internal/store"
)

// memDB is an in-memory record store shared by the per-kind fakes
// below.  Identifier assignment is monotonic per record kind and
// guarded by the mutex, matching the atomicity the engine expects
// from the real repositories.
type memDB struct {
    mu          sync.Mutex
    platforms   map[uint64]model.Platform
    bookings    map[uint64]model.Booking
    tickets     map[uint64]model.Ticket
    payments    map[uint64]model.Payment
    nextBooking uint64
    nextTicket  uint64
    nextPayment uint64
}

func newMemDB() *memDB {
    return &memDB{
        platforms: make(map[uint64]model.Platform),
        bookings:  make(map[uint64]model.Booking),
        tickets:   make(map[uint64]model.Ticket),
        payments:  make(map[uint64]model.Payment),
    }
}

type memPlatforms struct{ db *memDB }
type memBookings struct{ db *memDB }
type memTickets struct{ db *memDB }
type memPayments struct{ db *memDB }

func (m *memPlatforms) LoadAll(ctx context.Context) ([]model.Platform, error) {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    out := make([]model.Platform, 0, len(m.db.platforms))
    for _, p := range m.db.platforms {
        out = append(out, p)
    }
    return out, nil
}

func (m *memPlatforms) GetByNumber(ctx context.Context, number uint64) (*model.Platform, error) {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    p, ok := m.db.platforms[number]
    if !ok {
        return nil, store.ErrPlatformNotFound
    }
    return &p, nil
}

func (m *memPlatforms) Append(ctx context.Context, p *model.Platform) error {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    if _, ok := m.db.platforms[p.PlatformNumber]; ok {
        return store.ErrPlatformExists
    }
    m.db.platforms[p.PlatformNumber] = *p
    return nil
}

func (m *memPlatforms) UpdateByNumber(ctx context.Context, number uint64, p *model.Platform) error {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    if _, ok := m.db.platforms[number]; !ok {
        return store.ErrPlatformNotFound
    }
    m.db.platforms[number] = *p
    return nil
}

func (m *memBookings) LoadAll(ctx context.Context) ([]model.Booking, error) {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    out := make([]model.Booking, 0, len(m.db.bookings))
    for _, b := range m.db.bookings {
        out = append(out, b)
    }
    return out, nil
}

func (m *memBookings) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    b, ok := m.db.bookings[id]
    if !ok {
        return nil, store.ErrBookingNotFound
    }
    return &b, nil
}

func (m *memBookings) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    out := []model.Booking{}
    for _, b := range m.db.bookings {
        if b.UserID == userID {
            out = append(out, b)
        }
    }
    return out, nil
}

func (m *memBookings) Append(ctx context.Context, b *model.Booking) error {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    m.db.nextBooking++
    b.BookingID = m.db.nextBooking
    m.db.bookings[b.BookingID] = *b
    return nil
}

func (m *memTickets) GetByID(ctx context.Context, id uint64) (*model.Ticket, error) {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    t, ok := m.db.tickets[id]
    if !ok {
        return nil, store.ErrTicketNotFound
    }
    return &t, nil
}

func (m *memTickets) Append(ctx context.Context, t *model.Ticket) error {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    m.db.nextTicket++
    t.TicketID = m.db.nextTicket
    m.db.tickets[t.TicketID] = *t
    return nil
}

func (m *memTickets) UpdateByID(ctx context.Context, id uint64, t *model.Ticket) error {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    if _, ok := m.db.tickets[id]; !ok {
        return store.ErrTicketNotFound
    }
    m.db.tickets[id] = *t
    return nil
}

func (m *memTickets) CountActiveByPlatform(ctx context.Context, platformNumber uint64) (int, error) {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    n := 0
    for _, b := range m.db.bookings {
        if b.PlatformNumber != platformNumber {
            continue
        }
        if t, ok := m.db.tickets[b.TicketID]; ok && t.Status == model.TicketActive {
            n++
        }
    }
    return n, nil
}

func (m *memPayments) GetByBookingID(ctx context.Context, bookingID uint64) (*model.Payment, error) {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    for _, p := range m.db.payments {
        if p.BookingID == bookingID {
            out := p
            return &out, nil
        }
    }
    return nil, store.ErrPaymentNotFound
}

func (m *memPayments) Append(ctx context.Context, p *model.Payment) error {
    m.db.mu.Lock()
    defer m.db.mu.Unlock()
    m.db.nextPayment++
    p.PaymentID = m.db.nextPayment
    m.db.payments[p.PaymentID] = *p
    return nil
}

// newTestEngine builds an engine over fresh in-memory stores and
// returns both so tests can seed and inspect records directly.
func newTestEngine(opts ...Option) (*Engine, *memDB) {
    db := newMemDB()
    e := NewEngine(&memPlatforms{db}, &memBookings{db}, &memTickets{db}, &memPayments{db}, opts...)
    return e, db
}
