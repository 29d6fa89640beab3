// Package booking implements the reservation-and-ticket lifecycle
// engine: platform availability evaluation, booking creation, fare
// calculation, payment settlement and ticket state transitions.
// The engine is storage-agnostic and consumes the record-store
// interfaces defined in the store package.
package booking

import (
    "sync"
    "time"

    "github.com/iliyamo/railway-platform-reservation/internal/store"
)

// DefaultRatePerHour is the flat fare rate applied when no rate is
// configured, in whole currency units per hour.
const DefaultRatePerHour = 10

// Decider decides the outcome of a settlement attempt.  It exists so
// that a real gateway integration can be plugged in later; the
// default decider approves every attempt.
type Decider func(bookingID uint64, amount uint32) bool

// Engine owns the reservation workflow and the ticket state machine.
// All mutating operations are safe for concurrent use: booking
// admission is serialized per platform so that the availability
// check and the record writes form one critical section.
type Engine struct {
    platforms store.PlatformStore
    bookings  store.BookingStore
    tickets   store.TicketStore
    payments  store.PaymentStore

    ratePerHour uint32
    decide      Decider
    now         func() time.Time

    mu    sync.Mutex
    locks map[uint64]*sync.Mutex // per-platform admission locks
}

// Option customizes an Engine at construction time.
type Option func(*Engine)

// WithRate overrides the flat per-hour fare rate.
func WithRate(ratePerHour uint32) Option {
    return func(e *Engine) {
        if ratePerHour > 0 {
            e.ratePerHour = ratePerHour
        }
    }
}

// WithDecider installs a settlement decision policy.
func WithDecider(d Decider) Option {
    return func(e *Engine) {
        if d != nil {
            e.decide = d
        }
    }
}

// WithClock overrides the time source.  Used by tests to control
// issue and expiry evaluation.
func WithClock(now func() time.Time) Option {
    return func(e *Engine) {
        if now != nil {
            e.now = now
        }
    }
}

// NewEngine constructs an Engine bound to the given stores.  All
// stores must be non-nil.
func NewEngine(platforms store.PlatformStore, bookings store.BookingStore, tickets store.TicketStore, payments store.PaymentStore, opts ...Option) *Engine {
    if platforms == nil || bookings == nil || tickets == nil || payments == nil {
        panic("nil store passed to NewEngine")
    }
    e := &Engine{
        platforms:   platforms,
        bookings:    bookings,
        tickets:     tickets,
        payments:    payments,
        ratePerHour: DefaultRatePerHour,
        decide:      func(uint64, uint32) bool { return true },
        now:         time.Now,
        locks:       make(map[uint64]*sync.Mutex),
    }
    for _, opt := range opts {
        opt(e)
    }
    return e
}

// platformLock returns the admission mutex for a platform, creating
// it on first use.
func (e *Engine) platformLock(platformNumber uint64) *sync.Mutex {
    e.mu.Lock()
    defer e.mu.Unlock()
    l, ok := e.locks[platformNumber]
    if !ok {
        l = &sync.Mutex{}
        e.locks[platformNumber] = l
    }
    return l
}
