// Sentinel errors returned by the engine.  Handlers translate these
// into HTTP responses; business outcomes such as a full platform on
// the availability check or a declined payment are ordinary result
// values, not errors.
package booking

import "errors"

// ErrInvalidDuration is returned when a requested duration is not a
// positive number of hours.
var ErrInvalidDuration = errors.New("duration must be positive")

// ErrInvalidAmount is returned when a settlement amount is not
// positive.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrPlatformFull is returned by Reserve when the platform has no
// free capacity units at admission time.
var ErrPlatformFull = errors.New("platform full")

// ErrAlreadySettled is returned when a settlement targets a ticket
// that is no longer awaiting payment.  The duplicate attempt leaves
// the ticket and the payment history untouched.
var ErrAlreadySettled = errors.New("booking already settled")

// ErrCorruptTicket is returned when an active ticket carries a zero
// issue or expiry timestamp.  Such records indicate storage
// corruption and are surfaced rather than silently skipped.
var ErrCorruptTicket = errors.New("ticket has corrupt timestamps")
