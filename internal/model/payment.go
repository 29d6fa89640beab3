package model

import "time"

// Payment status values as persisted in payments.payment_status.
const (
    PaymentSuccess = "SUCCESS"
    PaymentFailed  = "FAILED"
)

// Payment records a single settlement attempt for a booking.  A
// payment is created exactly once per attempt and is immutable.
// The amount is stored as given by the caller and is not
// re-validated against the booking's fare.
//
// Fields:
//  PaymentID     – primary key identifier.
//  BookingID     – booking this settlement applies to.
//  Amount        – amount paid, in whole currency units.
//  PaymentStatus – SUCCESS or FAILED.
//  PaymentTime   – when the settlement was recorded.
type Payment struct {
    PaymentID     uint64    `json:"paymentId"`     // payments.payment_id
    BookingID     uint64    `json:"bookingId"`     // payments.booking_id
    Amount        uint32    `json:"amount"`        // payments.amount
    PaymentStatus string    `json:"paymentStatus"` // payments.payment_status
    PaymentTime   time.Time `json:"paymentTime"`   // payments.payment_time
}
