package model

import "time"

// Ticket status values.  Transitions are one-directional:
// PENDING_PAYMENT -> ACTIVE (payment success), PENDING_PAYMENT ->
// CANCELLED (payment failure) and ACTIVE -> EXPIRED (time-based,
// evaluated lazily on read).  No other edge is legal and expired or
// cancelled tickets are never reactivated.
const (
    TicketPendingPayment = "PENDING_PAYMENT"
    TicketActive         = "ACTIVE"
    TicketExpired        = "EXPIRED"
    TicketCancelled      = "CANCELLED"
)

// Ticket is the stateful access credential produced by a booking.
// The expiry time is fixed at issuance as issue time plus the
// booking's selected duration and never changes afterwards.
//
// Fields:
//  TicketID       – primary key identifier.
//  IssueTime      – when the ticket was issued.
//  ExpiryTime     – issue time + selected duration; fixed at issuance.
//  Status         – current state, one of the Ticket* constants.
//  PlatformNumber – platform the ticket grants access to.
type Ticket struct {
    TicketID       uint64    `json:"ticketId"`       // tickets.ticket_id
    IssueTime      time.Time `json:"issueTime"`      // tickets.issue_time
    ExpiryTime     time.Time `json:"expiryTime"`     // tickets.expiry_time
    Status         string    `json:"status"`         // tickets.status
    PlatformNumber uint64    `json:"platformNumber"` // tickets.platform_number
}
