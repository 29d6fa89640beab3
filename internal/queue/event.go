// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketActivatedEvent is published when a settlement succeeds and a
// ticket transitions to ACTIVE.  It carries enough information for
// downstream consumers to log, notify or feed analytics without
// querying the primary database.
type TicketActivatedEvent struct {
    BookingID      uint64 `json:"booking_id"`
    UserID         uint64 `json:"user_id"`
    TicketID       uint64 `json:"ticket_id"`
    PlatformNumber uint64 `json:"platform_number"`
    DurationHours  uint32 `json:"duration_hours"`
    Amount         uint32 `json:"amount"`
    IssueTime      string `json:"issue_time"`
    ExpiryTime     string `json:"expiry_time"`
    ActivatedAt    string `json:"activated_at"`
}
