package model

import "time"

// Booking records a user's reservation of a platform for a chosen
// duration.  A booking is created exactly once per successful
// reservation attempt and is immutable afterwards; all further
// state change is carried by the linked ticket.  Each booking owns
// exactly one ticket and a ticket never outlives or is shared
// across bookings.
//
// Fields:
//  BookingID        – primary key identifier, monotonically assigned.
//  UserID           – user who made the reservation.
//  PlatformNumber   – platform being reserved.
//  BookingTime      – when the reservation was made.
//  SelectedDuration – requested duration in hours.
//  TicketID         – the ticket issued for this booking (1:1).
type Booking struct {
    BookingID        uint64    `json:"bookingId"`        // bookings.booking_id
    UserID           uint64    `json:"userId"`           // bookings.user_id
    PlatformNumber   uint64    `json:"platformNumber"`   // bookings.platform_number
    BookingTime      time.Time `json:"bookingTime"`      // bookings.booking_time
    SelectedDuration uint32    `json:"selectedDuration"` // bookings.selected_duration (hours)
    TicketID         uint64    `json:"ticketId"`         // bookings.ticket_id
}
