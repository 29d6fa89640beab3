package handler

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-platform-reservation/internal/booking"
    "github.com/iliyamo/railway-platform-reservation/internal/model"
    "github.com/iliyamo/railway-platform-reservation/internal/repository"
    "github.com/iliyamo/railway-platform-reservation/internal/store"
)

// BookingHandler serves the reservation endpoints: platform browsing,
// availability checks, booking creation, ticket details and the
// current user's booking history.  All state transitions run through
// the engine; the handler only maps errors to status codes.
type BookingHandler struct {
    Engine    *booking.Engine
    Platforms *repository.PlatformRepo
    Bookings  *repository.BookingRepo
    Tickets   *repository.TicketRepo
    Payments  *repository.PaymentRepo
}

// NewBookingHandler constructs a BookingHandler and panics if any
// dependency is nil.
func NewBookingHandler(engine *booking.Engine, platforms *repository.PlatformRepo, bookings *repository.BookingRepo, tickets *repository.TicketRepo, payments *repository.PaymentRepo) *BookingHandler {
    if engine == nil || platforms == nil || bookings == nil || tickets == nil || payments == nil {
        panic("nil dependency passed to NewBookingHandler")
    }
    return &BookingHandler{
        Engine:    engine,
        Platforms: platforms,
        Bookings:  bookings,
        Tickets:   tickets,
        Payments:  payments,
    }
}

// platformView is the public projection of a platform including its
// current occupancy.
type platformView struct {
    PlatformNumber uint64 `json:"platformNumber"`
    Capacity       uint32 `json:"capacity"`
    ActiveTickets  int    `json:"activeTickets"`
    Available      bool   `json:"available"`
}

// ListPlatforms handles GET /v1/platforms.  It returns every platform
// with its capacity and the number of currently active tickets.
func (h *BookingHandler) ListPlatforms(c echo.Context) error {
    ctx := c.Request().Context()
    platforms, err := h.Platforms.LoadAll(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load platforms"})
    }
    views := make([]platformView, 0, len(platforms))
    for _, p := range platforms {
        active, err := h.Tickets.CountActiveByPlatform(ctx, p.PlatformNumber)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to count tickets"})
        }
        views = append(views, platformView{
            PlatformNumber: p.PlatformNumber,
            Capacity:       p.Capacity,
            ActiveTickets:  active,
            Available:      uint32(active) < p.Capacity,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"items": views})
}

// Availability handles GET /v1/platforms/:number/availability.  The
// response always carries a reason string so clients can display why
// a platform cannot be booked.  An unknown platform is reported in
// the body with 200, matching the check-only nature of the endpoint.
func (h *BookingHandler) Availability(c echo.Context) error {
    number, err := strconv.ParseUint(c.Param("number"), 10, 64)
    if err != nil || number == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid platform number"})
    }
    available, reason, err := h.Engine.CheckAvailability(c.Request().Context(), number)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability check failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "platformNumber": number,
        "available":      available,
        "reason":         reason,
    })
}

type createBookingReq struct {
    PlatformNumber uint64 `json:"platformNumber"`
    DurationHours  uint32 `json:"durationHours"`
}

// CreateBooking handles POST /v1/bookings.  It reserves a slot on the
// requested platform and issues a ticket in PENDING_PAYMENT state.
// The computed fare is returned so the client knows what to settle.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req createBookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.PlatformNumber == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "platformNumber required"})
    }

    ctx := c.Request().Context()
    b, err := h.Engine.Reserve(ctx, userID, req.PlatformNumber, req.DurationHours)
    if err != nil {
        switch {
        case errors.Is(err, booking.ErrInvalidDuration):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "durationHours must be positive"})
        case errors.Is(err, store.ErrPlatformNotFound):
            return c.JSON(http.StatusNotFound, echo.Map{"error": "platform not found"})
        case errors.Is(err, booking.ErrPlatformFull):
            return c.JSON(http.StatusConflict, echo.Map{"error": "platform full"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
    }

    amount, err := h.Engine.CalculateAmount(b.SelectedDuration)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fare calculation failed"})
    }
    ticket, err := h.Tickets.GetByID(ctx, b.TicketID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load ticket"})
    }

    return c.JSON(http.StatusCreated, echo.Map{
        "booking": b,
        "ticket":  ticket,
        "amount":  amount,
    })
}

// GetTicket handles GET /v1/bookings/:id/ticket.  The ticket state is
// refreshed on read so an overdue ACTIVE ticket comes back EXPIRED.
// Admins may inspect any booking; users only their own.
func (h *BookingHandler) GetTicket(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || bookingID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }

    ctx := c.Request().Context()
    b, err := h.Bookings.GetByID(ctx, bookingID)
    if err != nil {
        if errors.Is(err, store.ErrBookingNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
    }
    if b.UserID != userID && currentRole(c) != "ADMIN" {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    }

    ticket, err := h.Engine.RefreshState(ctx, b.TicketID)
    if err != nil {
        if errors.Is(err, booking.ErrCorruptTicket) {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "ticket data corrupt"})
        }
        if errors.Is(err, store.ErrTicketNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load ticket"})
    }

    resp := echo.Map{"booking": b, "ticket": ticket}
    if p, err := h.Payments.GetByBookingID(ctx, bookingID); err == nil {
        resp["payment"] = p
    } else if !errors.Is(err, store.ErrPaymentNotFound) {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load payment"})
    }
    return c.JSON(http.StatusOK, resp)
}

// bookingHistoryItem joins a booking with its refreshed ticket and
// latest payment for the history listing.
type bookingHistoryItem struct {
    Booking model.Booking  `json:"booking"`
    Ticket  *model.Ticket  `json:"ticket,omitempty"`
    Payment *model.Payment `json:"payment,omitempty"`
}

// MyBookings handles GET /v1/my-bookings.  Ticket states are
// refreshed while assembling the list, so reading history is enough
// to expire overdue tickets.
func (h *BookingHandler) MyBookings(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx := c.Request().Context()
    bookings, err := h.Bookings.ListByUser(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
    }

    items := make([]bookingHistoryItem, 0, len(bookings))
    for _, b := range bookings {
        item := bookingHistoryItem{Booking: b}
        if t, err := h.Engine.RefreshState(ctx, b.TicketID); err == nil {
            item.Ticket = t
        } else if !errors.Is(err, store.ErrTicketNotFound) && !errors.Is(err, booking.ErrCorruptTicket) {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tickets"})
        }
        if p, err := h.Payments.GetByBookingID(ctx, b.BookingID); err == nil {
            item.Payment = p
        } else if !errors.Is(err, store.ErrPaymentNotFound) {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load payments"})
        }
        items = append(items, item)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}
