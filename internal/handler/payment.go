package handler

import (
    "context"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-platform-reservation/internal/booking"
    "github.com/iliyamo/railway-platform-reservation/internal/model"
    "github.com/iliyamo/railway-platform-reservation/internal/queue"
    queue_publisher "github.com/iliyamo/railway-platform-reservation/internal/service"
    "github.com/iliyamo/railway-platform-reservation/internal/store"
)

type paymentReq struct {
    Amount uint32 `json:"amount"`
}

// SettlePayment handles POST /v1/bookings/:id/payment.  Settlement is
// guarded: only a ticket still in PENDING_PAYMENT can be settled, a
// repeat attempt gets 409.  On success a ticket.activated event is
// published; publish failures are logged by the publisher and never
// fail the request.
func (h *BookingHandler) SettlePayment(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || bookingID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    var req paymentReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }

    ctx := c.Request().Context()
    b, err := h.Bookings.GetByID(ctx, bookingID)
    if err != nil {
        if errors.Is(err, store.ErrBookingNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
    }
    if b.UserID != userID {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    }

    ok, payment, err := h.Engine.ProcessPayment(ctx, bookingID, req.Amount)
    if err != nil {
        switch {
        case errors.Is(err, booking.ErrInvalidAmount):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
        case errors.Is(err, booking.ErrAlreadySettled):
            return c.JSON(http.StatusConflict, echo.Map{"error": "booking already settled"})
        case errors.Is(err, store.ErrTicketNotFound):
            return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "settlement failed"})
    }

    ticket, terr := h.Tickets.GetByID(ctx, b.TicketID)
    if terr != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load ticket"})
    }

    if ok {
        publishActivated(b, ticket, payment)
    }

    return c.JSON(http.StatusOK, echo.Map{
        "payment": payment,
        "ticket":  ticket,
    })
}

// publishActivated emits the ticket.activated event in the
// background so broker latency never adds to settlement latency.
func publishActivated(b *model.Booking, t *model.Ticket, p *model.Payment) {
    ev := queue.TicketActivatedEvent{
        BookingID:      b.BookingID,
        UserID:         b.UserID,
        TicketID:       t.TicketID,
        PlatformNumber: b.PlatformNumber,
        DurationHours:  b.SelectedDuration,
        Amount:         p.Amount,
        IssueTime:      t.IssueTime.UTC().Format(time.RFC3339),
        ExpiryTime:     t.ExpiryTime.UTC().Format(time.RFC3339),
        ActivatedAt:    p.PaymentTime.UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer cancel()
        _ = queue_publisher.PublishTicketActivated(ctx, ev)
    }()
}
