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

// AdminHandler serves platform administration and the global
// bookings overview.  Routes using it sit behind the ADMIN role
// middleware.
type AdminHandler struct {
    Engine    *booking.Engine
    Platforms *repository.PlatformRepo
    Bookings  *repository.BookingRepo
    Tickets   *repository.TicketRepo
    Payments  *repository.PaymentRepo
    Users     *repository.UserRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any
// dependency is nil.
func NewAdminHandler(engine *booking.Engine, platforms *repository.PlatformRepo, bookings *repository.BookingRepo, tickets *repository.TicketRepo, payments *repository.PaymentRepo, users *repository.UserRepo) *AdminHandler {
    if engine == nil || platforms == nil || bookings == nil || tickets == nil || payments == nil || users == nil {
        panic("nil dependency passed to NewAdminHandler")
    }
    return &AdminHandler{
        Engine:    engine,
        Platforms: platforms,
        Bookings:  bookings,
        Tickets:   tickets,
        Payments:  payments,
        Users:     users,
    }
}

type platformReq struct {
    PlatformNumber uint64 `json:"platformNumber"`
    Capacity       uint32 `json:"capacity"`
}

// AddPlatform handles POST /v1/admin/platforms.
func (h *AdminHandler) AddPlatform(c echo.Context) error {
    var req platformReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.PlatformNumber == 0 || req.Capacity == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "platformNumber and capacity must be positive"})
    }
    p := &model.Platform{PlatformNumber: req.PlatformNumber, Capacity: req.Capacity}
    if err := h.Platforms.Append(c.Request().Context(), p); err != nil {
        if errors.Is(err, store.ErrPlatformExists) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "platform already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create platform failed"})
    }
    return c.JSON(http.StatusCreated, p)
}

type capacityReq struct {
    Capacity uint32 `json:"capacity"`
}

// UpdatePlatform handles PUT /v1/admin/platforms/:number.  Only the
// capacity can change; the platform number is the identity.
// Shrinking capacity below the current active count is allowed and
// simply blocks new reservations until tickets expire.
func (h *AdminHandler) UpdatePlatform(c echo.Context) error {
    number, err := strconv.ParseUint(c.Param("number"), 10, 64)
    if err != nil || number == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid platform number"})
    }
    var req capacityReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.Capacity == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be positive"})
    }
    ctx := c.Request().Context()
    p := &model.Platform{PlatformNumber: number, Capacity: req.Capacity}
    if err := h.Platforms.UpdateByNumber(ctx, number, p); err != nil {
        if errors.Is(err, store.ErrPlatformNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "platform not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update platform failed"})
    }
    return c.JSON(http.StatusOK, p)
}

// adminBookingRow is one line of the global bookings overview.
type adminBookingRow struct {
    Booking   model.Booking  `json:"booking"`
    UserEmail string         `json:"userEmail,omitempty"`
    Ticket    *model.Ticket  `json:"ticket,omitempty"`
    Payment   *model.Payment `json:"payment,omitempty"`
}

// ListBookings handles GET /v1/admin/bookings.  Every booking is
// returned with its refreshed ticket, latest payment and the owning
// user's email.  User lookups are cached per request since one user
// commonly owns several bookings.
func (h *AdminHandler) ListBookings(c echo.Context) error {
    ctx := c.Request().Context()
    bookings, err := h.Bookings.LoadAll(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
    }

    emails := make(map[uint64]string)
    rows := make([]adminBookingRow, 0, len(bookings))
    for _, b := range bookings {
        row := adminBookingRow{Booking: b}

        if email, ok := emails[b.UserID]; ok {
            row.UserEmail = email
        } else if u, err := h.Users.GetByID(ctx, b.UserID); err == nil {
            emails[b.UserID] = u.Email
            row.UserEmail = u.Email
        }

        if t, err := h.Engine.RefreshState(ctx, b.TicketID); err == nil {
            row.Ticket = t
        } else if !errors.Is(err, store.ErrTicketNotFound) && !errors.Is(err, booking.ErrCorruptTicket) {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tickets"})
        }

        if p, err := h.Payments.GetByBookingID(ctx, b.BookingID); err == nil {
            row.Payment = p
        } else if !errors.Is(err, store.ErrPaymentNotFound) {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load payments"})
        }

        rows = append(rows, row)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": rows})
}
