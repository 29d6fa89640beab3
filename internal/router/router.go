// Package router maps HTTP routes to handlers and attaches the
// middleware each group needs.
package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-platform-reservation/internal/handler"
    "github.com/iliyamo/railway-platform-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only the health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints.
// Unauthenticated operations live under /v1/auth, the protected /me
// endpoint under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    // Rotates the refresh token.
    g.POST("/refresh", a.Refresh)
    // Issues a new access token without rotating the refresh token.
    g.POST("/refresh-access", a.RefreshAccess)
    // Logout works without the JWT middleware: a refresh token in the
    // body ends one session, a Bearer header alone ends all of them.
    g.POST("/logout", a.Logout)

    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.Use(middleware.RequireRole("USER", "ADMIN"))
    auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated browse endpoints.
// Guests can inspect platforms and check availability before
// registering; cacheMW caches these read-only responses.
func RegisterPublic(e *echo.Echo, h *handler.BookingHandler, cacheMW echo.MiddlewareFunc) {
    e.GET("/v1/platforms", h.ListPlatforms, cacheMW)
    e.GET("/v1/platforms/:number/availability", h.Availability, cacheMW)
}

// RegisterUser registers the reservation endpoints under /v1.  All
// routes require a valid JWT; admins may use them too, e.g. to
// inspect a ticket on a user's behalf.
func RegisterUser(e *echo.Echo, h *handler.BookingHandler, jwtSecret string) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("USER", "ADMIN"),
    )
    g.POST("/bookings", h.CreateBooking)
    g.POST("/bookings/:id/payment", h.SettlePayment)
    g.GET("/bookings/:id/ticket", h.GetTicket)
    g.GET("/my-bookings", h.MyBookings)
}

// RegisterAdmin registers platform administration and the global
// bookings overview under /v1/admin, restricted to the ADMIN role.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
    g := e.Group(
        "/v1/admin",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("ADMIN"),
    )
    g.POST("/platforms", h.AddPlatform)
    g.PUT("/platforms/:number", h.UpdatePlatform)
    g.GET("/bookings", h.ListBookings)
}
