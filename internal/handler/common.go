// Package handler contains the HTTP layer.  Handlers bind request
// bodies, call into the booking engine or repositories and translate
// domain errors to HTTP status codes.  Authentication and role checks
// are performed by middleware before these handlers run.
package handler

import (
    "errors"
    "strconv"

    "github.com/labstack/echo/v4"
)

// getUserID extracts the user_id set by the JWT middleware and
// converts it to uint64.  Claims decoded from JSON arrive as
// float64; tests and internal callers may store other numeric types.
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// currentRole returns the role claim set by the JWT middleware, or
// an empty string for unauthenticated requests.
func currentRole(c echo.Context) string {
    if r, ok := c.Get("role").(string); ok {
        return r
    }
    return ""
}
