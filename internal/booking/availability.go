package booking

import (
    "context"
    "errors"

    "github.com/iliyamo/railway-platform-reservation/internal/store"
)

// Reasons reported by CheckAvailability.  Callers branch on the
// allowed flag; the reason is informational and stable.
const (
    ReasonAvailable        = "available"
    ReasonPlatformNotFound = "platform not found"
    ReasonPlatformFull     = "platform full"
)

// CheckAvailability reports whether a new reservation may be
// accepted for the given platform.  Capacity accounting is
// ticket-state-driven: the platform is full when the count of
// tickets currently stored as ACTIVE reaches its capacity,
// regardless of each ticket's remaining duration.  Expiry is not
// evaluated here; a stale ACTIVE ticket still occupies its unit
// until some read path refreshes it.
//
// A missing platform and a full platform are ordinary outcomes
// (allowed=false with a reason); only storage failures are returned
// as errors.
func (e *Engine) CheckAvailability(ctx context.Context, platformNumber uint64) (bool, string, error) {
    p, err := e.platforms.GetByNumber(ctx, platformNumber)
    if err != nil {
        if errors.Is(err, store.ErrPlatformNotFound) {
            return false, ReasonPlatformNotFound, nil
        }
        return false, "", err
    }
    active, err := e.tickets.CountActiveByPlatform(ctx, platformNumber)
    if err != nil {
        return false, "", err
    }
    if active >= int(p.Capacity) {
        return false, ReasonPlatformFull, nil
    }
    return true, ReasonAvailable, nil
}
