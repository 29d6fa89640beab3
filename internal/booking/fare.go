package booking

// CalculateAmount computes the fare for a reservation of the given
// duration: a flat per-hour rate times the number of hours.  It is
// pure and deterministic.  Zero durations are rejected with
// ErrInvalidDuration.
func (e *Engine) CalculateAmount(durationHours uint32) (uint32, error) {
    if durationHours == 0 {
        return 0, ErrInvalidDuration
    }
    return e.ratePerHour * durationHours, nil
}
