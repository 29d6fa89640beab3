package booking

import (
    "context"

    "github.com/iliyamo/railway-platform-reservation/internal/model"
)

// ProcessPayment records a settlement attempt for a booking and
// drives the linked ticket's state: ACTIVE on success, CANCELLED on
// failure.  The settlement applies only to a ticket still awaiting
// payment; a duplicate or late attempt returns ErrAlreadySettled
// and writes no payment record.  The outcome itself comes from the
// engine's decision policy and is reported via the success flag,
// not as an error.
func (e *Engine) ProcessPayment(ctx context.Context, bookingID uint64, amount uint32) (bool, *model.Payment, error) {
    if amount == 0 {
        return false, nil, ErrInvalidAmount
    }
    b, err := e.bookings.GetByID(ctx, bookingID)
    if err != nil {
        return false, nil, err
    }
    t, err := e.tickets.GetByID(ctx, b.TicketID)
    if err != nil {
        return false, nil, err
    }
    if t.Status != model.TicketPendingPayment {
        return false, nil, ErrAlreadySettled
    }

    success := e.decide(bookingID, amount)
    status := model.PaymentSuccess
    if !success {
        status = model.PaymentFailed
    }

    pay := &model.Payment{
        BookingID:     bookingID,
        Amount:        amount,
        PaymentStatus: status,
        PaymentTime:   e.now().UTC(),
    }
    if err := e.payments.Append(ctx, pay); err != nil {
        return false, nil, err
    }

    if success {
        t.Status = model.TicketActive
    } else {
        t.Status = model.TicketCancelled
    }
    if err := e.tickets.UpdateByID(ctx, t.TicketID, t); err != nil {
        return false, nil, err
    }
    return success, pay, nil
}
