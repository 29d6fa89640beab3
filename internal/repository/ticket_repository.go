package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/railway-platform-reservation/internal/model"
    "github.com/iliyamo/railway-platform-reservation/internal/store"
)

// TicketRepo persists tickets.  Issue and expiry timestamps are
// stored in UTC; the status column holds one of the model.Ticket*
// enumeration values.
type TicketRepo struct {
    db *sql.DB
}

// NewTicketRepo returns a new TicketRepo bound to the given database.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

// GetByID returns one ticket or store.ErrTicketNotFound.
func (r *TicketRepo) GetByID(ctx context.Context, id uint64) (*model.Ticket, error) {
    const q = `SELECT ticket_id, issue_time, expiry_time, status, platform_number FROM tickets WHERE ticket_id = ? LIMIT 1`
    var t model.Ticket
    err := r.db.QueryRowContext(ctx, q, id).Scan(&t.TicketID, &t.IssueTime, &t.ExpiryTime, &t.Status, &t.PlatformNumber)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, store.ErrTicketNotFound
    }
    if err != nil {
        return nil, err
    }
    return &t, nil
}

// Append inserts a new ticket and populates the generated ticket id
// on the provided record.
func (r *TicketRepo) Append(ctx context.Context, t *model.Ticket) error {
    const q = `INSERT INTO tickets (issue_time, expiry_time, status, platform_number) VALUES (?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, t.IssueTime, t.ExpiryTime, t.Status, t.PlatformNumber)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    t.TicketID = uint64(id)
    return nil
}

// UpdateByID overwrites a ticket row.  Only the status ever changes
// in practice but the full record is written to keep the operation
// a plain update-by-identifier.
func (r *TicketRepo) UpdateByID(ctx context.Context, id uint64, t *model.Ticket) error {
    const q = `UPDATE tickets SET issue_time = ?, expiry_time = ?, status = ?, platform_number = ? WHERE ticket_id = ?`
    res, err := r.db.ExecContext(ctx, q, t.IssueTime, t.ExpiryTime, t.Status, t.PlatformNumber, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        var exists bool
        if err := r.db.QueryRowContext(ctx,
            `SELECT EXISTS(SELECT 1 FROM tickets WHERE ticket_id = ?)`, id).Scan(&exists); err != nil {
            return err
        }
        if !exists {
            return store.ErrTicketNotFound
        }
    }
    return nil
}

// CountActiveByPlatform counts bookings whose linked ticket is
// currently stored as ACTIVE for the given platform.  Lazy expiry is
// deliberately not applied here: a stale ACTIVE ticket keeps
// occupying its capacity unit until some read path refreshes it.
func (r *TicketRepo) CountActiveByPlatform(ctx context.Context, platformNumber uint64) (int, error) {
    const q = `SELECT COUNT(*)
               FROM bookings b
               JOIN tickets t ON t.ticket_id = b.ticket_id
               WHERE b.platform_number = ? AND t.status = ?`
    var n int
    if err := r.db.QueryRowContext(ctx, q, platformNumber, model.TicketActive).Scan(&n); err != nil {
        return 0, err
    }
    return n, nil
}

var _ store.TicketStore = (*TicketRepo)(nil)
