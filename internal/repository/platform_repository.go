package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/iliyamo/railway-platform-reservation/internal/model"
    "github.com/iliyamo/railway-platform-reservation/internal/store"
)

// PlatformRepo persists platforms.  The platform number is the
// natural key; there is no surrogate id.
type PlatformRepo struct {
    db *sql.DB
}

// NewPlatformRepo returns a new PlatformRepo bound to the given database.
func NewPlatformRepo(db *sql.DB) *PlatformRepo { return &PlatformRepo{db: db} }

// LoadAll returns every platform ordered by platform number.
func (r *PlatformRepo) LoadAll(ctx context.Context) ([]model.Platform, error) {
    const q = `SELECT platform_number, capacity FROM platforms ORDER BY platform_number`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Platform, 0)
    for rows.Next() {
        var p model.Platform
        if err := rows.Scan(&p.PlatformNumber, &p.Capacity); err != nil {
            return nil, err
        }
        out = append(out, p)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// GetByNumber returns one platform or store.ErrPlatformNotFound.
func (r *PlatformRepo) GetByNumber(ctx context.Context, number uint64) (*model.Platform, error) {
    const q = `SELECT platform_number, capacity FROM platforms WHERE platform_number = ? LIMIT 1`
    var p model.Platform
    err := r.db.QueryRowContext(ctx, q, number).Scan(&p.PlatformNumber, &p.Capacity)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, store.ErrPlatformNotFound
    }
    if err != nil {
        return nil, err
    }
    return &p, nil
}

// Append inserts a new platform.  A duplicate platform number maps
// to store.ErrPlatformExists.
func (r *PlatformRepo) Append(ctx context.Context, p *model.Platform) error {
    const q = `INSERT INTO platforms (platform_number, capacity) VALUES (?, ?)`
    _, err := r.db.ExecContext(ctx, q, p.PlatformNumber, p.Capacity)
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return store.ErrPlatformExists
        }
        return err
    }
    return nil
}

// UpdateByNumber replaces a platform's mutable attributes (its
// capacity).  Updating a missing platform returns
// store.ErrPlatformNotFound.
func (r *PlatformRepo) UpdateByNumber(ctx context.Context, number uint64, p *model.Platform) error {
    const q = `UPDATE platforms SET capacity = ? WHERE platform_number = ?`
    res, err := r.db.ExecContext(ctx, q, p.Capacity, number)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        // Distinguish "no change" from "no row".
        var exists bool
        if err := r.db.QueryRowContext(ctx,
            `SELECT EXISTS(SELECT 1 FROM platforms WHERE platform_number = ?)`, number).Scan(&exists); err != nil {
            return err
        }
        if !exists {
            return store.ErrPlatformNotFound
        }
    }
    return nil
}

// Seed inserts the default platforms when the table is empty so a
// fresh installation is immediately bookable.
func (r *PlatformRepo) Seed(ctx context.Context) error {
    var n int
    if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM platforms`).Scan(&n); err != nil {
        return err
    }
    if n > 0 {
        return nil
    }
    defaults := []model.Platform{
        {PlatformNumber: 1, Capacity: 200},
        {PlatformNumber: 2, Capacity: 150},
    }
    for i := range defaults {
        if err := r.Append(ctx, &defaults[i]); err != nil {
            return err
        }
    }
    return nil
}

var _ store.PlatformStore = (*PlatformRepo)(nil)
