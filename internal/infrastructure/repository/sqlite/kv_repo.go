package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/DailyWish/internal/domain/contract"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_counters (
	kv_key TEXT PRIMARY KEY,
	value INTEGER NOT NULL DEFAULT 0,
	expires_at INTEGER
);

CREATE TABLE IF NOT EXISTS kv_set_members (
	kv_key TEXT NOT NULL,
	member TEXT NOT NULL,
	expires_at INTEGER,
	PRIMARY KEY (kv_key, member)
);
`

// KeyValueRepository keeps counters and set members in two SQLite tables. Expired rows
// are treated as absent and deleted lazily on the next write to the key.
type KeyValueRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ contract.IKeyValueStore = (*KeyValueRepository)(nil)

// NewKeyValueRepository creates the tables if needed.
func NewKeyValueRepository(ctx context.Context, db *sql.DB) (*KeyValueRepository, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create kv schema: %w", err)
	}
	return &KeyValueRepository{db: db, now: time.Now}, nil
}

func (r *KeyValueRepository) nowUnix() int64 {
	return r.now().UnixNano()
}

func (r *KeyValueRepository) Get(ctx context.Context, key string) (int64, bool, error) {
	var v int64
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM kv_counters WHERE kv_key = ? AND (expires_at IS NULL OR expires_at > ?)`,
		key, r.nowUnix()).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *KeyValueRepository) Increment(ctx context.Context, key string) (int64, error) {
	now := r.nowUnix()
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM kv_counters WHERE kv_key = ? AND expires_at IS NOT NULL AND expires_at <= ?`, key, now); err != nil {
		return 0, fmt.Errorf("failed to sweep %s: %w", key, err)
	}
	var v int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO kv_counters (kv_key, value) VALUES (?, 1)
		ON CONFLICT(kv_key) DO UPDATE SET value = value + 1
		RETURNING value`, key).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}
	return v, nil
}

func (r *KeyValueRepository) AddToSet(ctx context.Context, key, member string) (bool, error) {
	now := r.nowUnix()
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM kv_set_members WHERE kv_key = ? AND expires_at IS NOT NULL AND expires_at <= ?`, key, now); err != nil {
		return false, fmt.Errorf("failed to sweep %s: %w", key, err)
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO kv_set_members (kv_key, member) VALUES (?, ?) ON CONFLICT(kv_key, member) DO NOTHING`,
		key, member)
	if err != nil {
		return false, fmt.Errorf("failed to add member to %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to add member to %s: %w", key, err)
	}
	return n == 1, nil
}

func (r *KeyValueRepository) IsMember(ctx context.Context, key, member string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM kv_set_members WHERE kv_key = ? AND member = ? AND (expires_at IS NULL OR expires_at > ?)`,
		key, member, r.nowUnix()).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check member of %s: %w", key, err)
	}
	return true, nil
}

func (r *KeyValueRepository) Expire(ctx context.Context, key string, ttl time.Duration) error {
	deadline := r.now().Add(ttl).UnixNano()
	if _, err := r.db.ExecContext(ctx, `UPDATE kv_counters SET expires_at = ? WHERE kv_key = ?`, deadline, key); err != nil {
		return fmt.Errorf("failed to expire %s: %w", key, err)
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE kv_set_members SET expires_at = ? WHERE kv_key = ?`, deadline, key); err != nil {
		return fmt.Errorf("failed to expire %s: %w", key, err)
	}
	return nil
}

func (r *KeyValueRepository) Close() error {
	return r.db.Close()
}
