package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/hknav/internal/db"
)

// SQLiteSliceRepo implements SliceRepo using a SQLite database.
type SQLiteSliceRepo struct {
	db  db.DBTX
	now func() time.Time
}

// NewSQLiteSliceRepo creates a new SQLiteSliceRepo.
func NewSQLiteSliceRepo(conn db.DBTX) *SQLiteSliceRepo {
	return &SQLiteSliceRepo{db: conn, now: time.Now}
}

// Load returns the stored value for key. A missing key is reported as
// (nil, false, nil), not as an error.
func (r *SQLiteSliceRepo) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slices WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("loading slice %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (r *SQLiteSliceRepo) Save(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO slices (key, value, updated_at, size) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value,
			updated_at = excluded.updated_at, size = excluded.size`
	_, err := r.db.ExecContext(ctx, query,
		key,
		string(value),
		r.now().UTC().Format(time.RFC3339),
		len(value),
	)
	if err != nil {
		return fmt.Errorf("saving slice %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteSliceRepo) Delete(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM slices WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting slice %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting slice %s: %w", key, err)
	}
	if n == 0 {
		return fmt.Errorf("slice %s: %w", key, ErrNotFound)
	}
	return nil
}

// DeleteKeys removes every listed key in one transaction and reports how
// many existed. Missing keys are not an error.
func (r *SQLiteSliceRepo) DeleteKeys(ctx context.Context, keys []string) (int, error) {
	deleted := 0
	err := db.InTx(ctx, r.db, func(tx db.DBTX) error {
		for _, key := range keys {
			res, err := tx.ExecContext(ctx, `DELETE FROM slices WHERE key = ?`, key)
			if err != nil {
				return fmt.Errorf("deleting slice %s: %w", key, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("deleting slice %s: %w", key, err)
			}
			deleted += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (r *SQLiteSliceRepo) List(ctx context.Context) ([]SliceInfo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, size, updated_at FROM slices ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing slices: %w", err)
	}
	defer rows.Close()

	var out []SliceInfo
	for rows.Next() {
		var info SliceInfo
		var updated string
		if err := rows.Scan(&info.Key, &info.Size, &updated); err != nil {
			return nil, fmt.Errorf("scanning slice: %w", err)
		}
		info.UpdatedAt = parseTime(updated)
		out = append(out, info)
	}
	return out, rows.Err()
}

// parseTime returns the zero time for values that fail to parse.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
