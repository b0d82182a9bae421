package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// kvStateRepo implements StateRepo on the kv table.
type kvStateRepo struct {
	db  *sql.DB
	key string
}

func (r *kvStateRepo) Load(ctx context.Context) ([]byte, bool, error) {
	var blob []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, r.key).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		if isClosedErr(err) {
			return nil, false, ErrClosed
		}
		return nil, false, fmt.Errorf("load %s: %w", r.key, err)
	}
	return blob, true, nil
}

func (r *kvStateRepo) Save(ctx context.Context, blob []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		r.key, blob,
	)
	if err != nil {
		if isClosedErr(err) {
			return ErrClosed
		}
		return fmt.Errorf("save %s: %w", r.key, err)
	}
	return nil
}

func isClosedErr(err error) bool {
	return strings.Contains(err.Error(), "database is closed")
}

// MemoryRepo is an in-process StateRepo, used by tests and dry runs.
type MemoryRepo struct {
	mu    sync.Mutex
	blob  []byte
	saved bool

	// Saves counts successful Save calls.
	Saves int

	// FailSave, when set, is returned by every Save.
	FailSave error
}

// NewMemoryRepo returns a MemoryRepo, optionally pre-seeded with a blob.
func NewMemoryRepo(seed []byte) *MemoryRepo {
	r := &MemoryRepo{}
	if seed != nil {
		r.blob = append([]byte(nil), seed...)
		r.saved = true
	}
	return r
}

func (r *MemoryRepo) Load(_ context.Context) ([]byte, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.saved {
		return nil, false, nil
	}
	return append([]byte(nil), r.blob...), true, nil
}

func (r *MemoryRepo) Save(_ context.Context, blob []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailSave != nil {
		return r.FailSave
	}
	r.blob = append([]byte(nil), blob...)
	r.saved = true
	r.Saves++
	return nil
}

// Blob returns a copy of the last saved blob.
func (r *MemoryRepo) Blob() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]byte(nil), r.blob...)
}
