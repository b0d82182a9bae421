// Package backup exports the persisted state to a portable JSON file and
// imports it back, validating the file before anything is overwritten.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/abhisek/rivalgoals/internal/migrate"
	"github.com/abhisek/rivalgoals/internal/state"
	"github.com/abhisek/rivalgoals/internal/store"
)

const (
	Format  = "rivalgoals-backup"
	Version = 1
)

var (
	// ErrInvalidBackup is matched by every import failure caused by the file's
	// content rather than by storage.
	ErrInvalidBackup = errors.New("invalid backup")

	// ErrNoState is returned by Export when nothing has been saved yet.
	ErrNoState = errors.New("no saved state to export")
)

// ValidationError reports a backup that does not match the schema.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("backup does not match schema: %v", e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidBackup, e.Err}
}

// Envelope is the on-disk backup format.
type Envelope struct {
	Format     string          `json:"format"`
	Version    int             `json:"version"`
	ExportedAt time.Time       `json:"exportedAt"`
	State      json.RawMessage `json:"state"`
}

// Export writes the stored blob to w wrapped in an Envelope.
func Export(ctx context.Context, repo store.StateRepo, w io.Writer, now time.Time) error {
	blob, found, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if !found {
		return ErrNoState
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Envelope{
		Format:     Format,
		Version:    Version,
		ExportedAt: now.UTC(),
		State:      json.RawMessage(blob),
	}); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// Decode validates a backup and migrates its state. Both the Envelope format
// and a bare state blob (as stored under the state key) are accepted.
func Decode(r io.Reader, env migrate.Env) (state.AppState, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return state.AppState{}, fmt.Errorf("read backup: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return state.AppState{}, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return state.AppState{}, fmt.Errorf("%w: top level is not an object", ErrInvalidBackup)
	}

	stateDoc, envelopeDoc, err := schemas()
	if err != nil {
		return state.AppState{}, fmt.Errorf("compile backup schema: %w", err)
	}

	stateBlob := raw
	if _, wrapped := obj["format"]; wrapped {
		if err := envelopeDoc.Validate(doc); err != nil {
			return state.AppState{}, &ValidationError{Err: err}
		}
		var envl Envelope
		if err := json.Unmarshal(raw, &envl); err != nil {
			return state.AppState{}, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
		}
		stateBlob = envl.State
	} else if err := stateDoc.Validate(doc); err != nil {
		return state.AppState{}, &ValidationError{Err: err}
	}

	s, err := migrate.Migrate(stateBlob, env)
	if err != nil {
		return state.AppState{}, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}
	return s, nil
}

// Import decodes a backup from r and overwrites the stored state with it. The
// store is untouched when validation fails.
func Import(ctx context.Context, repo store.StateRepo, r io.Reader, env migrate.Env) (state.AppState, error) {
	s, err := Decode(r, env)
	if err != nil {
		return state.AppState{}, err
	}
	blob, err := json.Marshal(s)
	if err != nil {
		return state.AppState{}, fmt.Errorf("encode state: %w", err)
	}
	if err := repo.Save(ctx, blob); err != nil {
		return state.AppState{}, fmt.Errorf("save imported state: %w", err)
	}
	return s, nil
}
