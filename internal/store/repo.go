package store

import "context"

// StateKey is the fixed key the application state blob is stored under.
const StateKey = "rivalgoals_data"

// StateRepo loads and saves the single serialized application state.
// Both calls are synchronous; there are no partial writes.
type StateRepo interface {
	// Load returns the stored blob. ok is false when nothing was ever saved.
	Load(ctx context.Context) (blob []byte, ok bool, err error)

	// Save replaces the stored blob.
	Save(ctx context.Context, blob []byte) error
}
