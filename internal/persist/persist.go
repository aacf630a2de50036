// Package persist is the durable key-value bridge for storefront state.
// Each session mirrors four independent slices (cart, user, wishlist, orders)
// to a SliceStore implementation; writes are last-write-wins with no
// transactional grouping across slices.
package persist

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Slice names one independently persisted portion of session state.
type Slice string

const (
	SliceCart     Slice = "cart"
	SliceUser     Slice = "user"
	SliceWishlist Slice = "wishlist"
	SliceOrders   Slice = "orders"
)

// SchemaVersion is stamped into every stored envelope. Readers treat any
// other version as absent data, which makes future migrations a matter of
// bumping the version and adding an upgrade path.
const SchemaVersion = 1

// SliceStore is the durable key-value contract. Implementations store opaque
// payloads keyed by (sessionID, slice) and return ErrNotFound for absent keys.
type SliceStore interface {
	Get(ctx context.Context, sessionID string, slice Slice) ([]byte, error)
	Set(ctx context.Context, sessionID string, slice Slice, payload []byte) error
	Delete(ctx context.Context, sessionID string, slice Slice) error
}

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Encode wraps a value in a versioned envelope.
func Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Version: SchemaVersion, Data: data})
}

// Decode unwraps a versioned envelope into dest. Malformed payloads and
// version mismatches return ErrNotFound so callers fall back to defaults
// instead of surfacing parse failures.
func Decode(payload []byte, dest any) error {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return ErrNotFound
	}
	if env.Version != SchemaVersion {
		return ErrNotFound
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return ErrNotFound
	}
	return nil
}
