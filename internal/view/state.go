package view

import (
	"context"
	"fmt"

	"github.com/rrr-registry/rrr-tui/internal/registry"
)

// mainState is the record-browsing state shared by the panes of one
// MainView. It is read and written exclusively from the UI loop goroutine;
// background lookups receive copies of what they need.
type mainState struct {
	registry *registry.Registry

	// openedKey and opened describe the most recently opened record.
	// openedKey is empty until the root record has been opened.
	openedKey registry.HashedRecordKey
	opened    *registry.Record

	// path holds the display names of the records opened so far, root
	// first.
	path []string
}

// lookupRecord resolves a record name against the registry: the successor
// nonce is derived from the parent's hashed key, or taken from the
// registry config for the root record. Returns a nil record when no
// version exists under the resulting key.
func lookupRecord(ctx context.Context, reg *registry.Registry, parent registry.HashedRecordKey, name registry.RecordName) (registry.HashedRecordKey, *registry.Record, error) {
	cfg := reg.Config()

	var nonce registry.SuccessionNonce
	if len(parent) > 0 {
		derived, err := parent.DeriveSuccessionNonce(cfg.KDF)
		if err != nil {
			return nil, nil, fmt.Errorf("deriving succession nonce: %w", err)
		}
		nonce = derived
	} else {
		nonce = registry.SuccessionNonce(cfg.KDF.RootPredecessorNonce)
	}

	key := registry.RecordKey{PredecessorNonce: nonce, Name: name}
	hashed, err := key.Hash(cfg.Hash)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing record key: %w", err)
	}

	record, err := reg.ReadLatestVersion(ctx, hashed)
	if err != nil {
		return nil, nil, fmt.Errorf("reading record: %w", err)
	}
	return hashed, record, nil
}
