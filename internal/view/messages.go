package view

import (
	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/registry"
)

// RecordOpenMessage announces the result of a background record lookup.
// Record is nil when no version exists under the hashed key.
type RecordOpenMessage struct {
	tui.BaseMessage

	HashedKey registry.HashedRecordKey
	// Name is the display form of the record name the lookup was made with.
	Name   string
	Record *registry.Record
}
