// Package storage provides the snapshot persistence port for replykit.
//
// The collection is persisted as a single opaque blob under a fixed
// slot. Backends only need get/set semantics; serialization and
// consistency are owned by the store layer.
package storage

import "errors"

// SlotName is the single slot the template collection lives in.
const SlotName = "templates"

// ErrSlotEmpty is returned by Load when the slot has never been
// written. First run looks like this; callers treat it as an empty
// collection, not a failure.
var ErrSlotEmpty = errors.New("storage slot is empty")

// Port is the persistence contract for the template snapshot.
type Port interface {
	// Load returns the last saved snapshot, or ErrSlotEmpty.
	Load() ([]byte, error)

	// Save replaces the snapshot. The write must be complete before
	// Save returns; there are no partial writes visible to Load.
	Save(data []byte) error

	// Close releases backend resources.
	Close() error
}
