package inventory

import (
	"context"
	"errors"
)

// ErrRecordNotFound is returned when an inventory record cannot be located.
var ErrRecordNotFound = errors.New("inventory: record not found")

// Store is the read port over supplier inventory. Pricing never writes
// through it; stock is read, not reserved.
type Store interface {
	ByIDs(ctx context.Context, ids []RecordID) ([]Record, error)
}
