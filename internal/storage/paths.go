package storage

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind identifies a record type and drives the on-disk partitioning. The
// same mapping applies to every kind: babies live directly under the store
// root, and each owned kind lives in its own per-baby subdirectory.
type Kind string

const (
	KindBaby      Kind = "baby"
	KindGrowth    Kind = "growth"
	KindMilestone Kind = "milestone"
	KindLog       Kind = "log"
)

// Dir returns the directory, relative to the store root, that holds
// records of this kind owned by the given baby. The owner id is ignored
// for KindBaby.
func (k Kind) Dir(owner uuid.UUID) string {
	if k == KindBaby {
		return "."
	}
	return fmt.Sprintf("baby_%s_%s", owner, k)
}

// Filename returns the file name for a record of this kind.
func (k Kind) Filename(id uuid.UUID) string {
	return fmt.Sprintf("%s_%s.json", k, id)
}

// Prefix returns the filename prefix records of this kind carry, used to
// filter directory listings.
func (k Kind) Prefix() string {
	return string(k) + "_"
}
