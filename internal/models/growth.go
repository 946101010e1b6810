package models

import (
	"time"

	"github.com/google/uuid"
)

// GrowthRecord is a single set of measurements taken on one date. Any of
// the three measurements may be absent, but at least one should be present
// (enforced by validation, not by the store).
type GrowthRecord struct {
	ID     uuid.UUID `json:"id"`
	BabyID uuid.UUID `json:"baby_id"`
	Date   time.Time `json:"date"`
	Weight *float64  `json:"weight,omitempty"`             // kg
	Height *float64  `json:"height,omitempty"`             // cm
	Head   *float64  `json:"head_circumference,omitempty"` // cm
	Notes  string    `json:"notes,omitempty"`
}

// NewGrowthRecord creates a growth record with a freshly generated id.
func NewGrowthRecord(babyID uuid.UUID, date time.Time, weight, height, head *float64, notes string) GrowthRecord {
	return GrowthRecord{
		ID:     uuid.New(),
		BabyID: babyID,
		Date:   date,
		Weight: weight,
		Height: height,
		Head:   head,
		Notes:  notes,
	}
}

// HasMeasurement reports whether at least one measurement is present.
func (r GrowthRecord) HasMeasurement() bool {
	return r.Weight != nil || r.Height != nil || r.Head != nil
}
