package models

import (
	"time"

	"github.com/google/uuid"
)

// Baby is the root entity; every other record kind is owned by a baby.
type Baby struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Birthdate time.Time `json:"birthdate"`
	Gender    string    `json:"gender,omitempty"` // "male", "female" or empty
	Notes     string    `json:"notes,omitempty"`
}

// NewBaby creates a baby with a freshly generated id.
func NewBaby(name string, birthdate time.Time, gender, notes string) Baby {
	return Baby{
		ID:        uuid.New(),
		Name:      name,
		Birthdate: birthdate,
		Gender:    gender,
		Notes:     notes,
	}
}

// Age returns the baby's age broken into calendar components as of the
// given time.
func (b Baby) Age(asOf time.Time) (years, months, days int) {
	return AgeParts(b.Birthdate, asOf)
}

// AgeInMonths returns the baby's age in whole months as of the given time.
func (b Baby) AgeInMonths(asOf time.Time) int {
	return MonthsBetween(b.Birthdate, asOf)
}
