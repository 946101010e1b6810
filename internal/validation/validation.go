package validation

import (
	"fmt"
	"time"

	"github.com/eherrera/bevia/internal/constants"
	"github.com/eherrera/bevia/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyName        ConflictType = "empty_name"
	ConflictFutureBirthdate  ConflictType = "future_birthdate"
	ConflictNoMeasurement    ConflictType = "no_measurement"
	ConflictNegativeValue    ConflictType = "negative_value"
	ConflictInvalidAgeRange  ConflictType = "invalid_age_range"
	ConflictAchievedTooEarly ConflictType = "achieved_before_birth"
	ConflictDetailMismatch   ConflictType = "detail_mismatch"
	ConflictInvalidTimeOfDay ConflictType = "invalid_time_of_day"
)

// Conflict represents a single detected problem with a record
type Conflict struct {
	Type        ConflictType
	Description string
}

// Result contains all detected conflicts for a record
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No problems detected."
	}

	report := "Problems detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

func (r *Result) add(t ConflictType, format string, args ...any) {
	r.Conflicts = append(r.Conflicts, Conflict{Type: t, Description: fmt.Sprintf(format, args...)})
}

// Validator checks records before they are saved
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateBaby checks a baby record
func (v *Validator) ValidateBaby(b models.Baby, now time.Time) Result {
	var result Result
	if b.Name == "" {
		result.add(ConflictEmptyName, "baby name must not be empty")
	}
	if b.Birthdate.After(now) {
		result.add(ConflictFutureBirthdate, "birthdate %s is in the future", b.Birthdate.Format(constants.DateFormat))
	}
	return result
}

// ValidateGrowthRecord checks that a growth record carries at least one
// measurement and that all present measurements are positive.
func (v *Validator) ValidateGrowthRecord(r models.GrowthRecord) Result {
	var result Result
	if !r.HasMeasurement() {
		result.add(ConflictNoMeasurement, "growth record needs at least one of weight, height or head circumference")
	}
	for name, val := range map[string]*float64{"weight": r.Weight, "height": r.Height, "head circumference": r.Head} {
		if val != nil && *val <= 0 {
			result.add(ConflictNegativeValue, "%s must be positive, got %g", name, *val)
		}
	}
	return result
}

// ValidateMilestone checks name, expected range bounds, and that an
// achieved date does not precede the baby's birth.
func (v *Validator) ValidateMilestone(m models.Milestone, birthdate time.Time) Result {
	var result Result
	if m.Name == "" {
		result.add(ConflictEmptyName, "milestone name must not be empty")
	}
	if m.ExpectedRange != nil {
		if m.ExpectedRange.Min < 0 || m.ExpectedRange.Min > m.ExpectedRange.Max {
			result.add(ConflictInvalidAgeRange, "expected age range [%d,%d] is invalid",
				m.ExpectedRange.Min, m.ExpectedRange.Max)
		}
	}
	if m.AchievedDate != nil && m.AchievedDate.Before(birthdate) {
		result.add(ConflictAchievedTooEarly, "achieved date %s precedes the birthdate",
			m.AchievedDate.Format(constants.DateFormat))
	}
	return result
}

// ValidateLog checks that the log's detail payload matches its kind tag
// and that all time-of-day fields parse as HH:MM.
func (v *Validator) ValidateLog(l models.DailyLog) Result {
	var result Result
	if !l.HasMatchingDetail() {
		result.add(ConflictDetailMismatch, "log kind %q does not match its detail payload", l.Kind)
	}
	if !validTimeOfDay(l.TimeOfDay) {
		result.add(ConflictInvalidTimeOfDay, "time of day %q is not HH:MM", l.TimeOfDay)
	}
	if l.Sleep != nil {
		if !validTimeOfDay(l.Sleep.Start) {
			result.add(ConflictInvalidTimeOfDay, "sleep start %q is not HH:MM", l.Sleep.Start)
		}
		if l.Sleep.End != nil && !validTimeOfDay(*l.Sleep.End) {
			result.add(ConflictInvalidTimeOfDay, "sleep end %q is not HH:MM", *l.Sleep.End)
		}
	}
	if l.Feeding != nil && l.Feeding.Amount != nil && *l.Feeding.Amount <= 0 {
		result.add(ConflictNegativeValue, "feeding amount must be positive, got %g", *l.Feeding.Amount)
	}
	return result
}

func validTimeOfDay(s string) bool {
	_, err := time.Parse(constants.TimeFormat, s)
	return err == nil
}
