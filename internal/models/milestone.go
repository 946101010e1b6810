package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MilestoneCategory string

const (
	CategoryPhysical  MilestoneCategory = "physical"
	CategorySocial    MilestoneCategory = "social"
	CategoryLanguage  MilestoneCategory = "language"
	CategoryCognitive MilestoneCategory = "cognitive"
	CategoryOther     MilestoneCategory = "other"
)

// ParseMilestoneCategory validates a user-supplied category string.
func ParseMilestoneCategory(s string) (MilestoneCategory, error) {
	switch MilestoneCategory(s) {
	case CategoryPhysical, CategorySocial, CategoryLanguage, CategoryCognitive, CategoryOther:
		return MilestoneCategory(s), nil
	default:
		return "", fmt.Errorf("invalid milestone category: %q", s)
	}
}

func (c MilestoneCategory) DisplayName() string {
	switch c {
	case CategoryPhysical:
		return "Physical"
	case CategorySocial:
		return "Social"
	case CategoryLanguage:
		return "Language"
	case CategoryCognitive:
		return "Cognitive"
	case CategoryOther:
		return "Other"
	default:
		return string(c)
	}
}

// AgeRange is an inclusive range of ages in months.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r AgeRange) Contains(months int) bool {
	return months >= r.Min && months <= r.Max
}

func (r AgeRange) String() string {
	if r.Min == r.Max {
		return fmt.Sprintf("%d months", r.Min)
	}
	return fmt.Sprintf("%d-%d months", r.Min, r.Max)
}

// Milestone is a developmental milestone, optionally achieved and
// optionally carrying an expected age range.
type Milestone struct {
	ID            uuid.UUID         `json:"id"`
	BabyID        uuid.UUID         `json:"baby_id"`
	Name          string            `json:"name"`
	Category      MilestoneCategory `json:"category"`
	AchievedDate  *time.Time        `json:"achieved_date,omitempty"`
	ExpectedRange *AgeRange         `json:"expected_range,omitempty"`
	Notes         string            `json:"notes,omitempty"`
}

// NewMilestone creates a milestone with a freshly generated id.
func NewMilestone(babyID uuid.UUID, name string, category MilestoneCategory, expected *AgeRange, notes string) Milestone {
	return Milestone{
		ID:            uuid.New(),
		BabyID:        babyID,
		Name:          name,
		Category:      category,
		ExpectedRange: expected,
		Notes:         notes,
	}
}

// IsAchieved reports whether the milestone has an achieved date.
func (m Milestone) IsAchieved() bool {
	return m.AchievedDate != nil
}

// IsOnTime reports whether the milestone was achieved within its expected
// age range, relative to the given birthdate. The second return value is
// false when the question is undefined, i.e. when either the achieved date
// or the expected range is absent.
func (m Milestone) IsOnTime(birthdate time.Time) (onTime, defined bool) {
	if m.AchievedDate == nil || m.ExpectedRange == nil {
		return false, false
	}
	ageMonths := MonthsBetween(birthdate, *m.AchievedDate)
	return m.ExpectedRange.Contains(ageMonths), true
}
