package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eherrera/bevia/internal/constants"
)

type LogKind string

const (
	LogKindFeeding LogKind = "feeding"
	LogKindSleep   LogKind = "sleep"
	LogKindDiaper  LogKind = "diaper"
)

type FeedingType string

const (
	FeedingBreast  FeedingType = "breast"
	FeedingBottle  FeedingType = "bottle"
	FeedingFormula FeedingType = "formula"
	FeedingSolid   FeedingType = "solid"
)

// ParseFeedingType validates a user-supplied feeding type string.
func ParseFeedingType(s string) (FeedingType, error) {
	switch FeedingType(s) {
	case FeedingBreast, FeedingBottle, FeedingFormula, FeedingSolid:
		return FeedingType(s), nil
	default:
		return "", fmt.Errorf("invalid feeding type: %q", s)
	}
}

func (t FeedingType) DisplayName() string {
	switch t {
	case FeedingBreast:
		return "Breastfeeding"
	case FeedingBottle:
		return "Bottle (Breast milk)"
	case FeedingFormula:
		return "Formula"
	case FeedingSolid:
		return "Solid food"
	default:
		return string(t)
	}
}

// AmountUnit returns the unit the amount is recorded in for this feeding
// type, or an empty string when the type has no amount.
func (t FeedingType) AmountUnit() string {
	switch t {
	case FeedingBottle, FeedingFormula:
		return "ml"
	case FeedingSolid:
		return "g"
	default:
		return ""
	}
}

type DiaperType string

const (
	DiaperWet    DiaperType = "wet"
	DiaperSoiled DiaperType = "soiled"
	DiaperBoth   DiaperType = "both"
)

func ParseDiaperType(s string) (DiaperType, error) {
	switch DiaperType(s) {
	case DiaperWet, DiaperSoiled, DiaperBoth:
		return DiaperType(s), nil
	default:
		return "", fmt.Errorf("invalid diaper type: %q", s)
	}
}

func (t DiaperType) DisplayName() string {
	switch t {
	case DiaperWet:
		return "Wet"
	case DiaperSoiled:
		return "Soiled (BM)"
	case DiaperBoth:
		return "Both (Wet and BM)"
	default:
		return string(t)
	}
}

type SleepQuality string

const (
	SleepGood SleepQuality = "good"
	SleepFair SleepQuality = "fair"
	SleepPoor SleepQuality = "poor"
)

func ParseSleepQuality(s string) (SleepQuality, error) {
	switch SleepQuality(s) {
	case SleepGood, SleepFair, SleepPoor:
		return SleepQuality(s), nil
	default:
		return "", fmt.Errorf("invalid sleep quality: %q", s)
	}
}

// FeedingDetail is the kind-specific payload of a feeding log.
type FeedingDetail struct {
	Type        FeedingType `json:"type"`
	Amount      *float64    `json:"amount,omitempty"` // ml or g, per Type.AmountUnit
	DurationMin *int        `json:"duration_min,omitempty"`
}

// AmountString renders the amount with its unit, or "" when absent.
func (d FeedingDetail) AmountString() string {
	if d.Amount == nil {
		return ""
	}
	return fmt.Sprintf("%.0f %s", *d.Amount, d.Type.AmountUnit())
}

// SleepDetail is the kind-specific payload of a sleep log. End is absent
// while the sleep is ongoing.
type SleepDetail struct {
	Start   string        `json:"start"` // HH:MM
	End     *string       `json:"end,omitempty"`
	Quality *SleepQuality `json:"quality,omitempty"`
}

// DurationMin returns the sleep duration in minutes. A sleep that ends at
// an earlier clock time than it starts is assumed to cross midnight.
func (d SleepDetail) DurationMin() (int, bool) {
	if d.End == nil {
		return 0, false
	}
	start, err := time.Parse(constants.TimeFormat, d.Start)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse(constants.TimeFormat, *d.End)
	if err != nil {
		return 0, false
	}
	minutes := int(end.Sub(start).Minutes())
	if minutes < 0 {
		minutes += 24 * 60
	}
	return minutes, true
}

// DurationString renders the sleep duration, or "Ongoing" when the sleep
// has no end time yet.
func (d SleepDetail) DurationString() string {
	minutes, ok := d.DurationMin()
	if !ok {
		return "Ongoing"
	}
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// DiaperDetail is the kind-specific payload of a diaper log.
type DiaperDetail struct {
	Type DiaperType `json:"type"`
}

// DailyLog is one activity record. It is a tagged union: Kind names the
// variant and exactly one of Feeding, Sleep or Diaper is set.
type DailyLog struct {
	ID        uuid.UUID `json:"id"`
	BabyID    uuid.UUID `json:"baby_id"`
	Date      time.Time `json:"date"`
	TimeOfDay string    `json:"time"` // HH:MM
	Kind      LogKind   `json:"kind"`
	Notes     string    `json:"notes,omitempty"`

	Feeding *FeedingDetail `json:"feeding,omitempty"`
	Sleep   *SleepDetail   `json:"sleep,omitempty"`
	Diaper  *DiaperDetail  `json:"diaper,omitempty"`
}

// NewFeedingLog creates a feeding log with a freshly generated id.
func NewFeedingLog(babyID uuid.UUID, date time.Time, timeOfDay string, detail FeedingDetail, notes string) DailyLog {
	return DailyLog{
		ID:        uuid.New(),
		BabyID:    babyID,
		Date:      date,
		TimeOfDay: timeOfDay,
		Kind:      LogKindFeeding,
		Notes:     notes,
		Feeding:   &detail,
	}
}

// NewSleepLog creates a sleep log with a freshly generated id. The log's
// time of day is the sleep's start time.
func NewSleepLog(babyID uuid.UUID, date time.Time, detail SleepDetail, notes string) DailyLog {
	return DailyLog{
		ID:        uuid.New(),
		BabyID:    babyID,
		Date:      date,
		TimeOfDay: detail.Start,
		Kind:      LogKindSleep,
		Notes:     notes,
		Sleep:     &detail,
	}
}

// NewDiaperLog creates a diaper log with a freshly generated id.
func NewDiaperLog(babyID uuid.UUID, date time.Time, timeOfDay string, detail DiaperDetail, notes string) DailyLog {
	return DailyLog{
		ID:        uuid.New(),
		BabyID:    babyID,
		Date:      date,
		TimeOfDay: timeOfDay,
		Kind:      LogKindDiaper,
		Notes:     notes,
		Diaper:    &detail,
	}
}

// HasMatchingDetail reports whether the detail payload set on the log
// matches its Kind tag, with no extra variants set.
func (l DailyLog) HasMatchingDetail() bool {
	switch l.Kind {
	case LogKindFeeding:
		return l.Feeding != nil && l.Sleep == nil && l.Diaper == nil
	case LogKindSleep:
		return l.Sleep != nil && l.Feeding == nil && l.Diaper == nil
	case LogKindDiaper:
		return l.Diaper != nil && l.Feeding == nil && l.Sleep == nil
	default:
		return false
	}
}

// Summary renders a one-line description of the log for list output.
func (l DailyLog) Summary() string {
	switch l.Kind {
	case LogKindFeeding:
		if l.Feeding == nil {
			return "feeding"
		}
		s := l.Feeding.Type.DisplayName()
		if amt := l.Feeding.AmountString(); amt != "" {
			s += ", " + amt
		}
		if l.Feeding.DurationMin != nil {
			s += fmt.Sprintf(", %d min", *l.Feeding.DurationMin)
		}
		return s
	case LogKindSleep:
		if l.Sleep == nil {
			return "sleep"
		}
		s := "Sleep " + l.Sleep.DurationString()
		if l.Sleep.Quality != nil {
			s += fmt.Sprintf(" (%s)", *l.Sleep.Quality)
		}
		return s
	case LogKindDiaper:
		if l.Diaper == nil {
			return "diaper"
		}
		return "Diaper: " + l.Diaper.Type.DisplayName()
	default:
		return string(l.Kind)
	}
}
