// Package repository presents one coherent CRUD surface across all record
// kinds on top of a storage.Provider. It owns the list orderings and
// filtering rules; stores return records in whatever order the backend
// yields them.
package repository

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eherrera/bevia/internal/models"
	"github.com/eherrera/bevia/internal/storage"
)

type Repository struct {
	store storage.Provider
}

func New(store storage.Provider) *Repository {
	return &Repository{store: store}
}

// Store exposes the underlying provider for diagnostics.
func (r *Repository) Store() storage.Provider {
	return r.store
}

// Babies

func (r *Repository) SaveBaby(b models.Baby) bool {
	return r.store.SaveBaby(b)
}

func (r *Repository) Baby(id uuid.UUID) (models.Baby, bool) {
	return r.store.Baby(id)
}

// Babies returns all babies ascending by display name.
func (r *Repository) Babies() []models.Baby {
	babies := r.store.Babies()
	sort.Slice(babies, func(i, j int) bool {
		return babies[i].Name < babies[j].Name
	})
	return babies
}

func (r *Repository) DeleteBaby(id uuid.UUID) bool {
	return r.store.DeleteBaby(id)
}

// FindBaby resolves a baby by exact id, exact name, or unique
// case-insensitive name prefix.
func (r *Repository) FindBaby(ref string) (models.Baby, bool) {
	if id, err := uuid.Parse(ref); err == nil {
		return r.store.Baby(id)
	}

	var match models.Baby
	var found, ambiguous bool
	lower := strings.ToLower(ref)
	for _, b := range r.store.Babies() {
		name := strings.ToLower(b.Name)
		if name == lower {
			return b, true
		}
		if strings.HasPrefix(name, lower) {
			if found {
				ambiguous = true
			}
			match, found = b, true
		}
	}
	if !found || ambiguous {
		return models.Baby{}, false
	}
	return match, true
}

// Growth records

func (r *Repository) SaveGrowthRecord(rec models.GrowthRecord) bool {
	return r.store.SaveGrowthRecord(rec)
}

func (r *Repository) GrowthRecord(babyID, id uuid.UUID) (models.GrowthRecord, bool) {
	return r.store.GrowthRecord(babyID, id)
}

// GrowthRecords returns the baby's growth records newest first.
func (r *Repository) GrowthRecords(babyID uuid.UUID) []models.GrowthRecord {
	records := r.store.GrowthRecords(babyID)
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records
}

func (r *Repository) DeleteGrowthRecord(babyID, id uuid.UUID) bool {
	return r.store.DeleteGrowthRecord(babyID, id)
}

// LatestGrowthRecord returns the most recent growth record, if any.
func (r *Repository) LatestGrowthRecord(babyID uuid.UUID) (models.GrowthRecord, bool) {
	records := r.GrowthRecords(babyID)
	if len(records) == 0 {
		return models.GrowthRecord{}, false
	}
	return records[0], true
}

// Milestones

func (r *Repository) SaveMilestone(m models.Milestone) bool {
	return r.store.SaveMilestone(m)
}

func (r *Repository) Milestone(babyID, id uuid.UUID) (models.Milestone, bool) {
	return r.store.Milestone(babyID, id)
}

// Milestones returns the baby's milestones with achieved ones first,
// achieved ordered newest first and unachieved ordered by name.
func (r *Repository) Milestones(babyID uuid.UUID) []models.Milestone {
	milestones := r.store.Milestones(babyID)
	sort.Slice(milestones, func(i, j int) bool {
		a, b := milestones[i], milestones[j]
		switch {
		case a.IsAchieved() && !b.IsAchieved():
			return true
		case !a.IsAchieved() && b.IsAchieved():
			return false
		case a.IsAchieved():
			return a.AchievedDate.After(*b.AchievedDate)
		default:
			return a.Name < b.Name
		}
	})
	return milestones
}

func (r *Repository) DeleteMilestone(babyID, id uuid.UUID) bool {
	return r.store.DeleteMilestone(babyID, id)
}

// Daily logs

func (r *Repository) SaveLog(l models.DailyLog) bool {
	return r.store.SaveLog(l)
}

func (r *Repository) Log(babyID, id uuid.UUID) (models.DailyLog, bool) {
	return r.store.Log(babyID, id)
}

// Logs returns all of the baby's daily logs, newest first (by date, then
// time of day).
func (r *Repository) Logs(babyID uuid.UUID) []models.DailyLog {
	logs := r.store.Logs(babyID)
	sortLogs(logs)
	return logs
}

// LogsOn returns the baby's logs whose stored date falls on the same
// calendar day as the given date, newest first.
func (r *Repository) LogsOn(babyID uuid.UUID, date time.Time) []models.DailyLog {
	var out []models.DailyLog
	for _, l := range r.store.Logs(babyID) {
		if sameDay(l.Date, date) {
			out = append(out, l)
		}
	}
	sortLogs(out)
	return out
}

func (r *Repository) DeleteLog(babyID, id uuid.UUID) bool {
	return r.store.DeleteLog(babyID, id)
}

func sortLogs(logs []models.DailyLog) {
	sort.Slice(logs, func(i, j int) bool {
		a, b := logs[i], logs[j]
		if !sameDay(a.Date, b.Date) {
			return a.Date.After(b.Date)
		}
		return a.TimeOfDay > b.TimeOfDay
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
