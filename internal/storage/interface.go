package storage

import (
	"github.com/google/uuid"

	"github.com/eherrera/bevia/internal/models"
)

// Provider is the storage surface shared by the file-backed and SQLite
// implementations. Every save writes a complete replacement of the record;
// loads report absence (not errors) when a record is missing or
// undecodable; list order is unspecified and owned by the repository.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error
	Location() string

	// Babies
	SaveBaby(models.Baby) bool
	Baby(id uuid.UUID) (models.Baby, bool)
	Babies() []models.Baby
	DeleteBaby(id uuid.UUID) bool

	// Growth records
	SaveGrowthRecord(models.GrowthRecord) bool
	GrowthRecord(babyID, id uuid.UUID) (models.GrowthRecord, bool)
	GrowthRecords(babyID uuid.UUID) []models.GrowthRecord
	DeleteGrowthRecord(babyID, id uuid.UUID) bool

	// Milestones
	SaveMilestone(models.Milestone) bool
	Milestone(babyID, id uuid.UUID) (models.Milestone, bool)
	Milestones(babyID uuid.UUID) []models.Milestone
	DeleteMilestone(babyID, id uuid.UUID) bool

	// Daily logs
	SaveLog(models.DailyLog) bool
	Log(babyID, id uuid.UUID) (models.DailyLog, bool)
	Logs(babyID uuid.UUID) []models.DailyLog
	DeleteLog(babyID, id uuid.UUID) bool
}
