package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/eherrera/bevia/internal/models"
)

// SQLiteStore is the alternative Provider, selected when the storage path
// ends in .db. It keeps the same contract as FileStore: full-record
// replacement on save, boolean outcomes, unspecified list order.
type SQLiteStore struct {
	path   string
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLiteStore(path string, logger *zap.Logger) *SQLiteStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLiteStore{path: path, logger: logger}
}

const schema = `
CREATE TABLE IF NOT EXISTS babies (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	birthdate TEXT NOT NULL,
	gender    TEXT NOT NULL DEFAULT '',
	notes     TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS growth_records (
	id      TEXT PRIMARY KEY,
	baby_id TEXT NOT NULL,
	date    TEXT NOT NULL,
	weight  REAL,
	height  REAL,
	head    REAL,
	notes   TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_growth_baby ON growth_records(baby_id);

CREATE TABLE IF NOT EXISTS milestones (
	id            TEXT PRIMARY KEY,
	baby_id       TEXT NOT NULL,
	name          TEXT NOT NULL,
	category      TEXT NOT NULL,
	achieved_date TEXT,
	range_min     INTEGER,
	range_max     INTEGER,
	notes         TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_milestone_baby ON milestones(baby_id);

CREATE TABLE IF NOT EXISTS daily_logs (
	id      TEXT PRIMARY KEY,
	baby_id TEXT NOT NULL,
	date    TEXT NOT NULL,
	time    TEXT NOT NULL,
	kind    TEXT NOT NULL,
	notes   TEXT NOT NULL DEFAULT '',
	detail  TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_log_baby ON daily_logs(baby_id);
`

func (s *SQLiteStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Location() string {
	return s.path
}

func (s *SQLiteStore) exec(query string, args ...any) bool {
	if s.db == nil {
		s.logger.Warn("store not initialized")
		return false
	}
	if _, err := s.db.Exec(query, args...); err != nil {
		s.logger.Warn("statement failed", zap.Error(err))
		return false
	}
	return true
}

// execExisting runs a delete-style statement and reports failure when no
// row was affected.
func (s *SQLiteStore) execExisting(query string, args ...any) bool {
	if s.db == nil {
		s.logger.Warn("store not initialized")
		return false
	}
	res, err := s.db.Exec(query, args...)
	if err != nil {
		s.logger.Warn("statement failed", zap.Error(err))
		return false
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false
	}
	return n > 0
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// Babies

func (s *SQLiteStore) SaveBaby(b models.Baby) bool {
	return s.exec(`INSERT OR REPLACE INTO babies (id, name, birthdate, gender, notes) VALUES (?, ?, ?, ?, ?)`,
		b.ID.String(), b.Name, b.Birthdate.Format(time.RFC3339), b.Gender, b.Notes)
}

func (s *SQLiteStore) Baby(id uuid.UUID) (models.Baby, bool) {
	if s.db == nil {
		return models.Baby{}, false
	}
	var b models.Baby
	var rawID, birthdate string
	err := s.db.QueryRow(`SELECT id, name, birthdate, gender, notes FROM babies WHERE id = ?`, id.String()).
		Scan(&rawID, &b.Name, &birthdate, &b.Gender, &b.Notes)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Warn("failed to load baby", zap.Error(err))
		}
		return models.Baby{}, false
	}
	b.ID, err = uuid.Parse(rawID)
	if err != nil {
		return models.Baby{}, false
	}
	b.Birthdate = parseTime(birthdate)
	return b, true
}

func (s *SQLiteStore) Babies() []models.Baby {
	if s.db == nil {
		return nil
	}
	rows, err := s.db.Query(`SELECT id, name, birthdate, gender, notes FROM babies`)
	if err != nil {
		s.logger.Warn("failed to list babies", zap.Error(err))
		return nil
	}
	defer rows.Close()

	var out []models.Baby
	for rows.Next() {
		var b models.Baby
		var rawID, birthdate string
		if err := rows.Scan(&rawID, &b.Name, &birthdate, &b.Gender, &b.Notes); err != nil {
			s.logger.Warn("skipping unreadable baby row", zap.Error(err))
			continue
		}
		id, err := uuid.Parse(rawID)
		if err != nil {
			continue
		}
		b.ID = id
		b.Birthdate = parseTime(birthdate)
		out = append(out, b)
	}
	return out
}

func (s *SQLiteStore) DeleteBaby(id uuid.UUID) bool {
	return s.execExisting(`DELETE FROM babies WHERE id = ?`, id.String())
}

// Growth records

func (s *SQLiteStore) SaveGrowthRecord(r models.GrowthRecord) bool {
	return s.exec(`INSERT OR REPLACE INTO growth_records (id, baby_id, date, weight, height, head, notes) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.BabyID.String(), r.Date.Format(time.RFC3339),
		nullFloat(r.Weight), nullFloat(r.Height), nullFloat(r.Head), r.Notes)
}

func (s *SQLiteStore) scanGrowth(scan func(dest ...any) error) (models.GrowthRecord, error) {
	var r models.GrowthRecord
	var rawID, rawBaby, date string
	var weight, height, head sql.NullFloat64
	if err := scan(&rawID, &rawBaby, &date, &weight, &height, &head, &r.Notes); err != nil {
		return r, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return r, err
	}
	babyID, err := uuid.Parse(rawBaby)
	if err != nil {
		return r, err
	}
	r.ID, r.BabyID, r.Date = id, babyID, parseTime(date)
	if weight.Valid {
		r.Weight = &weight.Float64
	}
	if height.Valid {
		r.Height = &height.Float64
	}
	if head.Valid {
		r.Head = &head.Float64
	}
	return r, nil
}

func (s *SQLiteStore) GrowthRecord(babyID, id uuid.UUID) (models.GrowthRecord, bool) {
	if s.db == nil {
		return models.GrowthRecord{}, false
	}
	row := s.db.QueryRow(`SELECT id, baby_id, date, weight, height, head, notes FROM growth_records WHERE id = ? AND baby_id = ?`,
		id.String(), babyID.String())
	r, err := s.scanGrowth(row.Scan)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Warn("failed to load growth record", zap.Error(err))
		}
		return models.GrowthRecord{}, false
	}
	return r, true
}

func (s *SQLiteStore) GrowthRecords(babyID uuid.UUID) []models.GrowthRecord {
	if s.db == nil {
		return nil
	}
	rows, err := s.db.Query(`SELECT id, baby_id, date, weight, height, head, notes FROM growth_records WHERE baby_id = ?`, babyID.String())
	if err != nil {
		s.logger.Warn("failed to list growth records", zap.Error(err))
		return nil
	}
	defer rows.Close()

	var out []models.GrowthRecord
	for rows.Next() {
		r, err := s.scanGrowth(rows.Scan)
		if err != nil {
			s.logger.Warn("skipping unreadable growth row", zap.Error(err))
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *SQLiteStore) DeleteGrowthRecord(babyID, id uuid.UUID) bool {
	return s.execExisting(`DELETE FROM growth_records WHERE id = ? AND baby_id = ?`, id.String(), babyID.String())
}

// Milestones

func (s *SQLiteStore) SaveMilestone(m models.Milestone) bool {
	var rangeMin, rangeMax any
	if m.ExpectedRange != nil {
		rangeMin, rangeMax = m.ExpectedRange.Min, m.ExpectedRange.Max
	}
	return s.exec(`INSERT OR REPLACE INTO milestones (id, baby_id, name, category, achieved_date, range_min, range_max, notes) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID.String(), m.BabyID.String(), m.Name, string(m.Category),
		nullTime(m.AchievedDate), rangeMin, rangeMax, m.Notes)
}

func (s *SQLiteStore) scanMilestone(scan func(dest ...any) error) (models.Milestone, error) {
	var m models.Milestone
	var rawID, rawBaby, category string
	var achieved sql.NullString
	var rangeMin, rangeMax sql.NullInt64
	if err := scan(&rawID, &rawBaby, &m.Name, &category, &achieved, &rangeMin, &rangeMax, &m.Notes); err != nil {
		return m, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return m, err
	}
	babyID, err := uuid.Parse(rawBaby)
	if err != nil {
		return m, err
	}
	m.ID, m.BabyID, m.Category = id, babyID, models.MilestoneCategory(category)
	if achieved.Valid {
		t := parseTime(achieved.String)
		m.AchievedDate = &t
	}
	if rangeMin.Valid && rangeMax.Valid {
		m.ExpectedRange = &models.AgeRange{Min: int(rangeMin.Int64), Max: int(rangeMax.Int64)}
	}
	return m, nil
}

func (s *SQLiteStore) Milestone(babyID, id uuid.UUID) (models.Milestone, bool) {
	if s.db == nil {
		return models.Milestone{}, false
	}
	row := s.db.QueryRow(`SELECT id, baby_id, name, category, achieved_date, range_min, range_max, notes FROM milestones WHERE id = ? AND baby_id = ?`,
		id.String(), babyID.String())
	m, err := s.scanMilestone(row.Scan)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Warn("failed to load milestone", zap.Error(err))
		}
		return models.Milestone{}, false
	}
	return m, true
}

func (s *SQLiteStore) Milestones(babyID uuid.UUID) []models.Milestone {
	if s.db == nil {
		return nil
	}
	rows, err := s.db.Query(`SELECT id, baby_id, name, category, achieved_date, range_min, range_max, notes FROM milestones WHERE baby_id = ?`, babyID.String())
	if err != nil {
		s.logger.Warn("failed to list milestones", zap.Error(err))
		return nil
	}
	defer rows.Close()

	var out []models.Milestone
	for rows.Next() {
		m, err := s.scanMilestone(rows.Scan)
		if err != nil {
			s.logger.Warn("skipping unreadable milestone row", zap.Error(err))
			continue
		}
		out = append(out, m)
	}
	return out
}

func (s *SQLiteStore) DeleteMilestone(babyID, id uuid.UUID) bool {
	return s.execExisting(`DELETE FROM milestones WHERE id = ? AND baby_id = ?`, id.String(), babyID.String())
}

// Daily logs. The variant payload is stored as a JSON column so the three
// log kinds share one table.

type logDetail struct {
	Feeding *models.FeedingDetail `json:"feeding,omitempty"`
	Sleep   *models.SleepDetail   `json:"sleep,omitempty"`
	Diaper  *models.DiaperDetail  `json:"diaper,omitempty"`
}

func (s *SQLiteStore) SaveLog(l models.DailyLog) bool {
	detail, err := json.Marshal(logDetail{Feeding: l.Feeding, Sleep: l.Sleep, Diaper: l.Diaper})
	if err != nil {
		s.logger.Warn("failed to encode log detail", zap.Error(err))
		return false
	}
	return s.exec(`INSERT OR REPLACE INTO daily_logs (id, baby_id, date, time, kind, notes, detail) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.ID.String(), l.BabyID.String(), l.Date.Format(time.RFC3339), l.TimeOfDay, string(l.Kind), l.Notes, string(detail))
}

func (s *SQLiteStore) scanLog(scan func(dest ...any) error) (models.DailyLog, error) {
	var l models.DailyLog
	var rawID, rawBaby, date, kind, rawDetail string
	if err := scan(&rawID, &rawBaby, &date, &l.TimeOfDay, &kind, &l.Notes, &rawDetail); err != nil {
		return l, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return l, err
	}
	babyID, err := uuid.Parse(rawBaby)
	if err != nil {
		return l, err
	}
	var detail logDetail
	if err := json.Unmarshal([]byte(rawDetail), &detail); err != nil {
		return l, err
	}
	l.ID, l.BabyID, l.Date, l.Kind = id, babyID, parseTime(date), models.LogKind(kind)
	l.Feeding, l.Sleep, l.Diaper = detail.Feeding, detail.Sleep, detail.Diaper
	return l, nil
}

func (s *SQLiteStore) Log(babyID, id uuid.UUID) (models.DailyLog, bool) {
	if s.db == nil {
		return models.DailyLog{}, false
	}
	row := s.db.QueryRow(`SELECT id, baby_id, date, time, kind, notes, detail FROM daily_logs WHERE id = ? AND baby_id = ?`,
		id.String(), babyID.String())
	l, err := s.scanLog(row.Scan)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Warn("failed to load log", zap.Error(err))
		}
		return models.DailyLog{}, false
	}
	return l, true
}

func (s *SQLiteStore) Logs(babyID uuid.UUID) []models.DailyLog {
	if s.db == nil {
		return nil
	}
	rows, err := s.db.Query(`SELECT id, baby_id, date, time, kind, notes, detail FROM daily_logs WHERE baby_id = ?`, babyID.String())
	if err != nil {
		s.logger.Warn("failed to list logs", zap.Error(err))
		return nil
	}
	defer rows.Close()

	var out []models.DailyLog
	for rows.Next() {
		l, err := s.scanLog(rows.Scan)
		if err != nil {
			s.logger.Warn("skipping unreadable log row", zap.Error(err))
			continue
		}
		out = append(out, l)
	}
	return out
}

func (s *SQLiteStore) DeleteLog(babyID, id uuid.UUID) bool {
	return s.execExisting(`DELETE FROM daily_logs WHERE id = ? AND baby_id = ?`, id.String(), babyID.String())
}
