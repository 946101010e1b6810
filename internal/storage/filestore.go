package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eherrera/bevia/internal/models"
)

// FileStore persists each record as its own JSON file under a root
// directory, partitioned per Kind.Dir. It holds no in-memory state: every
// load re-reads from disk. It is designed for single-process, single-writer
// use and does no locking.
type FileStore struct {
	root   string
	logger *zap.Logger
}

// NewFileStore creates a store rooted at the given directory. The
// directory is created by Init, not here.
func NewFileStore(root string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{root: root, logger: logger}
}

func (s *FileStore) Init() error {
	return os.MkdirAll(s.root, 0700)
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) Location() string {
	return s.root
}

func (s *FileStore) path(k Kind, owner, id uuid.UUID) string {
	return filepath.Join(s.root, k.Dir(owner), k.Filename(id))
}

// write serializes v and atomically replaces the record file: the bytes
// go to a temp file in the target directory which is then renamed over the
// final name, so a crash mid-write never leaves a half-written record and
// a failed save leaves the prior file untouched.
func (s *FileStore) write(k Kind, owner, id uuid.UUID, v any) bool {
	path := s.path(k, owner, id)

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		s.logger.Warn("failed to create record directory", zap.String("path", path), zap.Error(err))
		return false
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.logger.Warn("failed to encode record", zap.String("path", path), zap.Error(err))
		return false
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		s.logger.Warn("failed to write record", zap.String("path", tmp), zap.Error(err))
		return false
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		s.logger.Warn("failed to replace record", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// read decodes the record file into v. A missing file and an undecodable
// file both report absence; neither is fatal.
func (s *FileStore) read(k Kind, owner, id uuid.UUID, v any) bool {
	path := s.path(k, owner, id)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read record", zap.String("path", path), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("skipping undecodable record", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// remove deletes the record file. Deleting a record that does not exist
// reports failure and leaves the directory untouched.
func (s *FileStore) remove(k Kind, owner, id uuid.UUID) bool {
	path := s.path(k, owner, id)

	if _, err := os.Stat(path); err != nil {
		return false
	}
	if err := os.Remove(path); err != nil {
		s.logger.Warn("failed to delete record", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// loadAll decodes every record of the kind in the owner's partition.
// A missing directory is treated as empty; files that fail to decode are
// skipped so one corrupt record never hides its siblings.
func loadAll[T any](s *FileStore, k Kind, owner uuid.UUID) []T {
	dir := filepath.Join(s.root, k.Dir(owner))

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to list records", zap.String("dir", dir), zap.Error(err))
		}
		return nil
	}

	var out []T
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, k.Prefix()) || !strings.HasSuffix(name, ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			s.logger.Warn("failed to read record", zap.String("file", name), zap.Error(err))
			continue
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			s.logger.Warn("skipping undecodable record", zap.String("file", name), zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out
}

// Babies

func (s *FileStore) SaveBaby(b models.Baby) bool {
	return s.write(KindBaby, uuid.Nil, b.ID, b)
}

func (s *FileStore) Baby(id uuid.UUID) (models.Baby, bool) {
	var b models.Baby
	ok := s.read(KindBaby, uuid.Nil, id, &b)
	return b, ok
}

func (s *FileStore) Babies() []models.Baby {
	return loadAll[models.Baby](s, KindBaby, uuid.Nil)
}

func (s *FileStore) DeleteBaby(id uuid.UUID) bool {
	return s.remove(KindBaby, uuid.Nil, id)
}

// Growth records

func (s *FileStore) SaveGrowthRecord(r models.GrowthRecord) bool {
	return s.write(KindGrowth, r.BabyID, r.ID, r)
}

func (s *FileStore) GrowthRecord(babyID, id uuid.UUID) (models.GrowthRecord, bool) {
	var r models.GrowthRecord
	ok := s.read(KindGrowth, babyID, id, &r)
	return r, ok
}

func (s *FileStore) GrowthRecords(babyID uuid.UUID) []models.GrowthRecord {
	return loadAll[models.GrowthRecord](s, KindGrowth, babyID)
}

func (s *FileStore) DeleteGrowthRecord(babyID, id uuid.UUID) bool {
	return s.remove(KindGrowth, babyID, id)
}

// Milestones

func (s *FileStore) SaveMilestone(m models.Milestone) bool {
	return s.write(KindMilestone, m.BabyID, m.ID, m)
}

func (s *FileStore) Milestone(babyID, id uuid.UUID) (models.Milestone, bool) {
	var m models.Milestone
	ok := s.read(KindMilestone, babyID, id, &m)
	return m, ok
}

func (s *FileStore) Milestones(babyID uuid.UUID) []models.Milestone {
	return loadAll[models.Milestone](s, KindMilestone, babyID)
}

func (s *FileStore) DeleteMilestone(babyID, id uuid.UUID) bool {
	return s.remove(KindMilestone, babyID, id)
}

// Daily logs

func (s *FileStore) SaveLog(l models.DailyLog) bool {
	return s.write(KindLog, l.BabyID, l.ID, l)
}

func (s *FileStore) Log(babyID, id uuid.UUID) (models.DailyLog, bool) {
	var l models.DailyLog
	ok := s.read(KindLog, babyID, id, &l)
	return l, ok
}

func (s *FileStore) Logs(babyID uuid.UUID) []models.DailyLog {
	return loadAll[models.DailyLog](s, KindLog, babyID)
}

func (s *FileStore) DeleteLog(babyID, id uuid.UUID) bool {
	return s.remove(KindLog, babyID, id)
}
