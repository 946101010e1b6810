package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/eherrera/bevia/internal/models"
)

func setupTestFileStore(t *testing.T) *FileStore {
	store := NewFileStore(t.TempDir(), nil)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return store
}

func testDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestBabyRoundTrip(t *testing.T) {
	store := setupTestFileStore(t)

	baby := models.NewBaby("Maya", testDate(t, "2024-01-15"), "female", "first child")
	if !store.SaveBaby(baby) {
		t.Fatal("failed to save baby")
	}

	got, ok := store.Baby(baby.ID)
	if !ok {
		t.Fatal("saved baby not found")
	}
	if got.ID != baby.ID || got.Name != baby.Name || got.Gender != baby.Gender || got.Notes != baby.Notes {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, baby)
	}
	if !got.Birthdate.Equal(baby.Birthdate) {
		t.Errorf("birthdate mismatch: got %v, want %v", got.Birthdate, baby.Birthdate)
	}
}

func TestGrowthRecordRoundTripOptionalFields(t *testing.T) {
	store := setupTestFileStore(t)

	babyID := uuid.New()
	weight := 5.2
	record := models.NewGrowthRecord(babyID, testDate(t, "2024-06-01"), &weight, nil, nil, "")
	if !store.SaveGrowthRecord(record) {
		t.Fatal("failed to save growth record")
	}

	got, ok := store.GrowthRecord(babyID, record.ID)
	if !ok {
		t.Fatal("saved record not found")
	}
	if got.Weight == nil || *got.Weight != weight {
		t.Errorf("weight mismatch: got %v", got.Weight)
	}
	if got.Height != nil || got.Head != nil {
		t.Errorf("absent measurements should stay absent: got height=%v head=%v", got.Height, got.Head)
	}
}

func TestGrowthRecordPartitionedByOwner(t *testing.T) {
	store := setupTestFileStore(t)

	babyID := uuid.New()
	weight := 4.0
	record := models.NewGrowthRecord(babyID, testDate(t, "2024-03-01"), &weight, nil, nil, "")
	if !store.SaveGrowthRecord(record) {
		t.Fatal("failed to save growth record")
	}

	want := filepath.Join(store.Location(), KindGrowth.Dir(babyID), KindGrowth.Filename(record.ID))
	if _, err := os.Stat(want); err != nil {
		t.Errorf("record not written to owner partition %s: %v", want, err)
	}

	// Another baby's partition stays empty
	if records := store.GrowthRecords(uuid.New()); len(records) != 0 {
		t.Errorf("expected empty partition for other baby, got %d records", len(records))
	}
}

func TestLogRoundTripKeepsSingleDetail(t *testing.T) {
	store := setupTestFileStore(t)

	babyID := uuid.New()
	amount := 120.0
	log := models.NewFeedingLog(babyID, testDate(t, "2024-07-01"), "08:30",
		models.FeedingDetail{Type: models.FeedingBottle, Amount: &amount}, "after bath")
	if !store.SaveLog(log) {
		t.Fatal("failed to save log")
	}

	got, ok := store.Log(babyID, log.ID)
	if !ok {
		t.Fatal("saved log not found")
	}
	if got.Kind != models.LogKindFeeding {
		t.Errorf("kind = %q, want feeding", got.Kind)
	}
	if got.Feeding == nil || got.Feeding.Type != models.FeedingBottle || *got.Feeding.Amount != amount {
		t.Errorf("feeding detail mismatch: %+v", got.Feeding)
	}
	if got.Sleep != nil || got.Diaper != nil {
		t.Error("unused detail variants must stay nil")
	}
}

func TestDeleteNonexistentLeavesSiblings(t *testing.T) {
	store := setupTestFileStore(t)

	babyID := uuid.New()
	m := models.NewMilestone(babyID, "First smile", models.CategorySocial, nil, "")
	if !store.SaveMilestone(m) {
		t.Fatal("failed to save milestone")
	}

	if store.DeleteMilestone(babyID, uuid.New()) {
		t.Error("deleting a nonexistent milestone should report failure")
	}
	if got := store.Milestones(babyID); len(got) != 1 {
		t.Errorf("sibling records disturbed: %d milestones left", len(got))
	}

	if !store.DeleteMilestone(babyID, m.ID) {
		t.Error("deleting an existing milestone should succeed")
	}
	if store.DeleteMilestone(babyID, m.ID) {
		t.Error("second delete of the same id should report failure")
	}
}

func TestListingSkipsCorruptFiles(t *testing.T) {
	store := setupTestFileStore(t)

	babyID := uuid.New()
	m := models.NewMilestone(babyID, "Rolls over", models.CategoryPhysical, nil, "")
	if !store.SaveMilestone(m) {
		t.Fatal("failed to save milestone")
	}

	dir := filepath.Join(store.Location(), KindMilestone.Dir(babyID))
	corrupt := filepath.Join(dir, KindMilestone.Filename(uuid.New()))
	if err := os.WriteFile(corrupt, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to plant corrupt file: %v", err)
	}

	got := store.Milestones(babyID)
	if len(got) != 1 {
		t.Fatalf("expected corrupt file to be skipped, got %d milestones", len(got))
	}
	if got[0].ID != m.ID {
		t.Errorf("valid sibling lost: got %s", got[0].ID)
	}
}

func TestListingIgnoresForeignFiles(t *testing.T) {
	store := setupTestFileStore(t)

	baby := models.NewBaby("Noor", testDate(t, "2024-02-02"), "", "")
	if !store.SaveBaby(baby) {
		t.Fatal("failed to save baby")
	}

	// Partition directories and unrelated files share the store root with
	// baby records; listings must not pick them up.
	if err := os.WriteFile(filepath.Join(store.Location(), "readme.txt"), []byte("hi"), 0600); err != nil {
		t.Fatal(err)
	}
	weight := 4.5
	rec := models.NewGrowthRecord(baby.ID, testDate(t, "2024-04-01"), &weight, nil, nil, "")
	if !store.SaveGrowthRecord(rec) {
		t.Fatal("failed to save growth record")
	}

	babies := store.Babies()
	if len(babies) != 1 {
		t.Errorf("expected 1 baby, got %d", len(babies))
	}
}

func TestAbsentPartitionIsEmpty(t *testing.T) {
	store := setupTestFileStore(t)

	if logs := store.Logs(uuid.New()); len(logs) != 0 {
		t.Errorf("expected no logs for unknown baby, got %d", len(logs))
	}
	if _, ok := store.Baby(uuid.New()); ok {
		t.Error("unknown baby id should report absence")
	}
}

func TestSaveReplacesExistingRecord(t *testing.T) {
	store := setupTestFileStore(t)

	baby := models.NewBaby("Ada", testDate(t, "2024-05-05"), "female", "")
	if !store.SaveBaby(baby) {
		t.Fatal("failed to save baby")
	}

	baby.Notes = "sleeps through the night now"
	if !store.SaveBaby(baby) {
		t.Fatal("failed to re-save baby")
	}

	got, ok := store.Baby(baby.ID)
	if !ok {
		t.Fatal("baby not found after update")
	}
	if got.Notes != baby.Notes {
		t.Errorf("notes = %q, want %q", got.Notes, baby.Notes)
	}
	if len(store.Babies()) != 1 {
		t.Error("re-saving must replace, not duplicate")
	}
}
