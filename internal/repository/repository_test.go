package repository

import (
	"testing"
	"time"

	"github.com/eherrera/bevia/internal/models"
	"github.com/eherrera/bevia/internal/storage"
)

func setupTestRepo(t *testing.T) *Repository {
	store := storage.NewFileStore(t.TempDir(), nil)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return New(store)
}

func testDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestBabiesSortedByName(t *testing.T) {
	repo := setupTestRepo(t)

	zoe := models.NewBaby("Zoe", testDate(t, "2024-01-01"), "female", "")
	amir := models.NewBaby("Amir", testDate(t, "2024-02-01"), "male", "")
	if !repo.SaveBaby(zoe) || !repo.SaveBaby(amir) {
		t.Fatal("failed to save babies")
	}

	babies := repo.Babies()
	if len(babies) != 2 {
		t.Fatalf("expected 2 babies, got %d", len(babies))
	}
	if babies[0].Name != "Amir" || babies[1].Name != "Zoe" {
		t.Errorf("wrong order: %s, %s", babies[0].Name, babies[1].Name)
	}
}

func TestFindBaby(t *testing.T) {
	repo := setupTestRepo(t)

	maya := models.NewBaby("Maya", testDate(t, "2024-01-01"), "", "")
	marco := models.NewBaby("Marco", testDate(t, "2024-02-01"), "", "")
	if !repo.SaveBaby(maya) || !repo.SaveBaby(marco) {
		t.Fatal("failed to save babies")
	}

	if got, ok := repo.FindBaby(maya.ID.String()); !ok || got.ID != maya.ID {
		t.Error("lookup by id failed")
	}
	if got, ok := repo.FindBaby("maya"); !ok || got.ID != maya.ID {
		t.Error("lookup by case-insensitive name failed")
	}
	if got, ok := repo.FindBaby("marc"); !ok || got.ID != marco.ID {
		t.Error("lookup by unique prefix failed")
	}
	if _, ok := repo.FindBaby("ma"); ok {
		t.Error("ambiguous prefix must not resolve")
	}
	if _, ok := repo.FindBaby("nadia"); ok {
		t.Error("unknown name must not resolve")
	}
}

func TestGrowthRecordsNewestFirst(t *testing.T) {
	repo := setupTestRepo(t)

	baby := models.NewBaby("Maya", testDate(t, "2024-01-01"), "female", "")
	if !repo.SaveBaby(baby) {
		t.Fatal("failed to save baby")
	}

	w1, w2, w3 := 4.1, 5.3, 6.2
	old := models.NewGrowthRecord(baby.ID, testDate(t, "2024-02-01"), &w1, nil, nil, "")
	mid := models.NewGrowthRecord(baby.ID, testDate(t, "2024-04-01"), &w2, nil, nil, "")
	recent := models.NewGrowthRecord(baby.ID, testDate(t, "2024-06-01"), &w3, nil, nil, "")
	for _, r := range []models.GrowthRecord{mid, recent, old} {
		if !repo.SaveGrowthRecord(r) {
			t.Fatal("failed to save growth record")
		}
	}

	records := repo.GrowthRecords(baby.ID)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].ID != recent.ID || records[2].ID != old.ID {
		t.Error("records not sorted newest first")
	}

	latest, ok := repo.LatestGrowthRecord(baby.ID)
	if !ok || latest.ID != recent.ID {
		t.Error("LatestGrowthRecord should return the newest record")
	}
}

func TestMilestoneOrdering(t *testing.T) {
	repo := setupTestRepo(t)

	baby := models.NewBaby("Maya", testDate(t, "2024-01-01"), "", "")
	if !repo.SaveBaby(baby) {
		t.Fatal("failed to save baby")
	}

	unachievedB := models.NewMilestone(baby.ID, "Walks", models.CategoryPhysical, nil, "")
	unachievedA := models.NewMilestone(baby.ID, "Claps", models.CategorySocial, nil, "")

	earlyDate := testDate(t, "2024-01-10")
	lateDate := testDate(t, "2024-05-10")
	achievedEarly := models.NewMilestone(baby.ID, "First smile", models.CategorySocial, nil, "")
	achievedEarly.AchievedDate = &earlyDate
	achievedLate := models.NewMilestone(baby.ID, "Rolls over", models.CategoryPhysical, nil, "")
	achievedLate.AchievedDate = &lateDate

	for _, m := range []models.Milestone{unachievedB, achievedEarly, unachievedA, achievedLate} {
		if !repo.SaveMilestone(m) {
			t.Fatal("failed to save milestone")
		}
	}

	milestones := repo.Milestones(baby.ID)
	if len(milestones) != 4 {
		t.Fatalf("expected 4 milestones, got %d", len(milestones))
	}

	wantOrder := []string{"Rolls over", "First smile", "Claps", "Walks"}
	for i, want := range wantOrder {
		if milestones[i].Name != want {
			t.Errorf("position %d: got %q, want %q", i, milestones[i].Name, want)
		}
	}
}

func TestLogsNewestFirstAndDateFilter(t *testing.T) {
	repo := setupTestRepo(t)

	baby := models.NewBaby("Maya", testDate(t, "2024-01-01"), "", "")
	if !repo.SaveBaby(baby) {
		t.Fatal("failed to save baby")
	}

	day1 := testDate(t, "2024-07-01")
	day2 := testDate(t, "2024-07-02")

	morning := models.NewDiaperLog(baby.ID, day1, "07:00", models.DiaperDetail{Type: models.DiaperWet}, "")
	evening := models.NewDiaperLog(baby.ID, day1, "19:00", models.DiaperDetail{Type: models.DiaperBoth}, "")
	nextDay := models.NewFeedingLog(baby.ID, day2, "08:00",
		models.FeedingDetail{Type: models.FeedingBreast}, "")

	for _, l := range []models.DailyLog{morning, nextDay, evening} {
		if !repo.SaveLog(l) {
			t.Fatal("failed to save log")
		}
	}

	logs := repo.Logs(baby.ID)
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}
	if logs[0].ID != nextDay.ID || logs[1].ID != evening.ID || logs[2].ID != morning.ID {
		t.Error("logs not sorted by date then time, newest first")
	}

	filtered := repo.LogsOn(baby.ID, day1)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 logs on day1, got %d", len(filtered))
	}
	for _, l := range filtered {
		if !l.Date.Equal(day1) {
			t.Errorf("log %s leaked into date filter", l.ID)
		}
	}
}

func TestDeleteBabyKeepsOthers(t *testing.T) {
	repo := setupTestRepo(t)

	a := models.NewBaby("Ana", testDate(t, "2024-01-01"), "", "")
	b := models.NewBaby("Ben", testDate(t, "2024-02-01"), "", "")
	if !repo.SaveBaby(a) || !repo.SaveBaby(b) {
		t.Fatal("failed to save babies")
	}

	if !repo.DeleteBaby(a.ID) {
		t.Error("deleting an existing baby should succeed")
	}
	if repo.DeleteBaby(a.ID) {
		t.Error("second delete should report failure")
	}

	babies := repo.Babies()
	if len(babies) != 1 || babies[0].ID != b.ID {
		t.Errorf("unexpected remaining babies: %+v", babies)
	}
}
