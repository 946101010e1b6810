package backup

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setupDataDir(t *testing.T) string {
	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, "baby_test.json"), []byte(`{"name":"Maya"}`), 0600); err != nil {
		t.Fatalf("failed to seed data dir: %v", err)
	}
	sub := filepath.Join(dataDir, "baby_x_growth")
	if err := os.MkdirAll(sub, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "growth_test.json"), []byte(`{}`), 0600); err != nil {
		t.Fatal(err)
	}
	return dataDir
}

func TestCreateBackupArchivesRecords(t *testing.T) {
	dataDir := setupDataDir(t)
	manager := NewManager(dataDir)

	path, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), BackupFilePrefix) || !strings.HasSuffix(path, BackupFileSuffix) {
		t.Errorf("unexpected backup name: %s", path)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("backup is not a readable zip: %v", err)
	}
	defer r.Close()

	names := make(map[string]bool)
	for _, f := range r.File {
		names[f.Name] = true
	}
	if !names["baby_test.json"] {
		t.Error("root record missing from archive")
	}
	if !names["baby_x_growth/growth_test.json"] {
		t.Error("partitioned record missing from archive")
	}
}

func TestCreateBackupExcludesBackupDir(t *testing.T) {
	dataDir := setupDataDir(t)
	manager := NewManager(dataDir)

	if _, err := manager.CreateBackup(); err != nil {
		t.Fatalf("first backup failed: %v", err)
	}
	second, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("second backup failed: %v", err)
	}

	r, err := zip.OpenReader(second)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	for _, f := range r.File {
		if strings.HasPrefix(f.Name, BackupDirName+"/") {
			t.Errorf("backup archive contains earlier backups: %s", f.Name)
		}
	}
}

func TestCreateBackupGeneratesUniqueNames(t *testing.T) {
	dataDir := setupDataDir(t)
	manager := NewManager(dataDir)

	first, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("first backup failed: %v", err)
	}
	second, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("second backup failed: %v", err)
	}
	if first == second {
		t.Error("two backups in the same minute must not collide")
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	dataDir := setupDataDir(t)
	manager := NewManager(dataDir)
	if err := os.MkdirAll(manager.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	old := filepath.Join(manager.GetBackupDir(), BackupFilePrefix+"20240101-0900"+BackupFileSuffix)
	recent := filepath.Join(manager.GetBackupDir(), BackupFilePrefix+"20240601-0900"+BackupFileSuffix)
	for _, p := range []string{old, recent} {
		if err := os.WriteFile(p, []byte("zip"), 0600); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	if backups[0].Path != recent {
		t.Errorf("newest backup should come first, got %s", backups[0].Path)
	}
}

func TestRotationKeepsRetentionLimit(t *testing.T) {
	dataDir := setupDataDir(t)
	manager := NewManager(dataDir)
	if err := os.MkdirAll(manager.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	// Seed more stale backups than the retention limit allows
	base := time.Now().Add(-30 * 24 * time.Hour)
	for i := 0; i < MaxBackups+3; i++ {
		name := BackupFilePrefix + base.Add(time.Duration(i)*time.Hour).Format("20060102-150405") + BackupFileSuffix
		p := filepath.Join(manager.GetBackupDir(), name)
		if err := os.WriteFile(p, []byte("zip"), 0600); err != nil {
			t.Fatal(err)
		}
		mod := base.Add(time.Duration(i) * time.Hour)
		if err := os.Chtimes(p, mod, mod); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := manager.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) > MaxBackups {
		t.Errorf("rotation left %d backups, limit is %d", len(backups), MaxBackups)
	}
	// The fresh backup must survive rotation
	if time.Since(backups[0].Timestamp) > time.Minute {
		t.Error("newest backup was rotated away")
	}
}
