package cli

import (
	"fmt"

	"github.com/eherrera/bevia/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.DataDir)
	path, err := manager.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.DataDir)
	backups, err := manager.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}

	fmt.Printf("Backups in %s:\n", manager.GetBackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %.1f KB\n", b.Path, float64(b.Size)/1024)
	}
	return nil
}
