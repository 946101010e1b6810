package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/eherrera/bevia/internal/cli"
	"github.com/eherrera/bevia/internal/constants"
	"github.com/eherrera/bevia/internal/growth"
	"github.com/eherrera/bevia/internal/repository"
	"github.com/eherrera/bevia/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	DataDir string `help:"Data directory." type:"path" default:"~/Documents/${data_dir_name}"`
	Db      string `help:"Store records in a SQLite database at this path instead of JSON files." type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize bevia storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Doctor cli.DoctorCmd `cmd:"" help:"Run storage health checks."`

	Baby struct {
		Add    cli.BabyAddCmd    `cmd:"" help:"Add a baby."`
		List   cli.BabyListCmd   `cmd:"" help:"List all babies."`
		Show   cli.BabyShowCmd   `cmd:"" help:"Show a baby's details."`
		Delete cli.BabyDeleteCmd `cmd:"" help:"Delete a baby."`
	} `cmd:"" help:"Manage babies."`

	Growth struct {
		Add        cli.GrowthAddCmd        `cmd:"" help:"Record a growth measurement."`
		List       cli.GrowthListCmd       `cmd:"" help:"List growth records."`
		Delete     cli.GrowthDeleteCmd     `cmd:"" help:"Delete a growth record."`
		Percentile cli.GrowthPercentileCmd `cmd:"" help:"Estimate the latest measurement's percentile."`
		Chart      cli.GrowthChartCmd      `cmd:"" help:"Print reference percentile curves."`
	} `cmd:"" help:"Track growth measurements."`

	Milestone struct {
		Add     cli.MilestoneAddCmd     `cmd:"" help:"Add a milestone."`
		List    cli.MilestoneListCmd    `cmd:"" help:"List milestones."`
		Achieve cli.MilestoneAchieveCmd `cmd:"" help:"Mark a milestone achieved."`
		Delete  cli.MilestoneDeleteCmd  `cmd:"" help:"Delete a milestone."`
	} `cmd:"" help:"Track developmental milestones."`

	Log struct {
		Feeding cli.LogFeedingCmd `cmd:"" help:"Log a feeding."`
		Sleep   cli.LogSleepCmd   `cmd:"" help:"Log a sleep session."`
		Diaper  cli.LogDiaperCmd  `cmd:"" help:"Log a diaper change."`
		List    cli.LogListCmd    `cmd:"" help:"List daily logs."`
		Delete  cli.LogDeleteCmd  `cmd:"" help:"Delete a daily log."`
	} `cmd:"" help:"Record daily care logs."`

	Backup struct {
		Create cli.BackupCreateCmd `cmd:"" help:"Create a backup archive."`
		List   cli.BackupListCmd   `cmd:"" help:"List backup archives."`
	} `cmd:"" help:"Manage data backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bevia"),
		kong.Description("Baby growth, milestone and daily-care tracker"),
		kong.UsageOnError(),
		kong.Vars{
			"version":       "v0.1.0",
			"data_dir_name": constants.DataDirName,
		},
	)

	logger := zap.NewNop()
	if CLI.Verbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}
	defer func() { _ = logger.Sync() }()

	// SQLite and JSON stores are interchangeable; the db flag selects
	// the SQLite one and anchors backups next to the database file.
	var store storage.Provider
	dataDir := CLI.DataDir
	if strings.HasSuffix(CLI.Db, ".db") {
		store = storage.NewSQLiteStore(CLI.Db, logger)
		dataDir = filepath.Dir(CLI.Db)
	} else {
		store = storage.NewFileStore(dataDir, logger)
	}
	defer func() { _ = store.Close() }()

	if err := store.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Repo:    repository.New(store),
		Engine:  growth.NewEngine(growth.DefaultReferences()),
		DataDir: dataDir,
		Logger:  logger,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
