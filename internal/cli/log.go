package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/eherrera/bevia/internal/constants"
	"github.com/eherrera/bevia/internal/models"
	"github.com/eherrera/bevia/internal/validation"
)

type LogFeedingCmd struct {
	Baby     string `arg:"" help:"Baby id or name."`
	Type     string `short:"t" help:"Feeding type (breast|bottle|formula|solid)." required:""`
	Date     string `short:"d" help:"Date (YYYY-MM-DD)." default:"today"`
	Time     string `help:"Time of day (HH:MM), defaults to now."`
	Amount   string `short:"a" help:"Amount (ml for bottle/formula, g for solids)."`
	Duration int    `help:"Duration in minutes (breastfeeding)." default:"-1"`
	Notes    string `short:"n" help:"Free-text notes."`
}

func (c *LogFeedingCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}
	feedingType, err := models.ParseFeedingType(c.Type)
	if err != nil {
		return err
	}
	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}
	timeOfDay, err := parseTimeOfDay(c.Time)
	if err != nil {
		return err
	}
	amount, err := floatFlag(c.Amount, "amount")
	if err != nil {
		return err
	}

	detail := models.FeedingDetail{Type: feedingType, Amount: amount}
	if c.Duration >= 0 {
		detail.DurationMin = &c.Duration
	}

	log := models.NewFeedingLog(baby.ID, date, timeOfDay, detail, c.Notes)
	return saveLog(ctx, baby.Name, log)
}

type LogSleepCmd struct {
	Baby    string `arg:"" help:"Baby id or name."`
	Start   string `short:"s" help:"Sleep start (HH:MM)." required:""`
	End     string `short:"e" help:"Sleep end (HH:MM); omit while ongoing."`
	Quality string `short:"q" help:"Sleep quality (good|fair|poor)."`
	Date    string `short:"d" help:"Date (YYYY-MM-DD)." default:"today"`
	Notes   string `short:"n" help:"Free-text notes."`
}

func (c *LogSleepCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}
	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	detail := models.SleepDetail{Start: c.Start}
	if c.End != "" {
		detail.End = &c.End
	}
	if c.Quality != "" {
		quality, err := models.ParseSleepQuality(c.Quality)
		if err != nil {
			return err
		}
		detail.Quality = &quality
	}

	log := models.NewSleepLog(baby.ID, date, detail, c.Notes)
	return saveLog(ctx, baby.Name, log)
}

type LogDiaperCmd struct {
	Baby  string `arg:"" help:"Baby id or name."`
	Type  string `short:"t" help:"Diaper type (wet|soiled|both)." required:""`
	Date  string `short:"d" help:"Date (YYYY-MM-DD)." default:"today"`
	Time  string `help:"Time of day (HH:MM), defaults to now."`
	Notes string `short:"n" help:"Free-text notes."`
}

func (c *LogDiaperCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}
	diaperType, err := models.ParseDiaperType(c.Type)
	if err != nil {
		return err
	}
	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}
	timeOfDay, err := parseTimeOfDay(c.Time)
	if err != nil {
		return err
	}

	log := models.NewDiaperLog(baby.ID, date, timeOfDay, models.DiaperDetail{Type: diaperType}, c.Notes)
	return saveLog(ctx, baby.Name, log)
}

func saveLog(ctx *Context, babyName string, log models.DailyLog) error {
	result := validation.New().ValidateLog(log)
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}
	if !ctx.Repo.SaveLog(log) {
		return fmt.Errorf("failed to save %s log", log.Kind)
	}
	fmt.Printf("Logged %s for %s at %s (ID: %s)\n", log.Kind, babyName, log.TimeOfDay, log.ID)
	return nil
}

type LogListCmd struct {
	Baby string `arg:"" help:"Baby id or name."`
	Date string `short:"d" help:"Only show logs on this date (YYYY-MM-DD or 'today')."`
}

func (c *LogListCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}

	var logs []models.DailyLog
	if c.Date != "" {
		date, err := parseDate(c.Date)
		if err != nil {
			return err
		}
		logs = ctx.Repo.LogsOn(baby.ID, date)
	} else {
		logs = ctx.Repo.Logs(baby.ID)
	}

	if len(logs) == 0 {
		if c.Date != "" {
			fmt.Printf("No logs for %s on %s\n", baby.Name, c.Date)
		} else {
			fmt.Printf("No logs for %s\n", baby.Name)
		}
		return nil
	}

	fmt.Printf("Daily logs for %s:\n", baby.Name)
	for _, l := range logs {
		fmt.Printf("  %s  %s %s  %-8s %s\n",
			shortID(l.ID), l.Date.Format(constants.DateFormat), l.TimeOfDay, l.Kind, l.Summary())
		if l.Notes != "" {
			fmt.Printf("            Note: %s\n", l.Notes)
		}
	}
	return nil
}

type LogDeleteCmd struct {
	Baby string `arg:"" help:"Baby id or name."`
	ID   string `arg:"" help:"Log id."`
}

func (c *LogDeleteCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return fmt.Errorf("invalid log id: %w", err)
	}
	if !ctx.Repo.DeleteLog(baby.ID, id) {
		return fmt.Errorf("no log %s for %s", c.ID, baby.Name)
	}
	fmt.Println("Deleted log")
	return nil
}
