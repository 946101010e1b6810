package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/eherrera/bevia/internal/constants"
	"github.com/eherrera/bevia/internal/models"
	"github.com/eherrera/bevia/internal/validation"
)

type MilestoneAddCmd struct {
	Baby        string `arg:"" help:"Baby id or name."`
	Name        string `arg:"" help:"Milestone name."`
	Category    string `short:"c" help:"Category (physical|social|language|cognitive|other)." default:"other"`
	ExpectedMin int    `help:"Lower bound of expected age range in months." default:"-1"`
	ExpectedMax int    `help:"Upper bound of expected age range in months." default:"-1"`
	Notes       string `short:"n" help:"Free-text notes."`
}

func (c *MilestoneAddCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}
	category, err := models.ParseMilestoneCategory(c.Category)
	if err != nil {
		return err
	}

	var expected *models.AgeRange
	if c.ExpectedMin >= 0 || c.ExpectedMax >= 0 {
		if c.ExpectedMin < 0 || c.ExpectedMax < 0 {
			return fmt.Errorf("expected age range needs both --expected-min and --expected-max")
		}
		expected = &models.AgeRange{Min: c.ExpectedMin, Max: c.ExpectedMax}
	}

	milestone := models.NewMilestone(baby.ID, c.Name, category, expected, c.Notes)

	result := validation.New().ValidateMilestone(milestone, baby.Birthdate)
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}

	if !ctx.Repo.SaveMilestone(milestone) {
		return fmt.Errorf("failed to save milestone")
	}
	fmt.Printf("Added milestone: %s (ID: %s)\n", milestone.Name, milestone.ID)
	return nil
}

type MilestoneListCmd struct {
	Baby string `arg:"" help:"Baby id or name."`
}

func (c *MilestoneListCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}

	milestones := ctx.Repo.Milestones(baby.ID)
	if len(milestones) == 0 {
		fmt.Printf("No milestones for %s\n", baby.Name)
		return nil
	}

	fmt.Printf("Milestones for %s:\n", baby.Name)
	for _, m := range milestones {
		status := "not achieved"
		if m.IsAchieved() {
			status = "achieved " + m.AchievedDate.Format(constants.DateFormat)
			if onTime, defined := m.IsOnTime(baby.Birthdate); defined {
				if onTime {
					status += ", on time"
				} else {
					status += ", outside expected range"
				}
			}
		}
		line := fmt.Sprintf("  %s  [%s] %s (%s)", shortID(m.ID), m.Category.DisplayName(), m.Name, status)
		if m.ExpectedRange != nil {
			line += fmt.Sprintf(" expected %s", m.ExpectedRange)
		}
		fmt.Println(line)
	}
	return nil
}

type MilestoneAchieveCmd struct {
	Baby string `arg:"" help:"Baby id or name."`
	ID   string `arg:"" help:"Milestone id."`
	Date string `short:"d" help:"Achievement date (YYYY-MM-DD)." default:"today"`
}

func (c *MilestoneAchieveCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return fmt.Errorf("invalid milestone id: %w", err)
	}
	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	milestone, ok := ctx.Repo.Milestone(baby.ID, id)
	if !ok {
		return fmt.Errorf("no milestone %s for %s", c.ID, baby.Name)
	}

	milestone.AchievedDate = &date

	result := validation.New().ValidateMilestone(milestone, baby.Birthdate)
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}

	if !ctx.Repo.SaveMilestone(milestone) {
		return fmt.Errorf("failed to save milestone")
	}

	fmt.Printf("Marked %q achieved on %s", milestone.Name, date.Format(constants.DateFormat))
	if onTime, defined := milestone.IsOnTime(baby.Birthdate); defined {
		if onTime {
			fmt.Print(" (on time)")
		} else {
			fmt.Print(" (outside the expected range)")
		}
	}
	fmt.Println()
	return nil
}

type MilestoneDeleteCmd struct {
	Baby string `arg:"" help:"Baby id or name."`
	ID   string `arg:"" help:"Milestone id."`
}

func (c *MilestoneDeleteCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return fmt.Errorf("invalid milestone id: %w", err)
	}
	if !ctx.Repo.DeleteMilestone(baby.ID, id) {
		return fmt.Errorf("no milestone %s for %s", c.ID, baby.Name)
	}
	fmt.Println("Deleted milestone")
	return nil
}
