package cli

import (
	"fmt"
	"time"

	"github.com/eherrera/bevia/internal/constants"
	"github.com/eherrera/bevia/internal/models"
	"github.com/eherrera/bevia/internal/validation"
)

type BabyAddCmd struct {
	Name      string `arg:"" help:"Baby's display name."`
	Birthdate string `short:"b" help:"Birthdate (YYYY-MM-DD)." required:""`
	Gender    string `short:"g" help:"Gender (male|female)."`
	Notes     string `short:"n" help:"Free-text notes."`
}

func (c *BabyAddCmd) Run(ctx *Context) error {
	birthdate, err := parseDate(c.Birthdate)
	if err != nil {
		return err
	}
	if c.Gender != "" && c.Gender != "male" && c.Gender != "female" {
		return fmt.Errorf("invalid gender: %q (use male or female)", c.Gender)
	}

	baby := models.NewBaby(c.Name, birthdate, c.Gender, c.Notes)

	result := validation.New().ValidateBaby(baby, time.Now())
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}

	if !ctx.Repo.SaveBaby(baby) {
		return fmt.Errorf("failed to save baby")
	}
	fmt.Printf("Added baby: %s (ID: %s)\n", baby.Name, baby.ID)
	return nil
}

type BabyListCmd struct{}

func (c *BabyListCmd) Run(ctx *Context) error {
	babies := ctx.Repo.Babies()
	if len(babies) == 0 {
		fmt.Println("No babies found")
		return nil
	}

	fmt.Println("Babies:")
	now := time.Now()
	for _, baby := range babies {
		fmt.Printf("  %s  %s (%s)\n", shortID(baby.ID), baby.Name, models.FormatAge(baby.Birthdate, now))
	}
	return nil
}

type BabyShowCmd struct {
	Baby string `arg:"" help:"Baby id or name."`
}

func (c *BabyShowCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}

	now := time.Now()
	fmt.Printf("%s\n", baby.Name)
	fmt.Printf("  ID:        %s\n", baby.ID)
	fmt.Printf("  Birthdate: %s\n", baby.Birthdate.Format(constants.DateFormat))
	fmt.Printf("  Age:       %s\n", models.FormatAge(baby.Birthdate, now))
	if baby.Gender != "" {
		fmt.Printf("  Gender:    %s\n", baby.Gender)
	}
	if baby.Notes != "" {
		fmt.Printf("  Notes:     %s\n", baby.Notes)
	}

	fmt.Printf("  Records:   %d growth, %d milestones, %d logs\n",
		len(ctx.Repo.GrowthRecords(baby.ID)),
		len(ctx.Repo.Milestones(baby.ID)),
		len(ctx.Repo.Logs(baby.ID)))
	return nil
}

type BabyDeleteCmd struct {
	Baby string `arg:"" help:"Baby id or name."`
}

func (c *BabyDeleteCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}
	if !ctx.Repo.DeleteBaby(baby.ID) {
		return fmt.Errorf("failed to delete baby %s", baby.Name)
	}
	fmt.Printf("Deleted baby: %s\n", baby.Name)
	return nil
}
