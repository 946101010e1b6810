package cli

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/eherrera/bevia/internal/constants"
	"github.com/eherrera/bevia/internal/growth"
	"github.com/eherrera/bevia/internal/models"
	"github.com/eherrera/bevia/internal/validation"
)

type GrowthAddCmd struct {
	Baby   string `arg:"" help:"Baby id or name."`
	Date   string `short:"d" help:"Measurement date (YYYY-MM-DD)." default:"today"`
	Weight string `short:"w" help:"Weight in kg."`
	Height string `short:"H" help:"Height in cm."`
	Head   string `short:"c" help:"Head circumference in cm."`
	Notes  string `short:"n" help:"Free-text notes."`
}

func (c *GrowthAddCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}
	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}
	weight, err := floatFlag(c.Weight, "weight")
	if err != nil {
		return err
	}
	height, err := floatFlag(c.Height, "height")
	if err != nil {
		return err
	}
	head, err := floatFlag(c.Head, "head circumference")
	if err != nil {
		return err
	}

	record := models.NewGrowthRecord(baby.ID, date, weight, height, head, c.Notes)

	result := validation.New().ValidateGrowthRecord(record)
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}

	if !ctx.Repo.SaveGrowthRecord(record) {
		return fmt.Errorf("failed to save growth record")
	}
	fmt.Printf("Added growth record for %s on %s (ID: %s)\n",
		baby.Name, date.Format(constants.DateFormat), record.ID)
	return nil
}

type GrowthListCmd struct {
	Baby string `arg:"" help:"Baby id or name."`
}

func (c *GrowthListCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}

	records := ctx.Repo.GrowthRecords(baby.ID)
	if len(records) == 0 {
		fmt.Printf("No growth records for %s\n", baby.Name)
		return nil
	}

	fmt.Printf("Growth records for %s (newest first):\n", baby.Name)
	for _, r := range records {
		line := fmt.Sprintf("  %s  %s", shortID(r.ID), r.Date.Format(constants.DateFormat))
		if r.Weight != nil {
			line += fmt.Sprintf("  %.2f kg", *r.Weight)
		}
		if r.Height != nil {
			line += fmt.Sprintf("  %.1f cm", *r.Height)
		}
		if r.Head != nil {
			line += fmt.Sprintf("  head %.1f cm", *r.Head)
		}
		fmt.Println(line)
	}
	return nil
}

type GrowthDeleteCmd struct {
	Baby string `arg:"" help:"Baby id or name."`
	ID   string `arg:"" help:"Growth record id."`
}

func (c *GrowthDeleteCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return fmt.Errorf("invalid record id: %w", err)
	}
	if !ctx.Repo.DeleteGrowthRecord(baby.ID, id) {
		return fmt.Errorf("no growth record %s for %s", c.ID, baby.Name)
	}
	fmt.Println("Deleted growth record")
	return nil
}

type GrowthPercentileCmd struct {
	Baby string `arg:"" help:"Baby id or name."`
	Type string `short:"t" help:"Measurement type (weight|height|head)." default:"weight"`
}

func (c *GrowthPercentileCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}
	measurement, err := growth.ParseMeasurement(c.Type)
	if err != nil {
		return err
	}
	sex, err := parseSex(baby)
	if err != nil {
		return err
	}

	record, value, ok := latestMeasurement(ctx, baby.ID, measurement)
	if !ok {
		return fmt.Errorf("no %s measurement recorded for %s", measurement, baby.Name)
	}

	ageMonths := baby.AgeInMonths(record.Date)
	percentile := ctx.Engine.EstimatePercentile(value, float64(ageMonths), measurement, sex)

	fmt.Printf("%s: %s %g at %d months -> ~%dth percentile\n",
		baby.Name, measurement, value, ageMonths, percentile)
	return nil
}

// latestMeasurement finds the newest growth record that carries the
// requested measurement.
func latestMeasurement(ctx *Context, babyID uuid.UUID, m growth.Measurement) (models.GrowthRecord, float64, bool) {
	for _, r := range ctx.Repo.GrowthRecords(babyID) {
		var v *float64
		switch m {
		case growth.MeasurementWeight:
			v = r.Weight
		case growth.MeasurementHeight:
			v = r.Height
		case growth.MeasurementHead:
			v = r.Head
		}
		if v != nil {
			return r, *v, true
		}
	}
	return models.GrowthRecord{}, 0, false
}

type GrowthChartCmd struct {
	Baby string `arg:"" help:"Baby id or name."`
	Type string `short:"t" help:"Measurement type (weight|height|head)." default:"weight"`
	From int    `help:"Start of the age window in months." default:"0"`
	To   int    `help:"End of the age window in months." default:"24"`
}

func (c *GrowthChartCmd) Run(ctx *Context) error {
	baby, err := resolveBaby(ctx, c.Baby)
	if err != nil {
		return err
	}
	measurement, err := growth.ParseMeasurement(c.Type)
	if err != nil {
		return err
	}
	sex, err := parseSex(baby)
	if err != nil {
		return err
	}

	series := ctx.Engine.Series(measurement, sex, c.From, c.To)
	if len(series) == 0 {
		return fmt.Errorf("no reference data for %s/%s", measurement, sex)
	}

	fmt.Printf("Reference %s percentiles (%s, %d-%d months):\n", measurement, sex, c.From, c.To)
	labels := make([]string, 0, len(series))
	for label := range series {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Printf("  %s:", label)
		for _, p := range series[label] {
			fmt.Printf("  (%dmo, %.1f)", p.AgeMonths, p.Value)
		}
		fmt.Println()
	}
	return nil
}
