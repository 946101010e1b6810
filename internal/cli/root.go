package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eherrera/bevia/internal/constants"
	"github.com/eherrera/bevia/internal/growth"
	"github.com/eherrera/bevia/internal/models"
	"github.com/eherrera/bevia/internal/repository"
)

type Context struct {
	Repo    *repository.Repository
	Engine  *growth.Engine
	DataDir string
	Logger  *zap.Logger
}

// parseDate parses a YYYY-MM-DD date, accepting "today" as an alias for
// the current date.
func parseDate(s string) (time.Time, error) {
	if s == "" || s == "today" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return t, nil
}

// parseTimeOfDay parses an HH:MM time, defaulting to the current clock
// time when empty.
func parseTimeOfDay(s string) (string, error) {
	if s == "" {
		return time.Now().Format(constants.TimeFormat), nil
	}
	if _, err := time.Parse(constants.TimeFormat, s); err != nil {
		return "", fmt.Errorf("invalid time format, use HH:MM: %w", err)
	}
	return s, nil
}

// resolveBaby finds a baby by id, name, or unique name prefix.
func resolveBaby(ctx *Context, ref string) (models.Baby, error) {
	baby, ok := ctx.Repo.FindBaby(ref)
	if !ok {
		return models.Baby{}, fmt.Errorf("no baby matching %q (try 'bevia baby list')", ref)
	}
	return baby, nil
}

// parseSex maps a baby's recorded gender onto a reference table sex.
func parseSex(baby models.Baby) (growth.Sex, error) {
	switch strings.ToLower(baby.Gender) {
	case "male":
		return growth.SexMale, nil
	case "female":
		return growth.SexFemale, nil
	default:
		return "", fmt.Errorf("baby %s has no gender recorded; percentiles need male or female reference tables", baby.Name)
	}
}

// floatFlag converts an optional numeric flag (empty string = unset) into
// a *float64.
func floatFlag(s, name string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, s)
	}
	return &v, nil
}

func shortID(id fmt.Stringer) string {
	return id.String()[:8]
}
