// Package growth ranks observed measurements against reference population
// percentile curves. The ranking is a deliberately coarse approximation:
// bucketed linear interpolation between the 3rd, 50th and 97th percentile
// curves, not a parametric growth model.
package growth

import (
	"fmt"
	"math"
	"strings"
)

type Measurement string

const (
	MeasurementWeight Measurement = "weight"
	MeasurementHeight Measurement = "height"
	MeasurementHead   Measurement = "head"
)

// ParseMeasurement validates a user-supplied measurement type string.
func ParseMeasurement(s string) (Measurement, error) {
	switch Measurement(s) {
	case MeasurementWeight, MeasurementHeight, MeasurementHead:
		return Measurement(s), nil
	default:
		return "", fmt.Errorf("invalid measurement type: %q", s)
	}
}

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Point is one reference value at a given age.
type Point struct {
	AgeMonths int     `json:"age_months"`
	Value     float64 `json:"value"`
}

// Curve is an ordered sequence of reference points for one percentile.
type Curve []Point

// Table holds the three percentile curves for one (measurement, sex)
// combination.
type Table struct {
	P3  Curve `json:"p3"`
	P50 Curve `json:"p50"`
	P97 Curve `json:"p97"`
}

// Key identifies a reference table.
type Key struct {
	Measurement Measurement
	Sex         Sex
}

// ReferenceSet is the external reference dataset, injected at engine
// construction so tests can substitute synthetic tables.
type ReferenceSet map[Key]Table

// Engine computes percentile rankings and plotting series against an
// immutable reference set. It has no dependency on storage.
type Engine struct {
	refs ReferenceSet
}

func NewEngine(refs ReferenceSet) *Engine {
	return &Engine{refs: refs}
}

// Table returns the reference table for the given combination. Unknown
// combinations report ok=false rather than failing.
func (e *Engine) Table(m Measurement, sex Sex) (Table, bool) {
	t, ok := e.refs[Key{Measurement: m, Sex: Sex(strings.ToLower(string(sex)))}]
	return t, ok
}

// Series returns the percentile curves filtered to points whose age lies
// within the closed range [minAge, maxAge] months, keyed by percentile
// label. It exists for chart rendering, not ranking. Unknown combinations
// yield an empty map.
func (e *Engine) Series(m Measurement, sex Sex, minAge, maxAge int) map[string]Curve {
	t, ok := e.Table(m, sex)
	if !ok {
		return map[string]Curve{}
	}
	filter := func(c Curve) Curve {
		var out Curve
		for _, p := range c {
			if p.AgeMonths >= minAge && p.AgeMonths <= maxAge {
				out = append(out, p)
			}
		}
		return out
	}
	return map[string]Curve{
		"p3":  filter(t.P3),
		"p50": filter(t.P50),
		"p97": filter(t.P97),
	}
}

// EstimatePercentile ranks an observed value at the given age in months
// against the reference curves, returning an integer percentile in [3,97].
// Values at or below the 3rd percentile curve clamp to 3, at or above the
// 97th clamp to 97; in between, the value's position within [p3,p97] is
// mapped linearly onto [3,97]. Unknown (measurement, sex) combinations
// return the neutral default of 50.
func (e *Engine) EstimatePercentile(value, ageMonths float64, m Measurement, sex Sex) int {
	t, ok := e.Table(m, sex)
	if !ok {
		return 50
	}

	// Bracketing ages come from the median curve; each percentile curve is
	// then interpolated independently, clamping to its nearest available
	// age, so tables with asymmetric curve lengths still resolve.
	lowerAge, upperAge := bracket(t.P50, ageMonths)
	p3 := interpolateAt(t.P3, ageMonths, lowerAge, upperAge)
	p97 := interpolateAt(t.P97, ageMonths, lowerAge, upperAge)

	if value <= p3 {
		return 3
	}
	if value >= p97 {
		return 97
	}
	position := (value - p3) / (p97 - p3)
	return int(math.Round(3 + 94*position))
}

// bracket returns the greatest reference age at or below the requested age
// (default 0) and the least reference age at or above it (default the
// curve's maximum age).
func bracket(c Curve, age float64) (lowerAge, upperAge int) {
	for _, p := range c {
		if p.AgeMonths > upperAge {
			upperAge = p.AgeMonths
		}
	}
	for _, p := range c {
		a := float64(p.AgeMonths)
		if a <= age && p.AgeMonths > lowerAge {
			lowerAge = p.AgeMonths
		}
		if a >= age && p.AgeMonths < upperAge {
			upperAge = p.AgeMonths
		}
	}
	return lowerAge, upperAge
}

// interpolateAt linearly interpolates the curve's value at the requested
// age between the two bracketing reference ages. Equal bracket ages return
// that age's exact value.
func interpolateAt(c Curve, age float64, lowerAge, upperAge int) float64 {
	lowerVal, ok := valueAt(c, lowerAge)
	if !ok {
		return 0
	}
	if lowerAge == upperAge {
		return lowerVal
	}
	upperVal, ok := valueAt(c, upperAge)
	if !ok {
		return 0
	}
	ratio := (age - float64(lowerAge)) / float64(upperAge-lowerAge)
	return lowerVal + (upperVal-lowerVal)*ratio
}

// valueAt returns the curve's value at the exact age, falling back to the
// nearest available age when the curve lacks that point.
func valueAt(c Curve, age int) (float64, bool) {
	if len(c) == 0 {
		return 0, false
	}
	best := c[0]
	for _, p := range c {
		if p.AgeMonths == age {
			return p.Value, true
		}
		if abs(p.AgeMonths-age) < abs(best.AgeMonths-age) {
			best = p
		}
	}
	return best.Value, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
