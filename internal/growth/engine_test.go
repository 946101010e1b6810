package growth

import (
	"math"
	"testing"
)

// syntheticRefs builds a small reference set with evenly spaced curves so
// expected percentiles can be computed by hand.
func syntheticRefs() ReferenceSet {
	return ReferenceSet{
		{MeasurementWeight, SexMale}: {
			P3:  Curve{{0, 2.0}, {3, 4.0}, {6, 6.0}},
			P50: Curve{{0, 3.0}, {3, 5.0}, {6, 7.0}},
			P97: Curve{{0, 4.0}, {3, 6.0}, {6, 8.0}},
		},
	}
}

func TestEstimatePercentileMidpoint(t *testing.T) {
	e := NewEngine(syntheticRefs())

	// Exactly between p3 and p97 at a reference age maps to 50
	if got := e.EstimatePercentile(3.0, 0, MeasurementWeight, SexMale); got != 50 {
		t.Errorf("midpoint at age 0 = %d, want 50", got)
	}
	// And between reference ages, against interpolated bounds
	if got := e.EstimatePercentile(4.0, 1.5, MeasurementWeight, SexMale); got != 50 {
		t.Errorf("midpoint at age 1.5 = %d, want 50", got)
	}
}

func TestEstimatePercentileClamps(t *testing.T) {
	e := NewEngine(syntheticRefs())

	if got := e.EstimatePercentile(1.0, 0, MeasurementWeight, SexMale); got != 3 {
		t.Errorf("below p3 = %d, want 3", got)
	}
	if got := e.EstimatePercentile(2.0, 0, MeasurementWeight, SexMale); got != 3 {
		t.Errorf("exactly p3 = %d, want 3", got)
	}
	if got := e.EstimatePercentile(4.0, 0, MeasurementWeight, SexMale); got != 97 {
		t.Errorf("exactly p97 = %d, want 97", got)
	}
	if got := e.EstimatePercentile(9.9, 0, MeasurementWeight, SexMale); got != 97 {
		t.Errorf("above p97 = %d, want 97", got)
	}
}

func TestEstimatePercentileRounds(t *testing.T) {
	e := NewEngine(syntheticRefs())

	// position = 0.25 -> 3 + 94*0.25 = 26.5, rounds to 27
	if got := e.EstimatePercentile(2.5, 0, MeasurementWeight, SexMale); got != 27 {
		t.Errorf("quarter position = %d, want 27", got)
	}
}

func TestEstimatePercentileUnknownCombination(t *testing.T) {
	e := NewEngine(syntheticRefs())

	if got := e.EstimatePercentile(5.0, 3, MeasurementWeight, SexFemale); got != 50 {
		t.Errorf("unknown combination = %d, want neutral 50", got)
	}
	if got := e.EstimatePercentile(5.0, 3, MeasurementHead, SexMale); got != 50 {
		t.Errorf("unknown measurement = %d, want neutral 50", got)
	}
}

func TestEstimatePercentileClampsBeyondTableAges(t *testing.T) {
	e := NewEngine(syntheticRefs())

	// Ages past the table's last point use the last point's values
	if got := e.EstimatePercentile(7.0, 36, MeasurementWeight, SexMale); got != 50 {
		t.Errorf("beyond max age = %d, want 50", got)
	}
}

func TestInterpolateAt(t *testing.T) {
	c := Curve{{0, 3.3}, {3, 6.4}, {6, 8.0}}

	if got := interpolateAt(c, 1.5, 0, 3); math.Abs(got-4.85) > 1e-9 {
		t.Errorf("interpolateAt(1.5) = %v, want 4.85", got)
	}
	if got := interpolateAt(c, 3, 3, 3); got != 6.4 {
		t.Errorf("exact age = %v, want 6.4", got)
	}
}

func TestBracket(t *testing.T) {
	c := Curve{{0, 1}, {3, 2}, {6, 3}, {24, 4}}

	tests := []struct {
		age          float64
		lower, upper int
	}{
		{0, 0, 0},
		{1.5, 0, 3},
		{3, 3, 3},
		{10, 6, 24},
		{30, 24, 24},
	}
	for _, tt := range tests {
		lower, upper := bracket(c, tt.age)
		if lower != tt.lower || upper != tt.upper {
			t.Errorf("bracket(%v) = (%d, %d), want (%d, %d)", tt.age, lower, upper, tt.lower, tt.upper)
		}
	}
}

func TestValueAtNearestFallback(t *testing.T) {
	c := Curve{{0, 1.0}, {6, 2.0}}

	if v, ok := valueAt(c, 6); !ok || v != 2.0 {
		t.Errorf("exact age = (%v, %v)", v, ok)
	}
	// Age 3 is absent; nearest is either endpoint, first wins ties
	if v, ok := valueAt(c, 2); !ok || v != 1.0 {
		t.Errorf("nearest age = (%v, %v), want 1.0", v, ok)
	}
	if _, ok := valueAt(Curve{}, 0); ok {
		t.Error("empty curve should report absence")
	}
}

func TestSeriesFiltersAgeRange(t *testing.T) {
	e := NewEngine(syntheticRefs())

	series := e.Series(MeasurementWeight, SexMale, 3, 6)
	if len(series) != 3 {
		t.Fatalf("expected 3 curves, got %d", len(series))
	}
	for label, curve := range series {
		if len(curve) != 2 {
			t.Errorf("curve %s has %d points, want 2", label, len(curve))
		}
		for _, p := range curve {
			if p.AgeMonths < 3 || p.AgeMonths > 6 {
				t.Errorf("curve %s leaked age %d", label, p.AgeMonths)
			}
		}
	}

	if got := e.Series(MeasurementHead, SexFemale, 0, 24); len(got) != 0 {
		t.Errorf("unknown combination should yield empty map, got %d curves", len(got))
	}
}

func TestDefaultReferencesCoverAllCombinations(t *testing.T) {
	e := NewEngine(DefaultReferences())

	for _, m := range []Measurement{MeasurementWeight, MeasurementHeight, MeasurementHead} {
		for _, sex := range []Sex{SexMale, SexFemale} {
			table, ok := e.Table(m, sex)
			if !ok {
				t.Errorf("missing table for %s/%s", m, sex)
				continue
			}
			if len(table.P3) != len(table.P50) || len(table.P50) != len(table.P97) {
				t.Errorf("uneven curve lengths for %s/%s", m, sex)
			}
		}
	}

	// A median newborn weight ranks near the middle
	got := e.EstimatePercentile(3.3, 0, MeasurementWeight, SexMale)
	if got < 25 || got > 60 {
		t.Errorf("median newborn weight ranked %d, want mid-range", got)
	}
}

func TestParseMeasurement(t *testing.T) {
	for _, valid := range []string{"weight", "height", "head"} {
		if _, err := ParseMeasurement(valid); err != nil {
			t.Errorf("ParseMeasurement(%q) = %v", valid, err)
		}
	}
	if _, err := ParseMeasurement("bmi"); err == nil {
		t.Error("ParseMeasurement should reject unknown types")
	}
}
