package growth

// DefaultReferences returns the built-in reference dataset: simplified
// WHO child growth standards for ages 0-24 months, three percentile
// curves per measurement and sex.
//
// Source: https://www.who.int/childgrowth/standards/en/ (simplified; real
// charts derive percentiles from parametric LMS distributions).
func DefaultReferences() ReferenceSet {
	return ReferenceSet{
		{MeasurementWeight, SexMale}: { // kg
			P3:  Curve{{0, 2.9}, {3, 5.7}, {6, 7.3}, {9, 8.4}, {12, 9.2}, {18, 10.4}, {24, 11.5}},
			P50: Curve{{0, 3.3}, {3, 6.4}, {6, 8.0}, {9, 9.2}, {12, 10.0}, {18, 11.5}, {24, 12.7}},
			P97: Curve{{0, 4.3}, {3, 7.5}, {6, 9.5}, {9, 10.7}, {12, 11.7}, {18, 13.3}, {24, 14.8}},
		},
		{MeasurementWeight, SexFemale}: { // kg
			P3:  Curve{{0, 2.8}, {3, 5.1}, {6, 6.7}, {9, 7.7}, {12, 8.4}, {18, 9.5}, {24, 10.5}},
			P50: Curve{{0, 3.2}, {3, 5.8}, {6, 7.3}, {9, 8.5}, {12, 9.2}, {18, 10.5}, {24, 11.8}},
			P97: Curve{{0, 4.2}, {3, 6.9}, {6, 8.7}, {9, 10.0}, {12, 11.0}, {18, 12.5}, {24, 13.9}},
		},
		{MeasurementHeight, SexMale}: { // cm
			P3:  Curve{{0, 46.3}, {3, 59.4}, {6, 65.0}, {9, 69.2}, {12, 72.7}, {18, 78.4}, {24, 83.2}},
			P50: Curve{{0, 49.9}, {3, 62.1}, {6, 67.6}, {9, 72.0}, {12, 75.7}, {18, 82.3}, {24, 87.1}},
			P97: Curve{{0, 53.4}, {3, 64.8}, {6, 70.3}, {9, 74.8}, {12, 78.8}, {18, 86.1}, {24, 91.1}},
		},
		{MeasurementHeight, SexFemale}: { // cm
			P3:  Curve{{0, 45.6}, {3, 57.4}, {6, 63.2}, {9, 67.7}, {12, 71.3}, {18, 77.2}, {24, 82.0}},
			P50: Curve{{0, 49.1}, {3, 60.2}, {6, 65.7}, {9, 70.4}, {12, 74.3}, {18, 80.7}, {24, 86.0}},
			P97: Curve{{0, 52.7}, {3, 63.0}, {6, 68.3}, {9, 73.2}, {12, 77.4}, {18, 84.2}, {24, 90.0}},
		},
		{MeasurementHead, SexMale}: { // cm
			P3:  Curve{{0, 32.4}, {3, 39.2}, {6, 42.3}, {9, 44.2}, {12, 45.5}, {18, 47.1}, {24, 48.1}},
			P50: Curve{{0, 34.5}, {3, 40.8}, {6, 43.8}, {9, 45.6}, {12, 46.9}, {18, 48.4}, {24, 49.3}},
			P97: Curve{{0, 36.6}, {3, 42.3}, {6, 45.2}, {9, 47.0}, {12, 48.2}, {18, 49.7}, {24, 50.5}},
		},
		{MeasurementHead, SexFemale}: { // cm
			P3:  Curve{{0, 31.9}, {3, 38.1}, {6, 41.1}, {9, 43.0}, {12, 44.2}, {18, 45.7}, {24, 46.6}},
			P50: Curve{{0, 33.9}, {3, 39.5}, {6, 42.4}, {9, 44.2}, {12, 45.3}, {18, 46.8}, {24, 47.8}},
			P97: Curve{{0, 35.8}, {3, 41.0}, {6, 43.7}, {9, 45.3}, {12, 46.5}, {18, 48.0}, {24, 49.0}},
		},
	}
}
