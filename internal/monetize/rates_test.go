package monetize

import "testing"

func TestEstimate(t *testing.T) {
	tests := []struct {
		name    string
		views   int64
		country string
		min     float64
		max     float64
		likely  float64
		cpm     float64
	}{
		{
			name:    "ZeroViews",
			views:   0,
			country: "US",
		},
		{
			name:    "Tier1US",
			views:   1_000_000,
			country: "US",
			min:     2200, // 1000 * 4 * 0.55
			max:     6600,
			likely:  4400,
			cpm:     8,
		},
		{
			name:    "Tier4India",
			views:   1_000_000,
			country: "IN",
			min:     165,
			max:     825,
			likely:  440,
			cpm:     0.8,
		},
		{
			name:    "UnknownCountryUsesDefault",
			views:   1_000_000,
			country: "XX",
			min:     275,
			max:     1650,
			likely:  825,
			cpm:     1.5,
		},
		{
			name:    "NoCountryUsesDefault",
			views:   1000,
			country: "",
			min:     0.28, // 1 * 0.5 * 0.55 rounded to cents
			max:     1.65,
			likely:  0.83,
			cpm:     1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.views, tt.country)
			if got.Min != tt.min || got.Max != tt.max || got.Likely != tt.likely {
				t.Errorf("Estimate(%d, %q) = %+v, want min=%v max=%v likely=%v",
					tt.views, tt.country, got, tt.min, tt.max, tt.likely)
			}
			if got.CPM != tt.cpm {
				t.Errorf("CPM = %v, want %v", got.CPM, tt.cpm)
			}
		})
	}
}

func TestEstimateNegativeViews(t *testing.T) {
	if got := Estimate(-100, "US"); got.Min != 0 || got.Max != 0 || got.Likely != 0 {
		t.Errorf("Estimate(-100) = %+v, want zeros", got)
	}
}
