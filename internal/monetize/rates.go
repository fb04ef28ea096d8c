// Package monetize estimates YouTube ad revenue from a static per-country
// CPM table. The tiers are rough industry figures, not a contract; the
// formula is views/1000 * CPM * creator share.
package monetize

import (
	"math"

	"seo-assistant/internal/models"
)

type rate struct {
	min, max, avg float64
}

// creatorShare is the RPM fraction of CPM that reaches the creator after
// the platform's cut.
const creatorShare = 0.55

var countryRates = map[string]rate{
	// Tier 1
	"US": {4, 12, 8},
	"CA": {3.5, 10, 6.5},
	"GB": {3, 10, 6},
	"AU": {3, 9, 6},
	"DE": {2.5, 8, 5},
	"FR": {2, 7, 4.5},
	"NL": {2.5, 7, 4.5},
	"SE": {2.5, 8, 5},
	"NO": {3, 9, 6},
	"DK": {2.5, 8, 5},
	"CH": {3, 10, 6.5},

	// Tier 2
	"NZ": {2, 6, 4},
	"IE": {2, 6, 4},
	"IT": {1.5, 5, 3},
	"ES": {1.5, 5, 3},
	"FI": {2, 6, 4},
	"BE": {1.5, 5, 3},
	"AT": {2, 6, 4},
	"JP": {1.5, 5, 3},
	"KR": {1.5, 5, 3},
	"SG": {2, 6, 4},
	"AE": {2, 7, 4.5},
	"SA": {1.5, 5, 3},
	"IL": {1.5, 5, 3},

	// Tier 3
	"BR": {1, 3.5, 2},
	"MX": {0.8, 3, 1.5},
	"AR": {0.8, 3, 1.5},
	"CL": {1, 3, 2},
	"CO": {0.8, 2.5, 1.5},
	"PE": {0.8, 2.5, 1.5},
	"PL": {1, 3.5, 2},
	"RU": {0.5, 2, 1},
	"TR": {0.8, 2.5, 1.5},
	"GR": {1, 3, 2},
	"PT": {1, 3, 2},
	"CZ": {1, 3, 2},
	"HU": {0.8, 2.5, 1.5},
	"RO": {0.8, 2.5, 1.5},
	"UA": {0.5, 2, 1},
	"ZA": {1, 3.5, 2},
	"MY": {1, 3, 2},
	"TH": {0.8, 2.5, 1.5},

	// Tier 4
	"IN": {0.3, 1.5, 0.8},
	"BD": {0.2, 1, 0.5},
	"PK": {0.3, 1.2, 0.6},
	"PH": {0.5, 2, 1},
	"ID": {0.5, 2, 1},
	"VN": {0.4, 1.5, 0.8},
	"EG": {0.3, 1.5, 0.8},
	"NG": {0.5, 2, 1},
	"KE": {0.5, 2, 1},
	"CN": {0.8, 3, 1.5},
}

var defaultRate = rate{0.5, 3, 1.5}

// Estimate computes the income range for a view count and 2-letter channel
// country code. Unknown countries use the default tier; zero views yields
// all zeros.
func Estimate(views int64, country string) models.IncomeEstimate {
	if views <= 0 {
		return models.IncomeEstimate{}
	}

	r, ok := countryRates[country]
	if !ok {
		r = defaultRate
	}

	thousands := float64(views) / 1000
	return models.IncomeEstimate{
		Min:    roundCents(thousands * r.min * creatorShare),
		Max:    roundCents(thousands * r.max * creatorShare),
		Likely: roundCents(thousands * r.avg * creatorShare),
		CPM:    r.avg,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
