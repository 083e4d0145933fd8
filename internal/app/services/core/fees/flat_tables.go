package fees

import "strings"

// ageBand is one row of a flat cash fee table. Bands are evaluated in
// order; MaxAgeExclusive == 0 means no upper bound, so the last band of
// every table catches all remaining ages.
type ageBand struct {
	MaxAgeExclusive int
	FeeUSD          float64
}

// cashFeeTables holds the per-destination quick-flow fees, keyed by
// country code. These are the walk-in cash amounts, distinct from the
// administered rule table.
var cashFeeTables = map[string][]ageBand{
	"US": {
		{MaxAgeExclusive: 2, FeeUSD: 100.00},
		{MaxAgeExclusive: 15, FeeUSD: 125.00},
		{FeeUSD: 143.00},
	},
	"UK": {
		{MaxAgeExclusive: 11, FeeUSD: 85.00},
		{FeeUSD: 110.00},
	},
	"JP": {
		{MaxAgeExclusive: 15, FeeUSD: 95.00},
		{FeeUSD: 130.00},
	},
	"AU": {
		{MaxAgeExclusive: 2, FeeUSD: 80.00},
		{MaxAgeExclusive: 11, FeeUSD: 105.00},
		{MaxAgeExclusive: 15, FeeUSD: 125.00},
		{FeeUSD: 150.00},
	},
	"NZ": {
		{MaxAgeExclusive: 11, FeeUSD: 100.00},
		{MaxAgeExclusive: 15, FeeUSD: 120.00},
		{FeeUSD: 145.00},
	},
	"CA": {
		{MaxAgeExclusive: 2, FeeUSD: 90.00},
		{MaxAgeExclusive: 15, FeeUSD: 115.00},
		{FeeUSD: 140.00},
	},
}

// australiaVisaSubclassFees overrides the AU age bands for visa
// subclasses that carry their own assessment fee regardless of age.
var australiaVisaSubclassFees = map[string]float64{
	"155": 95.00,
	"590": 120.00,
	"870": 135.00,
}

// LookupCashFee resolves the flat cash fee for a destination country.
// The boolean is false when the country has no table or, for Australia,
// when an unknown visa subclass is supplied.
func LookupCashFee(countryCode string, ageYears int, visaSubclass string) (float64, bool) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))

	if countryCode == "AU" && visaSubclass != "" {
		fee, found := australiaVisaSubclassFees[visaSubclass]
		return fee, found
	}

	bands, found := cashFeeTables[countryCode]
	if !found {
		return 0, false
	}
	for _, band := range bands {
		if band.MaxAgeExclusive == 0 || ageYears < band.MaxAgeExclusive {
			return band.FeeUSD, true
		}
	}
	return 0, false
}
