package models

// FeeRule is one row of the administered fee table. Brackets are stored
// in months; a nil bound is unbounded on that side, and a rule with both
// bounds nil applies to all ages. The table is read-only here: rows are
// seeded and corrected through the admin tooling, never by this service.
type FeeRule struct {
	ID           string  `json:"id,omitempty" bson:"_id,omitempty"`
	CountryID    string  `json:"country_id" bson:"country_id"`
	ServiceCode  string  `json:"service_code" bson:"service_code"`
	Category     string  `json:"category" bson:"category"`
	MinAgeMonths *int    `json:"min_age_months,omitempty" bson:"min_age_months,omitempty"`
	MaxAgeMonths *int    `json:"max_age_months,omitempty" bson:"max_age_months,omitempty"`
	SpecialCase  string  `json:"special_case,omitempty" bson:"special_case,omitempty"`
	FeeAmountUSD float64 `json:"fee_amount_usd" bson:"fee_amount_usd"`
	IsActive     bool    `json:"is_active" bson:"is_active"`
}

// AppliesToAllAges reports whether the rule has no age bracket at all.
// A zero bound is treated the same as an absent one.
func (r FeeRule) AppliesToAllAges() bool {
	return (r.MinAgeMonths == nil || *r.MinAgeMonths == 0) &&
		(r.MaxAgeMonths == nil || *r.MaxAgeMonths == 0)
}

// MatchesAge checks ageMonths against the bracket, inclusive on both
// ends, treating a nil bound as unbounded on that side.
func (r FeeRule) MatchesAge(ageMonths int) bool {
	if r.AppliesToAllAges() {
		return true
	}
	if r.MinAgeMonths != nil && ageMonths < *r.MinAgeMonths {
		return false
	}
	if r.MaxAgeMonths != nil && *r.MaxAgeMonths != 0 && ageMonths > *r.MaxAgeMonths {
		return false
	}
	return true
}
