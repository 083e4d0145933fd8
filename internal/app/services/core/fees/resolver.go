package fees

import "casepay-service/internal/app/models"

const monthsPerYear = 12

// ResolveRuleFee walks the administered rule table in order and returns
// the first active rule matching the country, service filter, age and
// special-case flag. Brackets are expected to be disjoint; when they are
// not, table order decides. The boolean is false when nothing matches,
// which callers must treat as "fee unknown", never as a zero fee.
func ResolveRuleFee(rules []models.FeeRule, countryID string, ageYears int, serviceCode, specialCase string) (models.FeeRule, bool) {
	ageMonths := ageYears * monthsPerYear
	for _, rule := range rules {
		if !rule.IsActive || rule.CountryID != countryID {
			continue
		}
		if serviceCode != "" && rule.ServiceCode != "" && rule.ServiceCode != serviceCode {
			continue
		}
		if rule.SpecialCase != "" && rule.SpecialCase != specialCase {
			continue
		}
		if rule.MatchesAge(ageMonths) {
			return rule, true
		}
	}
	return models.FeeRule{}, false
}
