package fees

import (
	"testing"

	"casepay-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestResolveRuleFee(t *testing.T) {
	rules := []models.FeeRule{
		{ID: "infant", CountryID: "US", ServiceCode: "IME", IsActive: true, MaxAgeMonths: intPtr(23), FeeAmountUSD: 100.00},
		{ID: "child", CountryID: "US", ServiceCode: "IME", IsActive: true, MinAgeMonths: intPtr(24), MaxAgeMonths: intPtr(179), FeeAmountUSD: 125.00},
		{ID: "adult", CountryID: "US", ServiceCode: "IME", IsActive: true, MinAgeMonths: intPtr(180), FeeAmountUSD: 143.00},
		{ID: "retired", CountryID: "US", ServiceCode: "IME", IsActive: false, FeeAmountUSD: 1.00},
		{ID: "au-student", CountryID: "AU", ServiceCode: "AIME", IsActive: true, SpecialCase: "590", FeeAmountUSD: 120.00},
		{ID: "au-universal", CountryID: "AU", ServiceCode: "AIME", IsActive: true, FeeAmountUSD: 150.00},
	}

	t.Run("age in years converts to months before matching", func(t *testing.T) {
		rule, found := ResolveRuleFee(rules, "US", 30, "IME", "")
		assert.True(t, found)
		assert.Equal(t, "adult", rule.ID)
		assert.Equal(t, 143.00, rule.FeeAmountUSD)
	})

	t.Run("bracket bounds are inclusive", func(t *testing.T) {
		rule, found := ResolveRuleFee(rules, "US", 1, "IME", "")
		assert.True(t, found)
		assert.Equal(t, "infant", rule.ID)

		// 14 years = 168 months, inside [24,179]
		rule, found = ResolveRuleFee(rules, "US", 14, "IME", "")
		assert.True(t, found)
		assert.Equal(t, "child", rule.ID)

		// 15 years = 180 months, the adult lower bound
		rule, found = ResolveRuleFee(rules, "US", 15, "IME", "")
		assert.True(t, found)
		assert.Equal(t, "adult", rule.ID)
	})

	t.Run("inactive rules never match", func(t *testing.T) {
		rule, found := ResolveRuleFee([]models.FeeRule{
			{ID: "off", CountryID: "US", IsActive: false, FeeAmountUSD: 9.99},
		}, "US", 30, "", "")
		assert.False(t, found)
		assert.Zero(t, rule.FeeAmountUSD)
	})

	t.Run("no match means fee unknown, not zero", func(t *testing.T) {
		_, found := ResolveRuleFee(rules, "CA", 30, "IME", "")
		assert.False(t, found)
	})

	t.Run("special case rule only matches its flag", func(t *testing.T) {
		rule, found := ResolveRuleFee(rules, "AU", 30, "AIME", "590")
		assert.True(t, found)
		assert.Equal(t, "au-student", rule.ID)

		rule, found = ResolveRuleFee(rules, "AU", 30, "AIME", "")
		assert.True(t, found)
		assert.Equal(t, "au-universal", rule.ID)
	})

	t.Run("first match in table order wins", func(t *testing.T) {
		overlapping := []models.FeeRule{
			{ID: "first", CountryID: "US", IsActive: true, MinAgeMonths: intPtr(0), MaxAgeMonths: intPtr(600), FeeAmountUSD: 10.00},
			{ID: "second", CountryID: "US", IsActive: true, MinAgeMonths: intPtr(0), MaxAgeMonths: intPtr(600), FeeAmountUSD: 20.00},
		}
		rule, found := ResolveRuleFee(overlapping, "US", 10, "", "")
		assert.True(t, found)
		assert.Equal(t, "first", rule.ID)
	})

	t.Run("service code filter narrows candidates", func(t *testing.T) {
		coded := []models.FeeRule{
			{ID: "flu", CountryID: "US", ServiceCode: "VAC-FLU", IsActive: true, FeeAmountUSD: 25.00},
			{ID: "mmr", CountryID: "US", ServiceCode: "VAC-MMR", IsActive: true, FeeAmountUSD: 40.00},
		}
		rule, found := ResolveRuleFee(coded, "US", 5, "VAC-MMR", "")
		assert.True(t, found)
		assert.Equal(t, "mmr", rule.ID)
	})
}
