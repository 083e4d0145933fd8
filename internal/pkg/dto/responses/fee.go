package responses

type ResolveFee struct {
	CountryID       string  `json:"country_id"`
	ServiceCategory string  `json:"service_category"`
	AgeMonths       int     `json:"age_months"`
	FeeAmountUSD    float64 `json:"fee_amount_usd"`
	RuleID          string  `json:"rule_id,omitempty"`
}

type CashFee struct {
	CountryCode  string  `json:"country"`
	AgeYears     int     `json:"age"`
	FeeAmountUSD float64 `json:"fee_amount_usd"`
}

type ExchangeRate struct {
	CurrencyID string `json:"currency_id"`
	Value      string `json:"value"`
	AsOf       string `json:"as_of"`
}
