package responses

type DailyCashRow struct {
	CaseNumber    string  `json:"case_number"`
	TransactionID string  `json:"transaction_id"`
	ServiceType   string  `json:"service_type"`
	AmountUSD     float64 `json:"amount_usd"`
	AmountLocal   float64 `json:"amount_local"`
}

type DailyCashReport struct {
	Date        string         `json:"date"`
	Rows        []DailyCashRow `json:"rows"`
	TotalUSD    float64        `json:"total_usd"`
	TotalLocal  float64        `json:"total_local"`
	RecordCount int            `json:"record_count"`
}

type IncomeRow struct {
	ServiceType string  `json:"service_type"`
	Count       int     `json:"count"`
	TotalUSD    float64 `json:"total_usd"`
}

type IncomeReport struct {
	From     string      `json:"from"`
	To       string      `json:"to"`
	Rows     []IncomeRow `json:"rows"`
	TotalUSD float64     `json:"total_usd"`
}

type VaccinationRow struct {
	ServiceCode string  `json:"service_code"`
	ServiceName string  `json:"service_name"`
	Count       int     `json:"count"`
	TotalUSD    float64 `json:"total_usd"`
}

type VaccinationReport struct {
	From string           `json:"from"`
	To   string           `json:"to"`
	Rows []VaccinationRow `json:"rows"`
}

type ReportExport struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
}
