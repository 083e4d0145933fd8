package requests

type ResolveFee struct {
	CountryID       string `json:"country_id" validate:"required"`
	ServiceCategory string `json:"service_category" validate:"required,oneof=medical_exam vaccination special_service"`
	ServiceCode     string `json:"service_code,omitempty"`
	AgeYears        int    `json:"age_years" validate:"gte=0"`
	SpecialCase     string `json:"special_case,omitempty"`
}

type CashFee struct {
	CountryCode  string `json:"country" validate:"required"`
	AgeYears     int    `json:"age" validate:"gte=0"`
	VisaSubclass string `json:"visa_subclass,omitempty"`
}
