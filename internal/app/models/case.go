package models

// Case is the external case-management record this service reads but
// never owns. Only the fields feeding fee computation and payment
// assembly are mapped from the backend response.
type Case struct {
	CaseNumber           string       `json:"case_number"`
	CaseManagementSystem string       `json:"case_management_system"`
	DestinationCountry   string       `json:"destination_country"`
	Clients              []CaseClient `json:"clients"`
}

type CaseClient struct {
	ClientID    string `json:"client_id"`
	Name        string `json:"name"`
	AgeYears    int    `json:"age_years"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}
