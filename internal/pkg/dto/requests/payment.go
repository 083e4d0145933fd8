package requests

type ServiceChargeRequest struct {
	ServiceID    string  `json:"service_id" validate:"required"`
	ServiceCode  string  `json:"service_code" validate:"required"`
	ServiceName  string  `json:"service_name"`
	FeeAmountUSD float64 `json:"fee_amount_usd" validate:"gte=0"`
}

type ClientLineItemRequest struct {
	ClientID           string                 `json:"client_id" validate:"required"`
	Name               string                 `json:"name" validate:"required"`
	AgeYears           int                    `json:"age_years" validate:"gte=0"`
	BaseFeeUSD         float64                `json:"base_fee_usd" validate:"gte=0"`
	AdditionalServices []ServiceChargeRequest `json:"additional_services,omitempty" validate:"dive"`
}

type CreatePayment struct {
	CaseNumber           string                  `json:"case_number" validate:"required"`
	CaseManagementSystem string                  `json:"case_management_system" validate:"required"`
	TypeOfPayment        string                  `json:"type_of_payment" validate:"required,oneof=bank QR cash card"`
	ServiceType          string                  `json:"service_type" validate:"required"`
	Remarks              string                  `json:"remarks,omitempty"`
	BillNumber           string                  `json:"bill_number,omitempty"`
	Clients              []ClientLineItemRequest `json:"clients" validate:"required,min=1,dive"`
}

type VerifyPayment struct {
	Transport string `json:"transport" validate:"omitempty,oneof=http websocket"`
}
