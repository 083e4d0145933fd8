package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus int

const (
	// StatusInitiated covers both "not yet paid" and "attempt failed";
	// the external systems reading these records expect that conflation.
	StatusInitiated PaymentStatus = 1
	StatusPaid      PaymentStatus = 2
)

// CanTransition reports whether moving to next is a legal lifecycle
// step. Transitions are one-directional: a paid record never goes back
// to initiated, and paid is terminal.
func (s PaymentStatus) CanTransition(next PaymentStatus) bool {
	return s == StatusInitiated && next == StatusPaid
}

func (s PaymentStatus) Terminal() bool {
	return s == StatusPaid
}

type PaymentType string

const (
	PaymentTypeBank PaymentType = "bank"
	PaymentTypeQR   PaymentType = "QR"
	PaymentTypeCash PaymentType = "cash"
	PaymentTypeCard PaymentType = "card"
)

type ServiceCharge struct {
	ServiceID    string  `json:"service_id" bson:"service_id"`
	ServiceCode  string  `json:"service_code" bson:"service_code"`
	ServiceName  string  `json:"service_name" bson:"service_name"`
	FeeAmountUSD float64 `json:"fee_amount_usd" bson:"fee_amount_usd"`
}

type ClientLineItem struct {
	ClientID           string          `json:"client_id" bson:"client_id"`
	Name               string          `json:"name" bson:"name"`
	AgeYears           int             `json:"age_years" bson:"age_years"`
	BaseFeeUSD         float64         `json:"base_fee_usd" bson:"base_fee_usd"`
	AdditionalServices []ServiceCharge `json:"additional_services,omitempty" bson:"additional_services,omitempty"`
}

// Total is the client's base fee plus every added service charge.
func (c ClientLineItem) Total() decimal.Decimal {
	total := decimal.NewFromFloat(c.BaseFeeUSD)
	for _, service := range c.AdditionalServices {
		total = total.Add(decimal.NewFromFloat(service.FeeAmountUSD))
	}
	return total
}

// GrandTotalUSD sums every selected client's line-item total. It is
// recomputed from the line items on every call; totals are never cached.
func GrandTotalUSD(clients []ClientLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, client := range clients {
		total = total.Add(client.Total())
	}
	return total
}

type PayerInfo struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty"`
	Mobile   string `json:"mobile,omitempty" bson:"mobile,omitempty"`
	Merchant string `json:"merchant,omitempty" bson:"merchant,omitempty"`
}

type Payment struct {
	ID                    string           `json:"id,omitempty" bson:"_id,omitempty"`
	CaseNumber            string           `json:"case_number" bson:"case_number"`
	CaseManagementSystem  string           `json:"case_management_system" bson:"case_management_system"`
	TypeOfPayment         PaymentType      `json:"type_of_payment" bson:"type_of_payment"`
	Status                PaymentStatus    `json:"status" bson:"status"`
	AmountInDollar        float64          `json:"amount_in_dollar" bson:"amount_in_dollar"`
	AmountInLocalCurrency float64          `json:"amount_in_local_currency" bson:"amount_in_local_currency"`
	ExchangeRate          float64          `json:"exchange_rate" bson:"exchange_rate"`
	PaidAmount            float64          `json:"paidAmount,omitempty" bson:"paidAmount,omitempty"`
	TransactionID         string           `json:"transaction_id" bson:"transaction_id"`
	ValidationTraceID     string           `json:"validationTraceId,omitempty" bson:"validationTraceId,omitempty"`
	QRString              string           `json:"qr_string,omitempty" bson:"qr_string,omitempty"`
	QRTimestamp           string           `json:"qr_timestamp,omitempty" bson:"qr_timestamp,omitempty"`
	PayerInfo             *PayerInfo       `json:"payerInfo,omitempty" bson:"payerInfo,omitempty"`
	Clients               []ClientLineItem `json:"clients" bson:"clients"`
	ServiceType           string           `json:"service_type" bson:"service_type"`
	Remarks               string           `json:"remarks,omitempty" bson:"remarks,omitempty"`
	DateOfPayment         time.Time        `json:"date_of_payment" bson:"date_of_payment"`
	DateCreated           time.Time        `json:"date_created" bson:"date_created"`
}
