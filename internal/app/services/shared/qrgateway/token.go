package qrgateway

import (
	"casepay-service/internal/pkg/exceptions"
	"strings"

	"github.com/shopspring/decimal"
)

// TokenParams are the ordered fields of the provider token string. The
// order is fixed by the QR provider and must never change:
// acquirerId, merchantId, merchantCategoryCode, transactionCurrency,
// amount, billNumber, userId.
type TokenParams struct {
	AcquirerID           string
	MerchantID           string
	MerchantCategoryCode string
	TransactionCurrency  string
	Amount               string
	BillNumber           string
	UserID               string
}

// BuildTokenString joins the token fields with commas, formatting the
// amount with exactly two decimal digits. A non-numeric amount is
// rejected before anything is signed or sent.
func BuildTokenString(params TokenParams) (string, error) {
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		return "", exceptions.ErrQrAmountNotNumeric(err)
	}

	fields := []string{
		params.AcquirerID,
		params.MerchantID,
		params.MerchantCategoryCode,
		params.TransactionCurrency,
		amount.StringFixed(2),
		params.BillNumber,
		params.UserID,
	}
	return strings.Join(fields, ","), nil
}
