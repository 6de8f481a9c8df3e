package entities

import (
	"github.com/shopspring/decimal"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/winipayer"
)

// Invoice is what a caller asks us to open with the payment provider. Empty
// fields fall back to the configured merchant defaults.
type Invoice struct {
	Amount        decimal.Decimal
	Description   string
	Currency      string
	CancelURL     string
	ReturnURL     string
	CallbackURL   string
	Secure        *bool
	Channels      []string
	CustomerOwner string
	CustomData    map[string]interface{}
	Items         []winipayer.LineItem
}

func (i *Invoice) Overrides() winipayer.Overrides {
	return winipayer.Overrides{
		CancelURL:   i.CancelURL,
		ReturnURL:   i.ReturnURL,
		CallbackURL: i.CallbackURL,
		Currency:    i.Currency,
		Secure:      i.Secure,
	}
}

type InvoiceValidation struct {
	UUID   string
	Amount decimal.Decimal
	Valid  bool
}
