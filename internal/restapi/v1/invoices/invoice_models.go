package v1invoices

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	Name string `json:"name"`
	// The numbers are taken as sent, non integer values are rejected per field.
	Quantity   json.Number `json:"quantity"`
	UnitPrice  json.Number `json:"unit_price"`
	TotalPrice json.Number `json:"total_price"`
}

// request and response types
type (
	// CreateInvoiceRequest opens an invoice. Everything except amount and
	// description falls back to the configured merchant defaults when omitted.
	CreateInvoiceRequest struct {
		Amount        decimal.Decimal        `json:"amount"`
		Description   string                 `json:"description"`
		Currency      string                 `json:"currency,omitempty"`
		CancelURL     string                 `json:"cancel_url,omitempty"`
		ReturnURL     string                 `json:"return_url,omitempty"`
		CallbackURL   string                 `json:"callback_url,omitempty"`
		Secure        *bool                  `json:"wpsecure,omitempty"`
		Channel       []string               `json:"channel,omitempty"`
		CustomerOwner string                 `json:"customer_owner,omitempty"`
		CustomData    map[string]interface{} `json:"custom_data,omitempty"`
		Items         []LineItem             `json:"items,omitempty"`
	}

	GetInvoiceRequest struct {
		UUID string
	}

	ValidateInvoiceRequest struct {
		UUID   string
		Amount decimal.Decimal
	}

	ValidateInvoiceResponse struct {
		UUID   string          `json:"uuid"`
		Amount decimal.Decimal `json:"amount"`
		Valid  bool            `json:"valid"`
	}
)
