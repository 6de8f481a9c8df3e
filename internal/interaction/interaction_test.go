package interaction

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/apierrors"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/config"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/entities"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/winipayer"
)

const (
	invoiceUUID = "550e8400-e29b-41d4-a716-446655440000"
	privateKey  = "merchant-private-key"
)

func winipayerConfig() config.WinipayerConfig {
	return config.WinipayerConfig{
		Env:         "test",
		BaseURL:     "https://sandbox.example.com",
		Version:     "v1",
		ApplyKey:    "apply-key",
		TokenKey:    "token-key",
		PrivateKey:  privateKey,
		Currency:    "xof",
		Secure:      true,
		Channels:    []string{"wave-ci"},
		CancelURL:   "https://shop.example.com/cancel",
		ReturnURL:   "https://shop.example.com/return",
		CallbackURL: "https://shop.example.com/callback",
	}
}

func newTestInteractor(t *testing.T, transport *TransportMock, conf config.WinipayerConfig) Interactor {
	i, err := NewServiceInteractor(transport, &conf)
	require.NoError(t, err)
	return i
}

func TestNewServiceInteractor(t *testing.T) {
	conf := winipayerConfig()

	tests := []struct {
		name      string
		transport winipayer.Transport
		conf      *config.WinipayerConfig
		err       error
	}{
		{
			name: "should return error when transport is missing",
			conf: &conf,
			err:  errors.New("no winipayer transport provided"),
		},
		{
			name:      "should return error when configuration is missing",
			transport: &TransportMock{},
			err:       errors.New("winipayer configuration must not be nil"),
		},
		{
			name:      "should succeed when all values are set",
			transport: &TransportMock{},
			conf:      &conf,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := NewServiceInteractor(tt.transport, tt.conf)
			if tt.err != nil {
				require.EqualError(t, err, tt.err.Error())
				require.Nil(t, i)
			} else {
				require.NoError(t, err)
				require.NotNil(t, i)
			}
		})
	}
}

func TestCreateInvoiceUsesConfiguredDefaults(t *testing.T) {
	transport := &TransportMock{body: []byte(`{"success":true,"results":{"invoice":{"uuid":"` + invoiceUUID + `"}}}`)}
	i := newTestInteractor(t, transport, winipayerConfig())

	resp, err := i.CreateInvoice(context.Background(), &entities.Invoice{
		Amount:      decimal.NewFromInt(2500),
		Description: "Registration",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	require.Len(t, transport.calls, 1)
	call := transport.calls[0]
	require.Equal(t, "https://sandbox.example.com/transaction/invoice/v1/create", call.url)
	require.Equal(t, "test", call.form.Get("env"))
	require.Equal(t, "2500", call.form.Get("amount"))
	require.Equal(t, "true", call.form.Get("wpsecure"))
	require.Equal(t, "xof", call.form.Get("currency"))
	require.Equal(t, "https://shop.example.com/cancel", call.form.Get("cancel_url"))
	require.Equal(t, "https://shop.example.com/return", call.form.Get("return_url"))
	require.Equal(t, "https://shop.example.com/callback", call.form.Get("callback_url"))
	require.Equal(t, `["wave-ci"]`, call.form.Get("channel"))
	require.Equal(t, "apply-key", call.header.Get(winipayer.HeaderMerchantApply))
	require.Equal(t, "token-key", call.header.Get(winipayer.HeaderMerchantToken))
}

func TestCreateInvoiceRequestValuesWin(t *testing.T) {
	transport := &TransportMock{body: []byte(`{"success":true}`)}
	i := newTestInteractor(t, transport, winipayerConfig())
	secure := false

	_, err := i.CreateInvoice(context.Background(), &entities.Invoice{
		Amount:        decimal.NewFromInt(1000),
		Description:   "Registration",
		Currency:      "eur",
		ReturnURL:     "https://other.example.com/return",
		Secure:        &secure,
		Channels:      []string{"mtn-ci", "orange-ci"},
		CustomerOwner: invoiceUUID,
		CustomData:    map[string]interface{}{"badge": "1234"},
		Items:         []winipayer.LineItem{{Name: "Ticket", Quantity: 2, UnitPrice: 500, TotalPrice: 1000}},
	})
	require.NoError(t, err)

	form := transport.calls[0].form
	require.Equal(t, "eur", form.Get("currency"))
	require.Equal(t, "https://other.example.com/return", form.Get("return_url"))
	require.Equal(t, "https://shop.example.com/cancel", form.Get("cancel_url"))
	require.Equal(t, "false", form.Get("wpsecure"))
	require.Equal(t, `["mtn-ci","orange-ci"]`, form.Get("channel"))
	require.Equal(t, invoiceUUID, form.Get("customer_owner"))

	var items []winipayer.LineItem
	require.NoError(t, json.Unmarshal([]byte(form.Get("items")), &items))
	require.Equal(t, "Ticket", items[0].Name)
}

func TestCreateInvoiceValidationErrorsAreBadRequests(t *testing.T) {
	tests := []struct {
		name    string
		invoice *entities.Invoice
	}{
		{name: "missing invoice"},
		{name: "zero amount", invoice: &entities.Invoice{Description: "x"}},
		{name: "bad customer owner", invoice: &entities.Invoice{Amount: decimal.NewFromInt(1), CustomerOwner: "kittycat"}},
		{name: "bad item", invoice: &entities.Invoice{Amount: decimal.NewFromInt(1), Items: []winipayer.LineItem{{Name: "Ticket", Quantity: 2, UnitPrice: 500, TotalPrice: 1}}}},
		{name: "bad override url", invoice: &entities.Invoice{Amount: decimal.NewFromInt(1), CallbackURL: "ftp://nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &TransportMock{}
			i := newTestInteractor(t, transport, winipayerConfig())

			_, err := i.CreateInvoice(context.Background(), tt.invoice)
			require.True(t, apierrors.IsBadRequestError(err), "expected bad request, got %v", err)
			require.Empty(t, transport.calls)
		})
	}
}

func TestCreateInvoiceTransportFailureIsBadGateway(t *testing.T) {
	transport := &TransportMock{err: errors.New("connection refused")}
	i := newTestInteractor(t, transport, winipayerConfig())

	_, err := i.CreateInvoice(context.Background(), &entities.Invoice{Amount: decimal.NewFromInt(1)})
	require.True(t, apierrors.IsBadGatewayError(err))
}

func TestCreateInvoiceMalformedResponseIsBadGateway(t *testing.T) {
	transport := &TransportMock{body: []byte("<html>oops</html>")}
	i := newTestInteractor(t, transport, winipayerConfig())

	_, err := i.CreateInvoice(context.Background(), &entities.Invoice{Amount: decimal.NewFromInt(1)})
	require.True(t, apierrors.IsBadGatewayError(err))
}

func TestBrokenMerchantConfigurationIsInternalError(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *config.WinipayerConfig)
	}{
		{name: "missing private key", modify: func(c *config.WinipayerConfig) { c.PrivateKey = "" }},
		{name: "bad base url", modify: func(c *config.WinipayerConfig) { c.BaseURL = "kittycat" }},
		{name: "bad callback url", modify: func(c *config.WinipayerConfig) { c.CallbackURL = "/relative" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := winipayerConfig()
			tt.modify(&conf)
			transport := &TransportMock{}
			i := newTestInteractor(t, transport, conf)

			_, err := i.GetInvoice(context.Background(), invoiceUUID)
			require.True(t, apierrors.IsInternalServerError(err), "expected internal error, got %v", err)
			require.Empty(t, transport.calls)
		})
	}
}

func TestGetInvoice(t *testing.T) {
	transport := &TransportMock{body: []byte(`{"success":true,"results":{"uuid":"` + invoiceUUID + `","state":"pending"}}`)}
	i := newTestInteractor(t, transport, winipayerConfig())

	resp, err := i.GetInvoice(context.Background(), invoiceUUID)
	require.NoError(t, err)
	require.Equal(t, "pending", resp.Detail().State)
	require.Equal(t, "https://sandbox.example.com/transaction/invoice/detail/"+invoiceUUID, transport.calls[0].url)

	_, err = i.GetInvoice(context.Background(), "kittycat")
	require.True(t, apierrors.IsBadRequestError(err))
}

func TestValidateInvoice(t *testing.T) {
	body := []byte(`{"success":true,"results":{"uuid":"` + invoiceUUID + `","hash":"` + winipayer.PrivateKeyHash(privateKey) +
		`","env":"test","state":"success","amount":"2500.00"}}`)

	tests := []struct {
		name     string
		amount   string
		expected bool
	}{
		{name: "paid in full", amount: "2500", expected: true},
		{name: "paid more than asked", amount: "2000.50", expected: true},
		{name: "paid too little", amount: "2500.01", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := newTestInteractor(t, &TransportMock{body: body}, winipayerConfig())

			result, err := i.ValidateInvoice(context.Background(), invoiceUUID, decimal.RequireFromString(tt.amount))
			require.NoError(t, err)
			require.Equal(t, tt.expected, result.Valid)
			require.Equal(t, invoiceUUID, result.UUID)
			require.True(t, decimal.RequireFromString(tt.amount).Equal(result.Amount))
		})
	}
}

func TestValidateInvoiceErrors(t *testing.T) {
	i := newTestInteractor(t, &TransportMock{err: errors.New("timeout")}, winipayerConfig())

	_, err := i.ValidateInvoice(context.Background(), invoiceUUID, decimal.NewFromInt(1))
	require.True(t, apierrors.IsBadGatewayError(err))

	_, err = i.ValidateInvoice(context.Background(), "kittycat", decimal.NewFromInt(1))
	require.True(t, apierrors.IsBadRequestError(err))
}
