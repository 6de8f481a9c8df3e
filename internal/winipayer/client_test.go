package winipayer

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	method string
	url    string
	form   url.Values
	header http.Header
}

type mockTransport struct {
	body  []byte
	err   error
	calls []recordedCall
}

func (m *mockTransport) Execute(_ context.Context, method string, fullUrl string, form url.Values, header http.Header) ([]byte, error) {
	m.calls = append(m.calls, recordedCall{method: method, url: fullUrl, form: form, header: header})
	return m.body, m.err
}

func validDetailBody() []byte {
	return []byte(`{"success":true,"results":{"uuid":"` + testUUID + `","hash":"` + PrivateKeyHash(testPrivateKey) +
		`","env":"test","state":"success","amount":1500}}`)
}

func clientBuilder(t *testing.T) *Builder {
	b, err := Configure("test", "apply-key", "token-key", testPrivateKey)
	require.NoError(t, err)
	return b
}

func TestCreateInvoiceSendsBuiltRequest(t *testing.T) {
	transport := &mockTransport{body: []byte(`{"success":true,"results":{"invoice":{"uuid":"` + testUUID + `"}}}`)}
	client := NewClient(transport)

	resp, err := client.CreateInvoice(context.Background(), clientBuilder(t), decimal.NewFromInt(1000), "Ticket", Overrides{})
	require.NoError(t, err)
	require.True(t, resp.Success)

	require.Len(t, transport.calls, 1)
	call := transport.calls[0]
	require.Equal(t, http.MethodPost, call.method)
	require.Equal(t, "https://api.winipayer.com/transaction/invoice/v1/create", call.url)
	require.Equal(t, "1000", call.form.Get("amount"))
	require.Equal(t, "apply-key", call.header.Get(HeaderMerchantApply))
}

func TestCreateInvoiceRefusedIsNoError(t *testing.T) {
	transport := &mockTransport{body: []byte(`{"success":false,"errors":{"msg":"nope"}}`)}
	client := NewClient(transport)

	resp, err := client.CreateInvoice(context.Background(), clientBuilder(t), decimal.NewFromInt(1000), "Ticket", Overrides{})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.NotNil(t, resp.Body["errors"])
}

func TestCreateInvoiceInvalidInputNeverReachesTransport(t *testing.T) {
	transport := &mockTransport{}
	client := NewClient(transport)

	_, err := client.CreateInvoice(context.Background(), clientBuilder(t), decimal.Zero, "Ticket", Overrides{})
	require.True(t, IsValidationError(err, InvalidAmount))
	require.Empty(t, transport.calls)
}

func TestDetailInvoice(t *testing.T) {
	transport := &mockTransport{body: validDetailBody()}
	client := NewClient(transport)

	resp, err := client.DetailInvoice(context.Background(), clientBuilder(t), testUUID)
	require.NoError(t, err)
	require.Equal(t, testUUID, resp.Detail().UUID)
	require.Equal(t, "https://api.winipayer.com/transaction/invoice/detail/"+testUUID, transport.calls[0].url)

	_, err = client.DetailInvoice(context.Background(), clientBuilder(t), "kittycat")
	require.True(t, IsValidationError(err, InvalidUuid))
	require.Len(t, transport.calls, 1)
}

func TestValidateInvoice(t *testing.T) {
	tests := []struct {
		name        string
		body        []byte
		transErr    error
		amount      int64
		expected    bool
		expectedErr bool
	}{
		{name: "paid", body: validDetailBody(), amount: 1500, expected: true},
		{name: "underpaid", body: validDetailBody(), amount: 1501, expected: false},
		{name: "malformed body is not trusted", body: []byte("<html>"), amount: 1, expected: false},
		{name: "transport failure", transErr: errors.New("connection refused"), amount: 1, expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(&mockTransport{body: tt.body, err: tt.transErr})

			valid, err := client.ValidateInvoice(context.Background(), clientBuilder(t), testUUID, decimal.NewFromInt(tt.amount))
			if tt.expectedErr {
				require.Error(t, err)
				require.False(t, valid)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, valid)
		})
	}
}

func TestValidateInvoiceEnvMismatch(t *testing.T) {
	b, err := Configure("prod", "apply-key", "token-key", testPrivateKey)
	require.NoError(t, err)

	client := NewClient(&mockTransport{body: validDetailBody()})
	valid, err := client.ValidateInvoice(context.Background(), b, testUUID, decimal.NewFromInt(1000))
	require.NoError(t, err)
	require.False(t, valid)
}
