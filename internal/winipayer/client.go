package winipayer

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/logging"
)

// Transport sends a form post and hands back the raw response body. Its errors
// reach the caller unchanged, retries are its own business.
type Transport interface {
	Execute(ctx context.Context, method string, fullUrl string, form url.Values, header http.Header) ([]byte, error)
}

type Client struct {
	transport Transport
}

func NewClient(transport Transport) *Client {
	return &Client{
		transport: transport,
	}
}

func (c *Client) Execute(ctx context.Context, req *Request) (*Response, error) {
	body, err := c.transport.Execute(ctx, req.Method, req.URL, req.Form, req.Header)
	if err != nil {
		return nil, err
	}
	return ParseResponse(body)
}

func (c *Client) CreateInvoice(ctx context.Context, b *Builder, amount decimal.Decimal, description string, overrides Overrides) (*Response, error) {
	req, err := b.BuildCreateInvoiceRequest(amount, description, overrides)
	if err != nil {
		return nil, err
	}

	resp, err := c.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		logging.LoggerFromContext(ctx).Warn("winipayer refused invoice creation for amount %s", amount.String())
	}
	return resp, nil
}

func (c *Client) DetailInvoice(ctx context.Context, b *Builder, uuid string) (*Response, error) {
	req, err := b.BuildDetailInvoiceRequest(uuid)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, req)
}

// ValidateInvoice looks up the invoice and applies Validate with the builder's
// merchant. Only an invalid uuid or a transport failure is an error, a response
// that cannot be decoded is not trusted.
func (c *Client) ValidateInvoice(ctx context.Context, b *Builder, uuid string, amount decimal.Decimal) (bool, error) {
	resp, err := c.DetailInvoice(ctx, b, uuid)
	if err != nil {
		if errors.Is(err, ErrMalformedResponse) {
			logging.LoggerFromContext(ctx).Warn("untrusted detail response for invoice %s: %s", uuid, err.Error())
			return false, nil
		}
		return false, err
	}

	merchant := b.Merchant()
	valid := Validate(resp, uuid, amount, merchant.PrivateKey, merchant.Env)
	if !valid {
		logging.LoggerFromContext(ctx).Info("invoice %s does not confirm a payment of %s", uuid, amount.String())
	}
	return valid, nil
}
