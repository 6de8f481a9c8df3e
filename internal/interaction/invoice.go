package interaction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/apierrors"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/entities"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/logging"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/winipayer"
)

func (s *serviceInteractor) CreateInvoice(ctx context.Context, invoice *entities.Invoice) (*winipayer.Response, error) {
	if invoice == nil {
		return nil, apierrors.NewBadRequest("no invoice provided")
	}

	b, err := s.newBuilder()
	if err != nil {
		return nil, err
	}

	if invoice.CustomerOwner != "" {
		if err := b.SetCustomerOwner(invoice.CustomerOwner); err != nil {
			return nil, mapError(err)
		}
	}
	if len(invoice.Channels) > 0 {
		b.SetChannel(invoice.Channels)
	}
	if len(invoice.CustomData) > 0 {
		b.SetCustomData(invoice.CustomData)
	}
	if len(invoice.Items) > 0 {
		if err := b.AddItems(invoice.Items); err != nil {
			return nil, mapError(err)
		}
	}

	resp, err := s.client.CreateInvoice(ctx, b, invoice.Amount, invoice.Description, invoice.Overrides())
	if err != nil {
		return nil, mapError(err)
	}

	if resp.Success {
		logging.LoggerFromContext(ctx).Info("created invoice over %s %s", invoice.Amount.String(), firstNonEmpty(invoice.Currency, b.Defaults().Currency))
	}

	return resp, nil
}

func (s *serviceInteractor) GetInvoice(ctx context.Context, uuid string) (*winipayer.Response, error) {
	b, err := s.newBuilder()
	if err != nil {
		return nil, err
	}

	resp, err := s.client.DetailInvoice(ctx, b, uuid)
	if err != nil {
		return nil, mapError(err)
	}

	return resp, nil
}

func (s *serviceInteractor) ValidateInvoice(ctx context.Context, uuid string, amount decimal.Decimal) (*entities.InvoiceValidation, error) {
	b, err := s.newBuilder()
	if err != nil {
		return nil, err
	}

	valid, err := s.client.ValidateInvoice(ctx, b, uuid, amount)
	if err != nil {
		return nil, mapError(err)
	}

	return &entities.InvoiceValidation{
		UUID:   uuid,
		Amount: amount,
		Valid:  valid,
	}, nil
}

// newBuilder sets up a builder with the configured merchant and defaults. Each
// call gets its own, builders must not be shared between requests.
func (s *serviceInteractor) newBuilder() (*winipayer.Builder, error) {
	c := s.conf

	b, err := winipayer.Configure(c.Env, c.ApplyKey, c.TokenKey, c.PrivateKey,
		winipayer.WithCurrency(c.Currency),
		winipayer.WithVersion(c.Version),
	)
	if err != nil {
		return nil, configurationFailure(err)
	}

	if c.BaseURL != "" {
		if err := b.SetEndpoint(c.BaseURL); err != nil {
			return nil, configurationFailure(err)
		}
	}

	defaultUrls := []struct {
		value string
		set   func(string) error
	}{
		{c.CancelURL, b.SetCancelUrl},
		{c.ReturnURL, b.SetReturnUrl},
		{c.CallbackURL, b.SetCallbackUrl},
	}
	for _, u := range defaultUrls {
		if u.value == "" {
			continue
		}
		if err := u.set(u.value); err != nil {
			return nil, configurationFailure(err)
		}
	}

	b.SetSecure(c.Secure)
	if len(c.Channels) > 0 {
		b.SetChannel(c.Channels)
	}

	return b, nil
}

func configurationFailure(err error) error {
	return apierrors.NewInternalServerError(fmt.Sprintf("winipayer merchant configuration unusable: %s", err.Error()))
}

// mapError turns client errors into api status errors. Anything that is neither
// a rejected input nor a setup problem came from talking to the payment provider.
func mapError(err error) error {
	switch {
	case winipayer.IsValidationError(err):
		return apierrors.NewBadRequest(err.Error())
	case winipayer.IsConfigurationError(err):
		return configurationFailure(err)
	case apierrors.AsAPIStatus(err) != nil:
		return err
	default:
		return apierrors.NewBadGateway(err.Error())
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
