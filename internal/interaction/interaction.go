package interaction

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/config"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/entities"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/winipayer"
)

var _ Interactor = (*serviceInteractor)(nil)

type Interactor interface {
	CreateInvoice(ctx context.Context, invoice *entities.Invoice) (*winipayer.Response, error)
	GetInvoice(ctx context.Context, uuid string) (*winipayer.Response, error)
	ValidateInvoice(ctx context.Context, uuid string, amount decimal.Decimal) (*entities.InvoiceValidation, error)
}

type serviceInteractor struct {
	client *winipayer.Client
	conf   config.WinipayerConfig
}

func NewServiceInteractor(transport winipayer.Transport, conf *config.WinipayerConfig) (Interactor, error) {
	if transport == nil {
		return nil, errors.New("no winipayer transport provided")
	}

	if conf == nil {
		return nil, errors.New("winipayer configuration must not be nil")
	}

	return &serviceInteractor{
		client: winipayer.NewClient(transport),
		conf:   *conf,
	}, nil
}
