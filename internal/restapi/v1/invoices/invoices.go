package v1invoices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/apierrors"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/interaction"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/logging"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/restapi/common"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/winipayer"
)

type invoiceHandler struct {
	interactor interaction.Interactor
}

func Create(router chi.Router, i interaction.Interactor) {
	handler := invoiceHandler{
		interactor: i,
	}

	router.Post("/invoices",
		common.CreateHandler(handler.createInvoice, createInvoiceRequestHandler, createInvoiceResponseHandler))
	router.Get("/invoices/{uuid}",
		common.CreateHandler(handler.getInvoice, getInvoiceRequestHandler, getInvoiceResponseHandler))
	router.Get("/invoices/{uuid}/validation",
		common.CreateHandler(handler.validateInvoice, validateInvoiceRequestHandler, validateInvoiceResponseHandler))
}

func (h *invoiceHandler) createInvoice(ctx context.Context, request *CreateInvoiceRequest, logger logging.Logger) (*winipayer.Response, error) {
	invoice, err := InvoiceFrom(request)
	if err != nil {
		return nil, apierrors.NewBadRequest(err.Error())
	}

	return h.interactor.CreateInvoice(ctx, invoice)
}

func createInvoiceRequestHandler(r *http.Request) (*CreateInvoiceRequest, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	request := &CreateInvoiceRequest{}
	if err := dec.Decode(request); err != nil {
		return nil, fmt.Errorf("invalid invoice json: %w", err)
	}

	return request, nil
}

// createInvoiceResponseHandler passes the provider's answer on. A refusal is
// still a well formed answer, its error details are in the body.
func createInvoiceResponseHandler(ctx context.Context, res *winipayer.Response, w http.ResponseWriter) error {
	status := http.StatusCreated
	if !res.Success {
		status = http.StatusUnprocessableEntity
	}
	common.SendJSON(w, status, res.Body, logging.LoggerFromContext(ctx))
	return nil
}

func (h *invoiceHandler) getInvoice(ctx context.Context, request *GetInvoiceRequest, logger logging.Logger) (*winipayer.Response, error) {
	return h.interactor.GetInvoice(ctx, request.UUID)
}

func getInvoiceRequestHandler(r *http.Request) (*GetInvoiceRequest, error) {
	return &GetInvoiceRequest{
		UUID: chi.URLParam(r, "uuid"),
	}, nil
}

func getInvoiceResponseHandler(ctx context.Context, res *winipayer.Response, w http.ResponseWriter) error {
	status := http.StatusOK
	if !res.Success {
		status = http.StatusNotFound
	}
	common.SendJSON(w, status, res.Body, logging.LoggerFromContext(ctx))
	return nil
}

func (h *invoiceHandler) validateInvoice(ctx context.Context, request *ValidateInvoiceRequest, logger logging.Logger) (*ValidateInvoiceResponse, error) {
	result, err := h.interactor.ValidateInvoice(ctx, request.UUID, request.Amount)
	if err != nil {
		return nil, err
	}

	if !result.Valid {
		logger.Info("payment for invoice %s could not be confirmed", request.UUID)
	}

	return ValidateInvoiceResponseFrom(result), nil
}

func validateInvoiceRequestHandler(r *http.Request) (*ValidateInvoiceRequest, error) {
	rawAmount := r.URL.Query().Get("amount")
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount query parameter %q", rawAmount)
	}

	return &ValidateInvoiceRequest{
		UUID:   chi.URLParam(r, "uuid"),
		Amount: amount,
	}, nil
}

func validateInvoiceResponseHandler(ctx context.Context, res *ValidateInvoiceResponse, w http.ResponseWriter) error {
	common.SendJSON(w, http.StatusOK, res, logging.LoggerFromContext(ctx))
	return nil
}
