package v1invoices

import (
	"encoding/json"
	"fmt"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/entities"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/winipayer"
)

func InvoiceFrom(req *CreateInvoiceRequest) (*entities.Invoice, error) {
	items, err := lineItemsFrom(req.Items)
	if err != nil {
		return nil, err
	}

	return &entities.Invoice{
		Amount:        req.Amount,
		Description:   req.Description,
		Currency:      req.Currency,
		CancelURL:     req.CancelURL,
		ReturnURL:     req.ReturnURL,
		CallbackURL:   req.CallbackURL,
		Secure:        req.Secure,
		Channels:      req.Channel,
		CustomerOwner: req.CustomerOwner,
		CustomData:    req.CustomData,
		Items:         items,
	}, nil
}

func ValidateInvoiceResponseFrom(v *entities.InvoiceValidation) *ValidateInvoiceResponse {
	return &ValidateInvoiceResponse{
		UUID:   v.UUID,
		Amount: v.Amount,
		Valid:  v.Valid,
	}
}

func lineItemsFrom(items []LineItem) ([]winipayer.LineItem, error) {
	result := make([]winipayer.LineItem, 0, len(items))
	for i, item := range items {
		quantity, err := integerField(item.Quantity, i, "quantity", winipayer.InvalidItemQuantity)
		if err != nil {
			return nil, err
		}
		unitPrice, err := integerField(item.UnitPrice, i, "unit_price", winipayer.InvalidItemUnitPrice)
		if err != nil {
			return nil, err
		}
		totalPrice, err := integerField(item.TotalPrice, i, "total_price", winipayer.InvalidItemTotalPrice)
		if err != nil {
			return nil, err
		}

		result = append(result, winipayer.LineItem{
			Name:       item.Name,
			Quantity:   quantity,
			UnitPrice:  unitPrice,
			TotalPrice: totalPrice,
		})
	}
	return result, nil
}

func integerField(n json.Number, index int, field string, kind winipayer.ValidationKind) (int64, error) {
	v, err := n.Int64()
	if err != nil {
		return 0, &winipayer.ValidationError{
			Kind:    kind,
			Field:   fmt.Sprintf("items[%d].%s", index, field),
			Message: fmt.Sprintf("%q is not an integer", n.String()),
		}
	}
	return v, nil
}
