package winipayer

import "fmt"

type LineItem struct {
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	TotalPrice int64  `json:"total_price"`
}

// ValidateItem checks the fields in the order name, quantity, total price and
// reports the first violation. Unit prices may be negative, e.g. for discount lines.
func ValidateItem(item LineItem) error {
	if len(item.Name) < 2 {
		return newValidationError(InvalidItemName, "name", "item name must be at least 2 characters long")
	}
	if item.Quantity < 0 {
		return newValidationError(InvalidItemQuantity, "quantity", "item quantity must not be negative, got %d", item.Quantity)
	}
	if !totalMatches(item) {
		return newValidationError(InvalidItemTotalPrice, "total_price", "item total price %d does not equal %d x %d", item.TotalPrice, item.Quantity, item.UnitPrice)
	}
	return nil
}

func totalMatches(item LineItem) bool {
	if item.Quantity == 0 || item.UnitPrice == 0 {
		return item.TotalPrice == 0
	}
	product := item.Quantity * item.UnitPrice
	// overflowed products never match
	if product/item.Quantity != item.UnitPrice {
		return false
	}
	return product == item.TotalPrice
}

// ValidateItems validates a whole batch and returns the first error, wrapped with the
// index of the offending item.
func ValidateItems(items []LineItem) error {
	for i, item := range items {
		if err := ValidateItem(item); err != nil {
			vErr := err.(*ValidationError)
			vErr.Field = itemField(i, vErr.Field)
			return vErr
		}
	}
	return nil
}

func itemField(index int, field string) string {
	return fmt.Sprintf("items[%d].%s", index, field)
}
