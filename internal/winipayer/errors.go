package winipayer

import (
	"errors"
	"fmt"
)

type ValidationKind string

const (
	InvalidUrl            ValidationKind = "InvalidUrl"
	InvalidUuid           ValidationKind = "InvalidUuid"
	InvalidItemName       ValidationKind = "InvalidItemName"
	InvalidItemQuantity   ValidationKind = "InvalidItemQuantity"
	InvalidItemUnitPrice  ValidationKind = "InvalidItemUnitPrice"
	InvalidItemTotalPrice ValidationKind = "InvalidItemTotalPrice"
	InvalidAmount         ValidationKind = "InvalidAmount"
)

// ValidationError is returned synchronously by the builder whenever a value
// handed to it cannot end up in a request.
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("winipayer: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("winipayer: %s: %s: %s", e.Kind, e.Field, e.Message)
}

func newValidationError(kind ValidationKind, field string, format string, v ...interface{}) error {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, v...),
	}
}

// ConfigurationError signals an unusable merchant setup.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "winipayer: configuration error: " + e.Message
}

var (
	ErrMalformedResponse = errors.New("winipayer: response body is not a json object")
)

// IsValidationError reports whether err is a ValidationError of one of the given
// kinds. Without kinds, any ValidationError matches.
func IsValidationError(err error, kinds ...ValidationKind) bool {
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		return false
	}
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if vErr.Kind == k {
			return true
		}
	}
	return false
}

func IsConfigurationError(err error) bool {
	var cErr *ConfigurationError
	return errors.As(err, &cErr)
}
