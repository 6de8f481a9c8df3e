package winipayer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Defaults are the builder level values used whenever a create invoice call
// does not override them.
type Defaults struct {
	CancelURL   string
	ReturnURL   string
	CallbackURL string
	Currency    string
	Secure      bool
}

// Overrides are optional per call values. Empty strings and a nil Secure fall
// back to the builder's Defaults.
type Overrides struct {
	CancelURL   string
	ReturnURL   string
	CallbackURL string
	Currency    string
	Secure      *bool
}

// Builder accumulates merchant and invoice level state. It is not safe for
// concurrent use, give every invoice flow its own instance.
type Builder struct {
	merchant      MerchantConfig
	defaults      Defaults
	channels      []string
	customerOwner string
	customData    map[string]interface{}
	items         []LineItem
}

// Configure creates a builder for the given merchant. An unknown env silently
// becomes test, empty keys are a ConfigurationError.
func Configure(env, applyKey, tokenKey, privateKey string, opts ...MerchantOption) (*Builder, error) {
	merchant, err := NewMerchantConfig(env, applyKey, tokenKey, privateKey, opts...)
	if err != nil {
		return nil, err
	}
	return NewBuilder(merchant), nil
}

func NewBuilder(merchant MerchantConfig) *Builder {
	return &Builder{
		merchant: merchant,
		defaults: Defaults{
			Currency: merchant.Currency,
		},
	}
}

func (b *Builder) Merchant() MerchantConfig {
	return b.merchant
}

func (b *Builder) Defaults() Defaults {
	return b.defaults
}

func (b *Builder) Items() []LineItem {
	return append([]LineItem(nil), b.items...)
}

func (b *Builder) SetEndpoint(endpoint string) error {
	if err := validateURL("endpoint", endpoint); err != nil {
		return err
	}
	b.merchant.BaseURL = strings.TrimSuffix(endpoint, "/")
	return nil
}

func (b *Builder) SetCancelUrl(cancelURL string) error {
	if err := validateURL("cancel_url", cancelURL); err != nil {
		return err
	}
	b.defaults.CancelURL = cancelURL
	return nil
}

func (b *Builder) SetReturnUrl(returnURL string) error {
	if err := validateURL("return_url", returnURL); err != nil {
		return err
	}
	b.defaults.ReturnURL = returnURL
	return nil
}

func (b *Builder) SetCallbackUrl(callbackURL string) error {
	if err := validateURL("callback_url", callbackURL); err != nil {
		return err
	}
	b.defaults.CallbackURL = callbackURL
	return nil
}

// SetChannel replaces the operator channel list. Codes are passed through unchecked.
func (b *Builder) SetChannel(channels []string) {
	b.channels = append([]string(nil), channels...)
}

func (b *Builder) SetSecure(secure bool) {
	b.defaults.Secure = secure
}

func (b *Builder) SetCustomerOwner(uuid string) error {
	if !IsUUIDv4(uuid) {
		return newValidationError(InvalidUuid, "customer_owner", "'%s' is not a version 4 uuid", uuid)
	}
	b.customerOwner = uuid
	return nil
}

// SetCustomData replaces the custom data. It is sent as a json string.
func (b *Builder) SetCustomData(data map[string]interface{}) {
	b.customData = data
}

// AddItems appends items to the invoice. The batch is validated as a whole before
// anything is appended: if any item fails, the stored item list is left unchanged.
func (b *Builder) AddItems(items []LineItem) error {
	if err := ValidateItems(items); err != nil {
		return err
	}
	b.items = append(b.items, items...)
	return nil
}

// BuildCreateInvoiceRequest assembles the create invoice call. Overrides win over
// Defaults; channel, customer owner, items and custom data are only sent when set.
func (b *Builder) BuildCreateInvoiceRequest(amount decimal.Decimal, description string, overrides Overrides) (*Request, error) {
	if !amount.IsPositive() {
		return nil, newValidationError(InvalidAmount, "amount", "amount must be positive, got %s", amount.String())
	}
	for _, o := range []struct{ field, value string }{
		{"cancel_url", overrides.CancelURL},
		{"return_url", overrides.ReturnURL},
		{"callback_url", overrides.CallbackURL},
	} {
		if o.value != "" {
			if err := validateURL(o.field, o.value); err != nil {
				return nil, err
			}
		}
	}

	secure := b.defaults.Secure
	if overrides.Secure != nil {
		secure = *overrides.Secure
	}

	form := url.Values{}
	form.Set("env", string(b.merchant.Env))
	form.Set("version", b.merchant.Version)
	form.Set("amount", amount.String())
	form.Set("wpsecure", strconv.FormatBool(secure))
	form.Set("currency", firstNonEmpty(overrides.Currency, b.defaults.Currency, b.merchant.Currency))
	form.Set("description", description)
	form.Set("cancel_url", firstNonEmpty(overrides.CancelURL, b.defaults.CancelURL))
	form.Set("return_url", firstNonEmpty(overrides.ReturnURL, b.defaults.ReturnURL))
	form.Set("callback_url", firstNonEmpty(overrides.CallbackURL, b.defaults.CallbackURL))

	if len(b.channels) > 0 {
		if err := setJSON(form, "channel", b.channels); err != nil {
			return nil, err
		}
	}
	if b.customerOwner != "" {
		form.Set("customer_owner", b.customerOwner)
	}
	if len(b.items) > 0 {
		if err := setJSON(form, "items", b.items); err != nil {
			return nil, err
		}
	}
	if len(b.customData) > 0 {
		if err := setJSON(form, "custom_data", b.customData); err != nil {
			return nil, err
		}
	}

	return b.request(createInvoicePath(b.merchant.Version), form), nil
}

func (b *Builder) BuildDetailInvoiceRequest(uuid string) (*Request, error) {
	if !IsUUIDv4(uuid) {
		return nil, newValidationError(InvalidUuid, "uuid", "'%s' is not a version 4 uuid", uuid)
	}

	form := url.Values{}
	form.Set("env", string(b.merchant.Env))
	form.Set("version", b.merchant.Version)

	return b.request(detailInvoicePath(uuid), form), nil
}

func (b *Builder) request(path string, form url.Values) *Request {
	return &Request{
		Method: http.MethodPost,
		URL:    b.merchant.BaseURL + path,
		Path:   path,
		Form:   form,
		Header: merchantHeader(b.merchant),
	}
}

func validateURL(field string, value string) error {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return newValidationError(InvalidUrl, field, "'%s' is not a valid url", value)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return newValidationError(InvalidUrl, field, "'%s' must use http or https", value)
	}
	if u.Host == "" {
		return newValidationError(InvalidUrl, field, "'%s' has no host", value)
	}
	return nil
}

func setJSON(form url.Values, key string, v interface{}) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	form.Set(key, string(encoded))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
