package winipayer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Response is the decoded answer of the payment API. Body keeps the whole document
// so callers can pass it on untouched.
type Response struct {
	Success bool
	Results map[string]interface{}
	Body    map[string]interface{}
}

// InvoiceDetail is the typed view of the results record of a detail lookup.
// Missing or mistyped fields are left at their zero value.
type InvoiceDetail struct {
	UUID   string
	Hash   string
	Env    string
	State  string
	Amount decimal.Decimal
}

const StateSuccess = "success"

// ParseResponse decodes a response body. Success is only true if the body contains
// the json boolean true, anything else counts as failure.
func ParseResponse(body []byte) (*Response, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	doc := make(map[string]interface{})
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	resp := &Response{Body: doc}
	if success, ok := doc["success"].(bool); ok {
		resp.Success = success
	}
	if results, ok := doc["results"].(map[string]interface{}); ok {
		resp.Results = results
	}
	return resp, nil
}

func (r *Response) Detail() InvoiceDetail {
	if r == nil {
		return InvoiceDetail{}
	}
	return InvoiceDetail{
		UUID:   stringField(r.Results, "uuid"),
		Hash:   stringField(r.Results, "hash"),
		Env:    stringField(r.Results, "env"),
		State:  stringField(r.Results, "state"),
		Amount: decimalField(r.Results, "amount"),
	}
}

func stringField(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func decimalField(m map[string]interface{}, key string) decimal.Decimal {
	switch v := m[key].(type) {
	case json.Number:
		if d, err := decimal.NewFromString(v.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return decimal.Zero
}
