package winipayer

import (
	"net/http"
	"net/url"
)

const (
	HeaderMerchantApply = "X-Merchant-Apply"
	HeaderMerchantToken = "X-Merchant-Token"
)

// Request is a fully validated call ready for the transport. Form holds the flat
// form parameters, nested structures are already encoded as json strings.
type Request struct {
	Method string
	URL    string
	Path   string
	Form   url.Values
	Header http.Header
}

func merchantHeader(m MerchantConfig) http.Header {
	h := http.Header{}
	h.Set(HeaderMerchantApply, m.ApplyKey)
	h.Set(HeaderMerchantToken, m.TokenKey)
	return h
}

func createInvoicePath(version string) string {
	return "/transaction/invoice/" + url.PathEscape(version) + "/create"
}

func detailInvoicePath(uuid string) string {
	return "/transaction/invoice/detail/" + uuid
}
