package interaction

import (
	"context"
	"net/http"
	"net/url"
)

type transportCall struct {
	method string
	url    string
	form   url.Values
	header http.Header
}

type TransportMock struct {
	body  []byte
	err   error
	calls []transportCall
}

func (t *TransportMock) Execute(_ context.Context, method string, fullUrl string, form url.Values, header http.Header) ([]byte, error) {
	t.calls = append(t.calls, transportCall{method: method, url: fullUrl, form: form, header: header})
	return t.body, t.err
}
