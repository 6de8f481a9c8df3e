package winipayerapi

import (
	"context"
	"net/http"
	"net/url"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/repository/downstreams"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/winipayer"
)

var _ winipayer.Transport = (*Impl)(nil)

type Impl struct {
	client aurestclientapi.Client
}

func New() (*Impl, error) {
	client, err := downstreams.ClientWith(
		downstreams.HeaderForwardingRequestManipulator(),
		"winipayer-breaker",
	)
	if err != nil {
		return nil, err
	}

	return &Impl{
		client: client,
	}, nil
}

// Execute posts form as application/x-www-form-urlencoded and returns the raw body.
func (i *Impl) Execute(ctx context.Context, method string, fullUrl string, form url.Values, header http.Header) ([]byte, error) {
	var bodyBytes *[]byte
	response := aurestclientapi.ParsedResponse{
		Body: &bodyBytes,
	}
	err := i.client.Perform(downstreams.WithRequestHeader(ctx, header), method, fullUrl, form, &response)
	if err := downstreams.ErrByStatus(err, response.Status); err != nil {
		return nil, err
	}
	if bodyBytes == nil {
		return []byte{}, nil
	}
	return *bodyBytes, nil
}
