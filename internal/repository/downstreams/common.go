package downstreams

import (
	"context"
	"errors"
	"net/http"
	"time"

	aurestbreaker "github.com/StephanHCB/go-autumn-restclient-circuitbreaker/implementation/breaker"
	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	auresthttpclient "github.com/StephanHCB/go-autumn-restclient/implementation/httpclient"
	aurestlogging "github.com/StephanHCB/go-autumn-restclient/implementation/requestlogging"
)

var (
	ErrDownStreamUnavailable = errors.New("downstream unavailable - see log for details")
)

type ctxKeyRequestHeader struct{}

// WithRequestHeader attaches headers to ctx that HeaderForwardingRequestManipulator
// will copy onto the outgoing request.
func WithRequestHeader(ctx context.Context, header http.Header) context.Context {
	return context.WithValue(ctx, ctxKeyRequestHeader{}, header)
}

func requestHeaderFromContext(ctx context.Context) http.Header {
	if h, ok := ctx.Value(ctxKeyRequestHeader{}).(http.Header); ok {
		return h
	}
	return nil
}

func HeaderForwardingRequestManipulator() aurestclientapi.RequestManipulatorCallback {
	return func(ctx context.Context, r *http.Request) {
		for name, values := range requestHeaderFromContext(ctx) {
			for _, v := range values {
				r.Header.Add(name, v)
			}
		}
	}
}

func ClientWith(requestManipulator aurestclientapi.RequestManipulatorCallback, circuitBreakerName string) (aurestclientapi.Client, error) {
	httpClient, err := auresthttpclient.New(0, nil, requestManipulator)
	if err != nil {
		return nil, err
	}

	requestLoggingClient := aurestlogging.New(httpClient)

	circuitBreakerClient := aurestbreaker.New(requestLoggingClient,
		circuitBreakerName,
		10,
		2*time.Minute,
		30*time.Second,
		15*time.Second,
	)

	return NewRequestLoggingWrapper(circuitBreakerClient, circuitBreakerName), nil
}

// ErrByStatus only treats server side failures as errors. The payment API reports
// rejected calls in the body with success false, those bodies are passed on.
func ErrByStatus(err error, status int) error {
	if err != nil {
		return err
	}
	if status >= 500 {
		return ErrDownStreamUnavailable
	}
	return nil
}
