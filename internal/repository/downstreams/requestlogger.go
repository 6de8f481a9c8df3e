package downstreams

import (
	"context"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/logging"
)

// RequestLoggingImpl sits in front of the circuit breaker, so rejected calls
// still show up in the request scoped log.
type RequestLoggingImpl struct {
	Wrapped aurestclientapi.Client
	Name    string
}

func NewRequestLoggingWrapper(wrapped aurestclientapi.Client, name string) aurestclientapi.Client {
	return &RequestLoggingImpl{
		Wrapped: wrapped,
		Name:    name,
	}
}

func (c *RequestLoggingImpl) Perform(ctx context.Context, method string, requestUrl string, requestBody interface{}, response *aurestclientapi.ParsedResponse) error {
	before := time.Now()
	err := c.Wrapped.Perform(ctx, method, requestUrl, requestBody, response)
	millis := time.Since(before).Milliseconds()
	if err != nil {
		logging.LoggerFromContext(ctx).Warn("%s %s %s -> %d FAILED (%d ms): %s", c.Name, method, requestUrl, response.Status, millis, err.Error())
	} else {
		logging.LoggerFromContext(ctx).Info("%s %s %s -> %d OK (%d ms)", c.Name, method, requestUrl, response.Status, millis)
	}
	return err
}
