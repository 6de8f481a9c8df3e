package common

import (
	"context"
	"net/http"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/apierrors"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/logging"
)

type RequestHandler[Req any] func(r *http.Request) (*Req, error)
type ResponseHandler[Res any] func(ctx context.Context, res *Res, w http.ResponseWriter) error
type Endpoint[Req, Res any] func(ctx context.Context, request *Req, logger logging.Logger) (*Res, error)

func CreateHandler[Req, Res any](endpoint Endpoint[Req, Res],
	requestHandler RequestHandler[Req],
	responseHandler ResponseHandler[Res]) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := GetRequestID(ctx)
		logger := logging.WithRequestID(ctx, reqID)

		defer func() {
			err := r.Body.Close()
			if err != nil {
				logger.Error("Error when closing the request body. [error]: %v", err)
			}
		}()

		if requestHandler == nil {
			logger.Error("No request handler supplied")
			SendInternalServerError(w, reqID, UnknownErrorMessage, logger, "")
			return
		}

		if responseHandler == nil {
			logger.Error("No response handler supplied")
			SendInternalServerError(w, reqID, UnknownErrorMessage, logger, "")
			return
		}

		request, err := requestHandler(r)
		if err != nil {
			logger.Warn("An error occurred while parsing the request. [error]: %v", err)
			SendBadRequestResponse(w, reqID, logger, err.Error())
			return
		}

		response, err := endpoint(ctx, request, logger)
		if err != nil {
			logger.Error("An error occurred during the request. [error]: %v", err)
			SendErrorResponse(w, reqID, logger, err)
			return
		}

		if err := responseHandler(ctx, response, w); err != nil {
			logger.Error("An error occurred during the handling of the response. [error]: %v", err)
			SendInternalServerError(w, reqID, UnknownErrorMessage, logger, "")
			return
		}
	})
}

// SendErrorResponse picks the response status from an apierrors status error.
// Plain errors become internal server errors without details.
func SendErrorResponse(w http.ResponseWriter, reqID string, logger logging.Logger, err error) {
	status := apierrors.AsAPIStatus(err)
	if status == nil {
		SendInternalServerError(w, reqID, InternalErrorMessage, logger, "")
		return
	}

	details := status.Status().Details
	switch {
	case apierrors.IsBadRequestError(err):
		SendBadRequestResponse(w, reqID, logger, details)
	case apierrors.IsUnauthorizedError(err):
		SendUnauthorizedResponse(w, reqID, logger, details)
	case apierrors.IsForbiddenError(err):
		SendForbiddenResponse(w, reqID, logger, details)
	case apierrors.IsNotFoundError(err):
		SendStatusNotFoundResponse(w, reqID, logger, details)
	case apierrors.IsBadGatewayError(err):
		SendBadGatewayResponse(w, reqID, logger, details)
	default:
		SendInternalServerError(w, reqID, APIErrorMessage(status.Status().Message), logger, details)
	}
}
