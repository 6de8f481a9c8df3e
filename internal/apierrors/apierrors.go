package apierrors

import (
	"errors"
	"net/http"
)

type APIStatus interface {
	error
	Status() Status
}

type Status struct {
	Code    int
	Message string
	Details string
}

type StatusError struct {
	ErrStatus Status
}

var _ APIStatus = (*StatusError)(nil)

func (s *StatusError) Error() string {
	if s.ErrStatus.Details != "" {
		return s.ErrStatus.Message + ": " + s.ErrStatus.Details
	}
	return s.ErrStatus.Message
}

func (s *StatusError) Status() Status {
	return s.ErrStatus
}

func newStatusError(code int, message string, details string) error {
	return &StatusError{
		ErrStatus: Status{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

func NewBadRequest(details string) error {
	return newStatusError(http.StatusBadRequest, "request.invalid", details)
}

func NewUnauthorized(details string) error {
	return newStatusError(http.StatusUnauthorized, "auth.unauthorized", details)
}

func NewForbidden(details string) error {
	return newStatusError(http.StatusForbidden, "auth.forbidden", details)
}

func NewNotFound(details string) error {
	return newStatusError(http.StatusNotFound, "invoice.notfound", details)
}

func NewBadGateway(details string) error {
	return newStatusError(http.StatusBadGateway, "downstream.unavailable", details)
}

func NewInternalServerError(details string) error {
	return newStatusError(http.StatusInternalServerError, "unknown", details)
}

// AsAPIStatus returns the status carried by err or nil if there is none.
func AsAPIStatus(err error) APIStatus {
	var status APIStatus
	if errors.As(err, &status) {
		return status
	}
	return nil
}

func hasCode(err error, code int) bool {
	if status := AsAPIStatus(err); status != nil {
		return status.Status().Code == code
	}
	return false
}

func IsBadRequestError(err error) bool {
	return hasCode(err, http.StatusBadRequest)
}

func IsUnauthorizedError(err error) bool {
	return hasCode(err, http.StatusUnauthorized)
}

func IsForbiddenError(err error) bool {
	return hasCode(err, http.StatusForbidden)
}

func IsNotFoundError(err error) bool {
	return hasCode(err, http.StatusNotFound)
}

func IsBadGatewayError(err error) bool {
	return hasCode(err, http.StatusBadGateway)
}

func IsInternalServerError(err error) bool {
	return hasCode(err, http.StatusInternalServerError)
}
