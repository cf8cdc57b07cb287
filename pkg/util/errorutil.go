package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the bridge.
const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeMalformedPayload   = "MALFORMED_PAYLOAD"
	CodeGatewayUnavailable = "GATEWAY_UNAVAILABLE"
	CodeGatewayRejected    = "GATEWAY_REJECTED"
	CodeInternal           = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

// NewMalformedPayload flags a submission missing required fields. The flow
// terminates before any ticket is created.
func NewMalformedPayload(message string, details map[string]any) error {
	return NewDomainError(CodeMalformedPayload, message, http.StatusBadRequest, details)
}

// NewGatewayUnavailable wraps a transport-level failure reaching the
// messaging gateway.
func NewGatewayUnavailable(operation string, err error) error {
	return &DomainError{
		Code:       CodeGatewayUnavailable,
		Message:    fmt.Sprintf("gateway unreachable during %s", operation),
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewGatewayRejected records a non-success status from the gateway. It is
// handled like GatewayUnavailable; the codes differ only for log detail.
func NewGatewayRejected(operation string, status int, body string) error {
	return &DomainError{
		Code:       CodeGatewayRejected,
		Message:    fmt.Sprintf("gateway rejected %s", operation),
		HTTPStatus: http.StatusBadGateway,
		Details:    map[string]any{"status": status, "body": body},
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsCode reports whether err is a DomainError with the given code.
func IsCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}
