package esign

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("esign: invalid argument")

// APIError describes a non-2xx answer of the signature service. Body keeps the raw
// payload; ErrorCode and Message are filled when it has the service error shape.
type APIError struct {
	StatusCode int
	Body       []byte
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("esign: status %d: %s: %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("esign: status %d", e.StatusCode)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var details struct {
		ErrorCode string `json:"errorCode"`
		Message   string `json:"message"`
	}

	if json.Unmarshal(body, &details) == nil {
		apiErr.ErrorCode = details.ErrorCode
		apiErr.Message = details.Message
	}

	return apiErr
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
