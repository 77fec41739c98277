package apperror

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound     = &AppError{Message: "not found", status: http.StatusNotFound}
	ErrUnauthorized = &AppError{Message: "unauthorized", status: http.StatusUnauthorized}
	ErrForbidden    = &AppError{Message: "forbidden", status: http.StatusForbidden}
	ErrDecodeBody   = NewAppError("failed to decode request body")
	ErrInvalidID    = NewAppError("invalid id format")
)

type AppError struct {
	Message string `json:"message"`

	// status overrides the default 400; zero means "bad request"
	status int
}

func NewAppError(message string) *AppError {
	return &AppError{
		Message: message,
	}
}

// NewUnauthorizedError keeps a specific message while surfacing 401,
// e.g. the login distinction between unknown user and wrong password.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Message: message,
		status:  http.StatusUnauthorized,
	}
}

func (e *AppError) Status() int {
	if e.status == 0 {
		return http.StatusBadRequest
	}
	return e.status
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Marshal() []byte {
	marshal, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return marshal
}

// UpstreamError reports a failed call to an external platform together
// with the provisioning step it happened in, so the caller can tell
// which part of the sequence broke.
type UpstreamError struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

func NewUpstreamErr(step string) *UpstreamError {
	return &UpstreamError{
		Step:    step,
		Message: fmt.Sprintf("external platform call failed at step %q", step),
	}
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Marshal() []byte {
	marshal, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return marshal
}

func NewValidationErr(errs validator.ValidationErrors) *AppError {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid email", err.Field()))
		case "min":
			errMsgs = append(errMsgs, fmt.Sprintf("the minimum length of the %s field is %s characters", err.Field(), err.Param()))
		case "max":
			errMsgs = append(errMsgs, fmt.Sprintf("the maximum length of the %s field is %s characters", err.Field(), err.Param()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return NewAppError(strings.Join(errMsgs, ", "))
}

func internalError() *AppError {
	return NewAppError("internal error")
}
