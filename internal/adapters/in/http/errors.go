package http

import (
	"errors"
	"fmt"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int      `json:"code"`
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Allowed []string `json:"allowed,omitempty"`
}

func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindNotAuthorized:
		return http.StatusForbidden
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindInvalidTransition:
		return http.StatusUnprocessableEntity
	case errs.KindNotEligible:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse classifies err. Internal failures get a generic message
// and conflicts drop their cause, so storage details never reach the client.
func NewErrorResponse(err error) ErrorResponse {
	kind := errs.KindOf(err)
	code := statusFor(kind)

	resp := ErrorResponse{Code: code, Kind: string(kind), Message: err.Error()}
	if kind == errs.KindInternal {
		resp.Message = "internal error"
	}
	if conflict, ok := hiddenCause(err); ok {
		resp.Message = fmt.Sprintf("%s: %s: %s", errs.ErrConflict, conflict.Resource, conflict.Reason)
	}

	var transition *errs.InvalidTransitionError
	if errors.As(err, &transition) {
		resp.Allowed = append([]string{}, transition.Allowed...)
	}
	return resp
}

// hiddenCause finds a conflict whose cause is a driver error.
func hiddenCause(err error) (*errs.ConflictError, bool) {
	var conflict *errs.ConflictError
	if errors.As(err, &conflict) && conflict.Cause != nil {
		return conflict, true
	}
	return nil, false
}

func writeError(c echo.Context, err error) error {
	resp := NewErrorResponse(err)
	return c.JSON(resp.Code, resp)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Kind:    string(errs.KindValidation),
		Message: message,
	})
}
