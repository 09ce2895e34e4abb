package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes a 200 envelope carrying data.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// SourcedResponse writes a 200 envelope tagged with the origin of the data.
// An empty source is omitted from the body.
func SourcedResponse(c echo.Context, data interface{}, source string) error {
	return c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Source: source})
}

// ErrorResponse writes a failure envelope with the given status.
func ErrorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, APIResponse{Success: false, Error: message})
}

// BadRequestResponse writes a 400 failure envelope.
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusBadRequest, message)
}

// InternalServerErrorResponse writes a 500 failure envelope carrying err's message.
func InternalServerErrorResponse(c echo.Context, err error) error {
	msg := http.StatusText(http.StatusInternalServerError)
	if err != nil {
		msg = err.Error()
	}
	return ErrorResponse(c, http.StatusInternalServerError, msg)
}

// AppErrorResponse renders err using its AppError status when it has one.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Message)
	}
	return InternalServerErrorResponse(c, err)
}

// HTTPErrorHandler renders echo's own errors (404, 405, bind failures) in
// the standard envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && s != "" {
			msg = s
		}
		_ = ErrorResponse(c, he.Code, msg)
		return
	}
	_ = AppErrorResponse(c, err)
}
