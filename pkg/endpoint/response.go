package endpoint

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

func InternalError(msg string) *ApiError {
	message := fmt.Sprintf("Internal server error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     errors.New(message),
	}
}

// LogInternalError records the underlying failure server-side and returns a
// generic message so details never leak into the response body.
func LogInternalError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Internal server error: %s", msg),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequestError(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusBadRequest,
		Err:     errors.New(msg),
	}
}

func UnauthorizedError(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusUnauthorized,
		Err:     errors.New(msg),
	}
}

func ForbiddenError(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusForbidden,
		Err:     errors.New(msg),
	}
}

func NotFound(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusNotFound,
		Err:     errors.New(msg),
	}
}

func ConflictError(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusConflict,
		Err:     errors.New(msg),
	}
}
