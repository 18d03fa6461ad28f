// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

// Envelope is the uniform response shape every endpoint returns, success or
// failure. Data is set on success; Errors carries field-level validation
// failures; ErrorDetail carries a single error string when no field breakdown
// exists.
type Envelope struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	Method      string       `json:"method"`
	Endpoint    string       `json:"endpoint"`
	StatusCode  int          `json:"statusCode"`
	Timestamp   string       `json:"timestamp"`
	Data        any          `json:"data,omitempty"`
	Errors      []FieldError `json:"errors,omitempty"`
	ErrorDetail string       `json:"error,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	env.Method = r.Method
	env.Endpoint = r.URL.Path
	env.StatusCode = status
	env.Timestamp = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(env)
}

func Success(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	writeEnvelope(w, r, status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func OK(w http.ResponseWriter, r *http.Request, message string, data any) {
	Success(w, r, http.StatusOK, message, data)
}

func Created(w http.ResponseWriter, r *http.Request, message string, data any) {
	Success(w, r, http.StatusCreated, message, data)
}

func Fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeEnvelope(w, r, status, Envelope{
		Success:     false,
		Message:     message,
		ErrorDetail: message,
	})
}

func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	Fail(w, r, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	if message == "" {
		message = "authentication required"
	}
	Fail(w, r, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, r *http.Request, message string) {
	if message == "" {
		message = "insufficient permissions"
	}
	Fail(w, r, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, r *http.Request, resource string) {
	Fail(w, r, http.StatusNotFound, resource+" not found")
}

func Conflict(w http.ResponseWriter, r *http.Request, message string) {
	Fail(w, r, http.StatusConflict, message)
}

func InternalServerError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal server error",
		"method", r.Method,
		"endpoint", r.URL.Path,
		"error", err,
	)
	Fail(w, r, http.StatusInternalServerError, "internal server error")
}

// ValidationFailed renders validator violations as a field-level errors array.
func ValidationFailed(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		BadRequest(w, r, "validation failed")
		return
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}

	writeEnvelope(w, r, http.StatusBadRequest, Envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  fieldErrors,
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters long"
	case "max":
		return fe.Field() + " cannot be longer than " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "eqfield":
		return fe.Field() + " must match " + fe.Param()
	case "url":
		return fe.Field() + " must be a valid URL"
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	default:
		return fe.Field() + " is not valid"
	}
}

// JSONError maps an application error onto the envelope. AppError wins; bare
// sentinel chains fall back to their canonical statuses; anything else is a
// 500 that never leaks internals to the caller.
func JSONError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		Fail(w, r, appErr.Status, appErr.Message)
		return
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		BadRequest(w, r, "invalid input")
	case errors.Is(err, ErrTokenExpired):
		Fail(w, r, http.StatusUnauthorized, "token has expired")
	case errors.Is(err, ErrTokenInvalid):
		Fail(w, r, http.StatusUnauthorized, "token is invalid")
	case errors.Is(err, ErrUnauthorized):
		Unauthorized(w, r, "")
	case errors.Is(err, ErrForbidden):
		Forbidden(w, r, "")
	case errors.Is(err, ErrNotFound):
		Fail(w, r, http.StatusNotFound, "resource not found")
	case errors.Is(err, ErrDuplicateKey):
		Conflict(w, r, "resource already exists")
	default:
		InternalServerError(w, r, err)
	}
}
