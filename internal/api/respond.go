package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	sliderrors "github.com/neuradeck/slidekit/pkg/errors"
)

// errorBody is the JSON envelope for error responses.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes v as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// The status line is already out; an encode failure here can only
	// truncate the body.
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes an error envelope with an explicit status.
func respondError(w http.ResponseWriter, status int, code sliderrors.Code, format string, args ...any) {
	respondJSON(w, status, errorBody{Error: errorDetail{
		Code:    string(code),
		Message: fmt.Sprintf(format, args...),
	}})
}

// respondCodedError maps a coded error onto its HTTP status. Errors
// without a code report as internal.
func respondCodedError(w http.ResponseWriter, err error) {
	code := sliderrors.GetCode(err)
	if code == "" {
		code = sliderrors.ErrCodeInternal
	}
	respondJSON(w, statusFor(code), errorBody{Error: errorDetail{
		Code:    string(code),
		Message: sliderrors.UserMessage(err),
	}})
}

// statusFor maps error codes onto HTTP status codes.
func statusFor(code sliderrors.Code) int {
	switch code {
	case sliderrors.ErrCodeInvalidInput, sliderrors.ErrCodeInvalidDeck,
		sliderrors.ErrCodeInvalidTheme, sliderrors.ErrCodeInvalidGrid,
		sliderrors.ErrCodeInvalidSpan, sliderrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case sliderrors.ErrCodeNotFound, sliderrors.ErrCodeJobNotFound,
		sliderrors.ErrCodeFileNotFound, sliderrors.ErrCodeArchiveNotFound:
		return http.StatusNotFound
	case sliderrors.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	case sliderrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
