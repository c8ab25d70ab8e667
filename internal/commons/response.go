package commons

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodapp/internal/dto"
	apperrors "foodapp/internal/errors"

	"go.uber.org/zap"
)

const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeMenuItemNotFound = "MENU_ITEM_NOT_FOUND"
	CodeInternal         = "INTERNAL_ERROR"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func WriteValidationError(w http.ResponseWriter, r *http.Request, message string, logger *zap.Logger, details ...apperrors.ValidationDetail) {
	if details == nil {
		details = []apperrors.ValidationDetail{}
	}
	WriteJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{
		TraceID: TraceID(r.Context()),
		Error:   CodeValidation,
		Message: message,
		Details: details,
	}, logger)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger *zap.Logger) {
	WriteJSON(w, status, dto.ErrorResponse{
		TraceID:   TraceID(r.Context()),
		Error:     code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}, logger)
}

// WriteServiceError maps a service-layer error to its HTTP response.
// Anything unrecognised is logged and reported as a 500 without its cause.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error, logger *zap.Logger) {
	logger = Logger(r.Context(), logger)

	if ve, ok := apperrors.IsValidationError(err); ok {
		logger.Warn("request rejected", zap.String("reason", ve.Message))
		WriteValidationError(w, r, ve.Message, logger, ve.Details...)
		return
	}

	if re, ok := apperrors.IsReferenceError(err); ok {
		logger.Warn("unknown reference", zap.String("field", re.Field), zap.String("ref", re.Ref))
		WriteError(w, r, http.StatusBadRequest, CodeMenuItemNotFound, re.Error(), logger)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	WriteError(w, r, http.StatusInternalServerError, CodeInternal, "an unexpected error occurred", logger)
}

// DecodeJSON reads a JSON request body into dst, reporting malformed input
// as a *ValidationError.
func DecodeJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewValidationError("invalid field type", apperrors.ValidationDetail{
			Field:   typeErr.Field,
			Message: "must be of type " + typeErr.Type.String(),
		})
	}
	return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
		Field:   "body",
		Message: "request body must be valid JSON",
	})
}
