package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"strings"

	"github.com/rileyhilliard/kmon/internal/errors"
)

// Machine mode flag - when true, outputs JSON and suppresses human-friendly decorations
var machineMode bool

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
// These map to specific actions automation can take.
const (
	ErrCodeConfigInvalid    = "CONFIG_INVALID"
	ErrCodeSysfsUnavailable = "SYSFS_UNAVAILABLE"
	ErrCodeCategoryUnknown  = "CATEGORY_UNKNOWN"
	ErrCodeDeviceNotFound   = "DEVICE_NOT_FOUND"
	ErrCodeUsage            = "USAGE"
	ErrCodeRenderFailed     = "RENDER_FAILED"
	ErrCodeUnknown          = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	env := JSONEnvelope{
		Success: true,
		Data:    data,
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONError writes an error response to the writer.
func WriteJSONError(w io.Writer, code, message, suggestion string, details interface{}) error {
	env := JSONEnvelope{
		Success: false,
		Error: &JSONError{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
			Details:    details,
		},
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	env := JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	}
	return writeJSONEnvelope(w, env)
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	// Unwrap to our structured error type when present
	var kmErr *errors.Error
	if stderrors.As(err, &kmErr) {
		return &JSONError{
			Code:       mapErrorCode(kmErr.Code, kmErr.Message),
			Message:    kmErr.Message,
			Suggestion: kmErr.Suggestion,
		}
	}

	// Generic error
	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	switch internalCode {
	case errors.ErrConfig:
		return ErrCodeConfigInvalid
	case errors.ErrSysfs:
		return ErrCodeSysfsUnavailable
	case errors.ErrUsage:
		// Distinguish lookup misses from plain bad usage
		msgLower := strings.ToLower(message)
		if strings.Contains(msgLower, "unknown category") {
			return ErrCodeCategoryUnknown
		}
		if strings.Contains(msgLower, "no device named") {
			return ErrCodeDeviceNotFound
		}
		return ErrCodeUsage
	case errors.ErrRender:
		return ErrCodeRenderFailed
	}

	return ErrCodeUnknown
}
