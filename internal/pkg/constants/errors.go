package constants

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode is the machine-readable code carried by every domain error.
type ErrorCode int

const (
	// Validation errors (1000-1999)
	CodeInvalidInput         ErrorCode = 1000
	CodeMissingParameter     ErrorCode = 1001
	CodeInvalidParameterType ErrorCode = 1002

	// Internal errors (2000-2999)
	CodeInternalServerError ErrorCode = 2000
	CodeConfigurationError  ErrorCode = 2002

	// External API errors (3000-3999)
	CodeAPITimeout     ErrorCode = 3000
	CodeDoffinAPIError ErrorCode = 3001
	CodeSSBAPIError    ErrorCode = 3002

	// Processing errors (4000-4999)
	CodeDataProcessingError ErrorCode = 4000
	CodeParsingError        ErrorCode = 4002

	// Resource errors (5000-5999)
	CodeResourceNotFound ErrorCode = 5000
	CodeCPVCodeNotFound  ErrorCode = 5001
)

func (c ErrorCode) String() string {
	switch c {
	case CodeInvalidInput:
		return "INVALID_INPUT"
	case CodeMissingParameter:
		return "MISSING_PARAMETER"
	case CodeInvalidParameterType:
		return "INVALID_PARAMETER_TYPE"
	case CodeInternalServerError:
		return "INTERNAL_SERVER_ERROR"
	case CodeConfigurationError:
		return "CONFIGURATION_ERROR"
	case CodeAPITimeout:
		return "API_TIMEOUT"
	case CodeDoffinAPIError:
		return "DOFFIN_API_ERROR"
	case CodeSSBAPIError:
		return "SSB_API_ERROR"
	case CodeDataProcessingError:
		return "DATA_PROCESSING_ERROR"
	case CodeParsingError:
		return "PARSING_ERROR"
	case CodeResourceNotFound:
		return "RESOURCE_NOT_FOUND"
	case CodeCPVCodeNotFound:
		return "CPV_CODE_NOT_FOUND"
	}
	return "UNKNOWN"
}

// CodedError is the single error type all domain errors share. It carries
// the HTTP status to respond with, a machine-readable error code and a
// structured details map for the response envelope.
type CodedError struct {
	message string
	status  int
	errCode ErrorCode
	details map[string]any
	cause   error
}

func newCodedError(message string, status int, code ErrorCode, details map[string]any) *CodedError {
	return &CodedError{message: message, status: status, errCode: code, details: details}
}

func (e *CodedError) Error() string { return e.message }

// Code returns the HTTP status code the error maps to.
func (e *CodedError) Code() int { return e.status }

func (e *CodedError) ErrorCode() ErrorCode { return e.errCode }

func (e *CodedError) Details() map[string]any { return e.details }

func (e *CodedError) Unwrap() error { return e.cause }

// NewValidationError reports bad input shape or range. field and value are
// optional; pass "" and nil to omit them from details.
func NewValidationError(message, field string, value any) *CodedError {
	details := map[string]any{}
	if field != "" {
		details["field"] = field
	}
	if value != nil {
		details["received_value"] = value
	}
	return newCodedError(message, http.StatusBadRequest, CodeInvalidInput, details)
}

func NewMissingParameterError(parameter string) *CodedError {
	return newCodedError(
		fmt.Sprintf("Missing required parameter: %s", parameter),
		http.StatusBadRequest,
		CodeMissingParameter,
		map[string]any{"missing_parameter": parameter},
	)
}

func NewInvalidParameterTypeError(parameter, expectedType, receivedValue string) *CodedError {
	return newCodedError(
		fmt.Sprintf("Invalid type for parameter '%s'. Expected %s", parameter, expectedType),
		http.StatusBadRequest,
		CodeInvalidParameterType,
		map[string]any{
			"parameter":      parameter,
			"expected_type":  expectedType,
			"received_value": receivedValue,
		},
	)
}

func NewConfigurationError(message, missingConfig string) *CodedError {
	details := map[string]any{}
	if missingConfig != "" {
		details["missing_config"] = missingConfig
	}
	return newCodedError(
		fmt.Sprintf("Configuration error: %s", message),
		http.StatusInternalServerError,
		CodeConfigurationError,
		details,
	)
}

// NewAPITimeoutError reports an outbound call that exceeded its fixed timeout.
func NewAPITimeoutError(service string, timeout time.Duration) *CodedError {
	return newCodedError(
		fmt.Sprintf("%s API request timed out after %s", service, timeout),
		http.StatusGatewayTimeout,
		CodeAPITimeout,
		map[string]any{"service": service, "timeout_seconds": int(timeout.Seconds())},
	)
}

// NewExternalAPIError reports any non-timeout upstream failure, keeping the
// original cause on the unwrap chain.
func NewExternalAPIError(service, message string, cause error) *CodedError {
	code := CodeDoffinAPIError
	if service == ServiceSSB {
		code = CodeSSBAPIError
	}
	details := map[string]any{"service": service}
	if cause != nil {
		details["original_error"] = cause.Error()
	}
	err := newCodedError(
		fmt.Sprintf("%s API Error: %s", service, message),
		http.StatusBadGateway,
		code,
		details,
	)
	err.cause = cause
	return err
}

func NewDataProcessingError(message, operation string) *CodedError {
	details := map[string]any{}
	if operation != "" {
		details["operation"] = operation
	}
	return newCodedError(message, http.StatusInternalServerError, CodeDataProcessingError, details)
}

func NewParsingError(message, dataType string) *CodedError {
	details := map[string]any{}
	if dataType != "" {
		details["data_type"] = dataType
	}
	return newCodedError(message, http.StatusInternalServerError, CodeParsingError, details)
}

func NewNotFoundError(message, resourceType, resourceID string) *CodedError {
	details := map[string]any{}
	if resourceType != "" {
		details["resource_type"] = resourceType
	}
	if resourceID != "" {
		details["resource_id"] = resourceID
	}
	return newCodedError(message, http.StatusNotFound, CodeResourceNotFound, details)
}

func NewCPVCodeNotFoundError(code int) *CodedError {
	return newCodedError(
		fmt.Sprintf("CPV code %d not found", code),
		http.StatusNotFound,
		CodeCPVCodeNotFound,
		map[string]any{"cpv_code": code},
	)
}
