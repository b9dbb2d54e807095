package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidUUID   ErrorCode = "VALIDATION_006"
)

// Query error codes (QUERY_*)
const (
	QueryNoUser          ErrorCode = "QUERY_001"
	QueryInvalidPage     ErrorCode = "QUERY_002"
	QueryInvalidPageSize ErrorCode = "QUERY_003"
	QueryInvalidType     ErrorCode = "QUERY_004"
	QueryInvalidAmount   ErrorCode = "QUERY_005"
	QueryInvalidRange    ErrorCode = "QUERY_006"
)

// Group error codes (GROUP_*)
const (
	GroupNotFound  ErrorCode = "GROUP_001"
	GroupNoResults ErrorCode = "GROUP_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidUUID:   "Invalid identifier format",

	// Query errors
	QueryNoUser:          "A user must be set before running a query",
	QueryInvalidPage:     "Page must be a positive integer",
	QueryInvalidPageSize: "Page size must be a positive integer",
	QueryInvalidType:     "Invalid transaction type",
	QueryInvalidAmount:   "Invalid amount value",
	QueryInvalidRange:    "Invalid date range",

	// Group errors
	GroupNotFound:  "Transaction group not found",
	GroupNoResults: "Transaction search returned no results",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
