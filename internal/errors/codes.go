package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidDate   ErrorCode = "VALIDATION_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionValidationFailed ErrorCode = "TRANSACTION_002"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNoTransactions ErrorCode = "CATEGORY_001"
)

// Bank-data provider error codes (PROVIDER_*)
const (
	ProviderUnavailable   ErrorCode = "PROVIDER_001"
	ProviderSandboxOnly   ErrorCode = "PROVIDER_002"
	ProviderNotConfigured ErrorCode = "PROVIDER_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required parameter is missing",
	ValidationInvalidDate:   "Invalid date format or range",

	TransactionNotFound:         "Transaction not found",
	TransactionValidationFailed: "Transaction validation failed",

	CategoryNoTransactions: "No transactions found for this category",

	ProviderUnavailable:   "Bank data provider is unavailable",
	ProviderSandboxOnly:   "Real bank integration requires additional setup",
	ProviderNotConfigured: "Bank data provider credentials are not configured",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
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
