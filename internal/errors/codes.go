package errors

// ErrorCode represents a standardized error code reported by the ledger shell
type ErrorCode string

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound              ErrorCode = "ACCOUNT_001"
	AccountAlreadyExists         ErrorCode = "ACCOUNT_002"
	AccountInvalidType           ErrorCode = "ACCOUNT_003"
	AccountInsufficientBalance   ErrorCode = "ACCOUNT_004"
	AccountOverdraftExceeded     ErrorCode = "ACCOUNT_005"
	AccountOperationNotPermitted ErrorCode = "ACCOUNT_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount ErrorCode = "TRANSACTION_001"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationMalformedInput ErrorCode = "VALIDATION_001"
	ValidationInvalidChoice  ErrorCode = "VALIDATION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemUnexpectedError ErrorCode = "SYSTEM_001"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AccountNotFound:              "Account not found!",
	AccountAlreadyExists:         "Account already exists!",
	AccountInvalidType:           "Invalid account type!",
	AccountInsufficientBalance:   "Insufficient balance.",
	AccountOverdraftExceeded:     "Overdraft limit exceeded.",
	AccountOperationNotPermitted: "Interest can only be applied to savings accounts.",

	TransactionInvalidAmount: "Amount must be greater than zero.",

	ValidationMalformedInput: "Invalid input.",
	ValidationInvalidChoice:  "Invalid choice. Please try again.",

	SystemUnexpectedError: "An unexpected error occurred",
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
