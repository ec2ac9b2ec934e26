package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"bank-ledger/internal/ledger"
	"bank-ledger/internal/services"
	"bank-ledger/internal/validation"
)

// Response is the rendered form of a failed operation
type Response struct {
	Code          ErrorCode
	Message       string
	Details       []string
	CorrelationID string
}

// ResponseOption is a functional option for configuring error responses
type ResponseOption func(*Response)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ResponseOption {
	return func(r *Response) {
		r.Details = details
	}
}

// NewResponse creates a response for the given error code and correlation ID.
// Unregistered codes are reported as SystemUnexpectedError.
func NewResponse(code ErrorCode, correlationID string, opts ...ResponseOption) *Response {
	if !IsValidErrorCode(code) {
		code = SystemUnexpectedError
	}

	response := &Response{
		Code:          code,
		Message:       GetErrorMessage(code),
		CorrelationID: correlationID,
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// codeTable maps domain sentinels to their codes; first match wins
var codeTable = []struct {
	target error
	code   ErrorCode
}{
	{ledger.ErrInvalidAmount, TransactionInvalidAmount},
	{ledger.ErrInsufficientBalance, AccountInsufficientBalance},
	{ledger.ErrOverdraftExceeded, AccountOverdraftExceeded},
	{ledger.ErrUnsupportedOperation, AccountOperationNotPermitted},
	{ledger.ErrDuplicateAccount, AccountAlreadyExists},
	{ledger.ErrInvalidVariant, AccountInvalidType},
	{services.ErrAccountNotFound, AccountNotFound},
	{validation.ErrInvalidChoice, ValidationInvalidChoice},
	{validation.ErrMalformedInput, ValidationMalformedInput},
}

// CodeFor resolves the error code for err. Unknown errors map to SystemUnexpectedError.
func CodeFor(err error) ErrorCode {
	for _, entry := range codeTable {
		if stderrors.Is(err, entry.target) {
			return entry.code
		}
	}
	return SystemUnexpectedError
}

// FromError builds a response for err, carrying validation details when present
func FromError(err error, correlationID string) *Response {
	var opts []ResponseOption

	var verr *validation.Error
	if stderrors.As(err, &verr) {
		opts = append(opts, WithDetails(verr.Details...))
	}

	return NewResponse(CodeFor(err), correlationID, opts...)
}

// String renders the response as a single shell line
func (r *Response) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s", r.Message)
	if len(r.Details) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(r.Details, "; "))
	}
	if r.Code == SystemUnexpectedError && r.CorrelationID != "" {
		fmt.Fprintf(&b, " [trace %s]", r.CorrelationID)
	}
	return b.String()
}
