package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "Account Not Found", code: AccountNotFound, expected: "Account not found!"},
		{name: "Account Already Exists", code: AccountAlreadyExists, expected: "Account already exists!"},
		{name: "Account Invalid Type", code: AccountInvalidType, expected: "Invalid account type!"},
		{name: "Insufficient Balance", code: AccountInsufficientBalance, expected: "Insufficient balance."},
		{name: "Overdraft Exceeded", code: AccountOverdraftExceeded, expected: "Overdraft limit exceeded."},
		{name: "Interest Not Permitted", code: AccountOperationNotPermitted, expected: "Interest can only be applied to savings accounts."},
		{name: "Invalid Amount", code: TransactionInvalidAmount, expected: "Amount must be greater than zero."},
		{name: "Malformed Input", code: ValidationMalformedInput, expected: "Invalid input."},
		{name: "Invalid Choice", code: ValidationInvalidChoice, expected: "Invalid choice. Please try again."},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
			s.True(IsValidErrorCode(tc.code))
		})
	}
}

// TestGetErrorMessage_UnknownCode tests the fallback message
func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
	s.False(IsValidErrorCode(ErrorCode("NOPE_999")))
}

// TestErrorCodes_Unique tests that no two kinds share a code
func (s *CodesTestSuite) TestErrorCodes_Unique() {
	seen := map[ErrorCode]bool{}
	for code := range errorMessages {
		s.False(seen[code], "duplicate code %s", code)
		seen[code] = true
	}
	s.Len(seen, 10)
}
