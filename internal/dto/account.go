package dto

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Shell input DTOs. Fields are populated from trimmed user entries and
// validated with validation.GetValidator() before use.

// MenuChoiceRequest carries the raw menu selection
type MenuChoiceRequest struct {
	Choice string `json:"choice" validate:"required,menu_choice"`
}

// Value returns the selection as an integer. Only valid after validation.
func (r MenuChoiceRequest) Value() int {
	n, err := strconv.Atoi(strings.TrimSpace(r.Choice))
	if err != nil {
		return 0
	}
	return n
}

// CreateAccountRequest represents the fields collected for a new account.
// The account type is checked by the ledger so an unknown type is reported as
// an invalid variant rather than malformed input.
type CreateAccountRequest struct {
	AccountType   string `json:"account_type"`
	AccountNumber string `json:"account_number" validate:"required,account_number"`
	AccountHolder string `json:"account_holder"`
}

// AccountNumberRequest identifies an existing account
type AccountNumberRequest struct {
	AccountNumber string `json:"account_number" validate:"required,account_number"`
}

// AmountRequest carries a raw amount entry
type AmountRequest struct {
	Amount string `json:"amount" validate:"required,amount"`
}

// Value returns the parsed amount. Only valid after validation.
func (r AmountRequest) Value() decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return decimal.Zero
	}
	return amount
}
