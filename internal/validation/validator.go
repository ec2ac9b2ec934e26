package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrMalformedInput is reported when an entry cannot be interpreted, such as a
// non-numeric amount or a blank account number
var ErrMalformedInput = errors.New("malformed input")

// ErrInvalidChoice is reported for a well-formed menu selection that names no option
var ErrInvalidChoice = errors.New("invalid menu choice")

// Error lists the fields that failed validation. It unwraps to ErrMalformedInput.
type Error struct {
	Details []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", ErrMalformedInput, strings.Join(e.Details, "; "))
}

func (e *Error) Unwrap() error {
	return ErrMalformedInput
}

// Amounts are accepted only within these decimal exponents. Arithmetic on a
// decimal rescales to the smaller exponent, so an entry like 1e-200000000
// would never finish.
const (
	MinAmountExponent = -18
	MaxAmountExponent = 18
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("amount", validateAmount)
	_ = v.RegisterValidation("menu_choice", validateMenuChoice)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and converts any failure into an *Error
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), describeTag(fe)))
	}
	sort.Strings(details)

	return &Error{Details: details}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "account_number":
		return "must not contain whitespace or control characters"
	case "amount":
		if _, err := decimal.NewFromString(strings.TrimSpace(fmt.Sprint(fe.Value()))); err == nil {
			return fmt.Sprintf("%q is out of range", fe.Value())
		}
		return fmt.Sprintf("%q is not a number", fe.Value())
	case "menu_choice":
		return fmt.Sprintf("%q is not a whole number", fe.Value())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// Custom validation functions

// validateAccountNumber accepts any non-empty identifier free of whitespace and control characters
func validateAccountNumber(fl validator.FieldLevel) bool {
	accountNumber := fl.Field().String()
	if accountNumber == "" {
		return false
	}

	for _, r := range accountNumber {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}

	return true
}

// validateAmount checks the field parses as a decimal number with a bounded
// exponent. Sign is not checked here; non-positive amounts are rejected by the
// account itself.
func validateAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}

	exp := amount.Exponent()
	return exp >= MinAmountExponent && exp <= MaxAmountExponent
}

// validateMenuChoice checks the field is an optionally signed integer that fits an int
func validateMenuChoice(fl validator.FieldLevel) bool {
	_, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	return err == nil
}
