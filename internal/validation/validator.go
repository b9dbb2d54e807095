package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("meta_date_field", validateMetaDateField)
	_ = v.RegisterValidation("date_string", validateDateString)
	_ = v.RegisterValidation("amount_string", validateAmountString)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct and returns field errors keyed by json name
func (v *Validator) Struct(s interface{}) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrors := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errs, ok := err.(validator.ValidationErrors); ok {
		validationErrors = errs
	}
	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = fe.Tag()
	}
	return fieldErrors
}

// Custom validation functions

// validateTransactionType validates that transaction type is one of the allowed types
func validateTransactionType(fl validator.FieldLevel) bool {
	txType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"withdrawal":      true,
		"deposit":         true,
		"transfer":        true,
		"opening balance": true,
		"reconciliation":  true,
	}
	return validTypes[txType]
}

// validateAccountType validates that account type is one of the allowed types
func validateAccountType(fl validator.FieldLevel) bool {
	accountType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"asset":     true,
		"expense":   true,
		"revenue":   true,
		"liability": true,
		"cash":      true,
	}
	return validTypes[accountType]
}

// validateMetaDateField validates that a meta date field name is known
func validateMetaDateField(fl validator.FieldLevel) bool {
	field := strings.ToLower(fl.Field().String())
	validFields := map[string]bool{
		"interest_date": true,
		"book_date":     true,
		"process_date":  true,
		"due_date":      true,
		"payment_date":  true,
		"invoice_date":  true,
	}
	return validFields[field]
}

// validateDateString validates a YYYY-MM-DD date string
func validateDateString(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	if date == "" {
		return false
	}
	matched, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, date)
	return matched
}

// validateAmountString validates a decimal amount string with an optional sign
func validateAmountString(fl validator.FieldLevel) bool {
	amount := fl.Field().String()
	if amount == "" {
		return false
	}
	matched, _ := regexp.MatchString(`^-?\d+(\.\d+)?$`, amount)
	return matched
}
