package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	// Indian mobile number - exactly 10 digits
	PhonePattern = `^\d{10}$`

	// Postal PIN code - exactly 6 digits
	PinCodePattern = `^\d{6}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// Class 12 marks bounds (percentage)
	MarksMin = 0.0
	MarksMax = 100.0
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email   *regexp.Regexp
	Phone   *regexp.Regexp
	PinCode *regexp.Regexp
}{
	Email:   regexp.MustCompile(EmailPattern),
	Phone:   regexp.MustCompile(PhonePattern),
	PinCode: regexp.MustCompile(PinCodePattern),
}

// IsValidEmail reports whether s has a plausible email shape
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// IsValidPhone reports whether s is exactly 10 digits
func IsValidPhone(s string) bool {
	return CompiledPatterns.Phone.MatchString(s)
}

// IsValidPinCode reports whether s is exactly 6 digits
func IsValidPinCode(s string) bool {
	return CompiledPatterns.PinCode.MatchString(s)
}

// IsValidMarks reports whether marks are within [0,100]
func IsValidMarks(marks float64) bool {
	return marks >= MarksMin && marks <= MarksMax
}

// StringValidation validates a string value against length and pattern rules
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	// Check if required
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	// Check min length
	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	// Check max length
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	// Check pattern
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
