// Package validation implements the field rules applied to every
// free-text submission before it reaches storage: whitespace trimming,
// required/length constraints and a blocklist of suspicious SQL and
// markup patterns. The blocklist is a defense-in-depth measure; the
// primary SQL-injection defense is that every statement the handlers
// issue is parameterized.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field bounds shared with the model layer.
const (
	TitleMaxLen       = 250
	DescriptionMaxLen = 5000
	UsernameMinLen    = 3
	UsernameMaxLen    = 50
	EmailMaxLen       = 120
	PasswordMinLen    = 8
	PasswordMaxLen    = 128
)

// FieldError reports why a single field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Constraints declares what a free-text field accepts.
type Constraints struct {
	Required bool
	MinLen   int
	MaxLen   int
}

// suspiciousPatterns matches obvious SQL-injection and XSS payloads.
var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bUNION\b.*\bSELECT\b`),
	regexp.MustCompile(`(?i)\bDROP\b.*\bTABLE\b`),
	regexp.MustCompile(`(?i)\bINSERT\b.*\bINTO\b`),
	regexp.MustCompile(`(?i)\bUPDATE\b.*\bSET\b`),
	regexp.MustCompile(`(?i)\bDELETE\b.*\bFROM\b`),
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)onerror\s*=`),
	regexp.MustCompile(`(?i)onload\s*=`),
	regexp.MustCompile(`(?i)<iframe`),
	regexp.MustCompile(`--\s*$`),                                 // SQL comment
	regexp.MustCompile(`(?i);\s*DROP`),                           // stacked query
	regexp.MustCompile(`(?i)'\s*(OR|AND)\s*'?\d*'?\s*=\s*'?\d*`), // ' OR '1'='1
}

// ContainsMaliciousInput reports whether value matches any blocklisted pattern.
func ContainsMaliciousInput(value string) bool {
	for _, p := range suspiciousPatterns {
		if p.MatchString(value) {
			return true
		}
	}
	return false
}

var validate = validator.New()

// Field trims value and applies c in order: required, length bounds,
// blocklist. It returns the accepted trimmed value, or the first rule
// violation.
func Field(name, value string, c Constraints) (string, *FieldError) {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		if c.Required {
			return "", &FieldError{Field: name, Message: fmt.Sprintf("%s is required", name)}
		}
		return "", nil
	}
	if c.MinLen > 0 && len(trimmed) < c.MinLen {
		return "", &FieldError{Field: name, Message: fmt.Sprintf("%s must be at least %d characters", name, c.MinLen)}
	}
	if c.MaxLen > 0 && len(trimmed) > c.MaxLen {
		return "", &FieldError{Field: name, Message: fmt.Sprintf("%s must not exceed %d characters", name, c.MaxLen)}
	}
	if ContainsMaliciousInput(trimmed) {
		return "", &FieldError{Field: name, Message: fmt.Sprintf("%s contains disallowed content", name)}
	}
	return trimmed, nil
}

// Email applies the usual field rules plus address syntax.
func Email(name, value string) (string, *FieldError) {
	trimmed, fieldErr := Field(name, value, Constraints{Required: true, MaxLen: EmailMaxLen})
	if fieldErr != nil {
		return "", fieldErr
	}
	if err := validate.Var(trimmed, "email"); err != nil {
		return "", &FieldError{Field: name, Message: "Invalid email address"}
	}
	return trimmed, nil
}

// Password checks length bounds only. The value is never trimmed:
// whitespace is significant in a password.
func Password(name, value string) *FieldError {
	if value == "" {
		return &FieldError{Field: name, Message: fmt.Sprintf("%s is required", name)}
	}
	if len(value) < PasswordMinLen || len(value) > PasswordMaxLen {
		return &FieldError{
			Field:   name,
			Message: fmt.Sprintf("%s must be between %d and %d characters", name, PasswordMinLen, PasswordMaxLen),
		}
	}
	return nil
}
