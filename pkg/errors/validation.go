package errors

import (
	"strings"
	"unicode"
)

// maxRoleLength bounds role names accepted from the CLI and batch files.
const maxRoleLength = 64

// ValidateRole validates a role name supplied from outside the process.
//
// Roles are an open vocabulary (unknown roles resolve through table
// defaults), so validation only rejects names that cannot be a component
// identifier:
//   - No empty names
//   - Maximum length of 64 characters
//   - Must start with a letter
//   - Letters, digits, '-' and '_' only
func ValidateRole(role string) error {
	if role == "" {
		return New(ErrCodeInvalidRole, "role cannot be empty")
	}
	if len(role) > maxRoleLength {
		return New(ErrCodeInvalidRole, "role too long (max %d characters)", maxRoleLength)
	}
	for i, r := range role {
		if i == 0 && !unicode.IsLetter(r) {
			return New(ErrCodeInvalidRole, "role must start with a letter: %q", role)
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return New(ErrCodeInvalidRole, "role contains invalid character %q: %q", r, role)
		}
	}
	return nil
}

// ValidateOptionalRole validates a role name that may be left empty,
// such as a section role or page role.
func ValidateOptionalRole(role string) error {
	if role == "" {
		return nil
	}
	return ValidateRole(role)
}

// ValidateOneOf checks that value is one of allowed, comparing
// case-insensitively. An empty value is accepted and means "use the default".
// field names the value in the error message.
func ValidateOneOf(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(a, value) {
			return nil
		}
	}
	return New(ErrCodeInvalidEnum, "invalid %s: %q (must be one of: %s)", field, value, strings.Join(allowed, ", "))
}

// ValidateDepth checks that a nesting depth or elevation level is non-negative.
func ValidateDepth(field string, n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative: %d", field, n)
	}
	return nil
}
