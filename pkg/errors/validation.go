package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateTypeName validates a root type name supplied by a user.
// The name ends up verbatim in "export interface <name>", so it must be a
// plain identifier:
//   - No empty names
//   - No control characters or whitespace
//   - Maximum length of 256 characters
//   - Must not start with a digit
//   - Only letters, digits, '_' and '$'
func ValidateTypeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "type name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidName, "type name too long (max 256 characters)")
	}

	for i, r := range name {
		switch {
		case unicode.IsControl(r) || unicode.IsSpace(r):
			return New(ErrCodeInvalidName, "type name contains whitespace or control characters")
		case i == 0 && unicode.IsDigit(r):
			return New(ErrCodeInvalidName, "type name cannot start with a digit: %q", name)
		case !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$':
			return New(ErrCodeInvalidName, "type name contains invalid character %q", r)
		}
	}

	return nil
}

// typeScriptVersionRegex matches "latest" or a dotted version such as 4.9 or 5.3.2.
var typeScriptVersionRegex = regexp.MustCompile(`^(latest|\d+(\.\d+){0,2})$`)

// ValidateTypeScriptVersion validates the target TypeScript version setting.
func ValidateTypeScriptVersion(version string) error {
	if !typeScriptVersionRegex.MatchString(version) {
		return New(ErrCodeInvalidConfig, "invalid typescript version %q (want \"latest\" or e.g. \"5.3\")", version)
	}
	return nil
}

// ValidateIndentation validates an indentation unit. Only spaces and tabs
// are accepted, and the unit must not be empty.
func ValidateIndentation(indent string) error {
	if indent == "" {
		return New(ErrCodeInvalidConfig, "indentation cannot be empty")
	}
	if strings.Trim(indent, " \t") != "" {
		return New(ErrCodeInvalidConfig, "indentation must contain only spaces or tabs, got %q", indent)
	}
	return nil
}

// ValidateDelimiter validates the string literal delimiter.
func ValidateDelimiter(delim string) error {
	switch delim {
	case `"`, `'`:
		return nil
	case "":
		return New(ErrCodeInvalidConfig, "string delimiter cannot be empty")
	default:
		return New(ErrCodeInvalidConfig, "string delimiter must be \" or ', got %q", delim)
	}
}
