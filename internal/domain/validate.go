package domain

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// E.164: + followed by up to 15 digits, no leading zero.
	phonePattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

// optional normalizes an optional string field: whitespace-only input
// becomes absent instead of an error.
func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// requireText checks a required text field: non-blank and within max.
// Bounds count characters, not bytes, so multibyte input is measured
// the way a user sees it.
func requireText(field, value string, max int) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return errRequired(field)
	}
	if utf8.RuneCountInString(value) > max {
		return errMaxLength(field, max)
	}
	return nil
}

// optionalText bounds an optional text field. Callers must have
// normalized the pointer through optional() first.
func optionalText(field string, value *string, max int) *ValidationError {
	if value == nil {
		return nil
	}
	if utf8.RuneCountInString(*value) > max {
		return errMaxLength(field, max)
	}
	return nil
}

// validURL accepts absolute http/https URLs only.
func validURL(field string, value *string) *ValidationError {
	if value == nil {
		return nil
	}
	u, err := url.Parse(*value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errInvalid(field, "must be a valid http(s) URL")
	}
	return nil
}

func validEmail(field, value string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return errRequired(field)
	}
	if !emailPattern.MatchString(value) {
		return errInvalid(field, "must be a valid email address")
	}
	return nil
}

// normalizePhone strips formatting (spaces, dashes, parentheses) so
// "+44 20 7123 4567" and "+442071234567" compare equal.
func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validPhone checks an optional, already-normalized phone for E.164.
func validPhone(field string, value *string) *ValidationError {
	if value == nil {
		return nil
	}
	if !phonePattern.MatchString(*value) {
		return errInvalid(field, "must be a valid E.164 phone number")
	}
	return nil
}

// validStringList bounds a list of short text items (responsibilities,
// technologies): at most maxItems entries, each non-blank and at most
// maxItemLen characters.
func validStringList(field string, items []string, maxItems, maxItemLen int) *ValidationError {
	if len(items) > maxItems {
		return errMaxLength(field, maxItems)
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			return errRequired(field + " item")
		}
		if utf8.RuneCountInString(item) > maxItemLen {
			return errMaxLength(field+" item", maxItemLen)
		}
	}
	return nil
}
