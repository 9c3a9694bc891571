package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxTitleLength = 120

// Required validates that a form field is present and not overly long.
func Required(field, value string) error {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return fmt.Errorf("%s is required", field)
	}

	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return fmt.Errorf("%s is too long (max %d characters)", field, MaxTitleLength)
	}

	return nil
}

// Emoji validates a reaction key: a short, non-empty grapheme run.
func Emoji(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Errorf("emoji is required")
	}
	if utf8.RuneCountInString(trimmed) > 16 {
		return fmt.Errorf("emoji is too long")
	}
	return nil
}
