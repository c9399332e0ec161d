package identifier

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinLength is the shortest identifier accepted from the scanner.
const MinLength = 3

var (
	// ErrEmptyInput is returned when nothing printable remains after cleaning.
	ErrEmptyInput = errors.New("identifier is empty")
	// ErrTooShort is returned when the cleaned identifier is shorter than MinLength.
	ErrTooShort = errors.New("identifier is too short")
)

// Canonical strips non-printable runes, trims surrounding whitespace and
// upper-cases the result. It never fails.
func Canonical(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, raw)

	return strings.ToUpper(strings.TrimSpace(cleaned))
}

// Normalize returns the canonical form of raw, rejecting values that cannot
// be a real identifier.
func Normalize(raw string) (string, error) {
	key := Canonical(raw)
	if key == "" {
		return "", ErrEmptyInput
	}
	if utf8.RuneCountInString(key) < MinLength {
		return "", fmt.Errorf("%w: %q has fewer than %d characters", ErrTooShort, key, MinLength)
	}
	return key, nil
}
