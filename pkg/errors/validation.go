package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxDeckSlides is the largest slide count accepted from untrusted input.
const MaxDeckSlides = 500

// themeIDRegex matches normalized theme identifiers.
var themeIDRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateThemeID validates a normalized theme identifier.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - Lowercase letters, digits, underscore and dash only
//   - Maximum length of 64 characters
//
// Alias resolution (e.g. "theme2" -> "builtin_2") happens in the tokens
// package before this check.
func ValidateThemeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidTheme, "theme id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidTheme, "theme id too long (max 64 characters)")
	}

	if !themeIDRegex.MatchString(id) {
		return New(ErrCodeInvalidTheme, "invalid theme id: %q", id)
	}

	return nil
}

// hexColorRegex matches six-digit hex color literals with optional leading #.
var hexColorRegex = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ValidateHexColor validates a hex color literal such as "#1b3a5c".
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidInput, "color cannot be empty")
	}

	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidInput, "invalid hex color: %q", s)
	}

	return nil
}

// ValidateFontName validates a font family name supplied by a theme or an
// API request. It rejects names that could corrupt generated markup.
func ValidateFontName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "font name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "font name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "font name contains control characters")
		}
	}

	if strings.ContainsAny(name, `<>"'&`) {
		return New(ErrCodeInvalidInput, "font name contains invalid characters: %q", name)
	}

	return nil
}

// jobIDRegex matches canonical UUID strings as issued by the job store.
var jobIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateJobID validates a job identifier before it reaches a store lookup.
func ValidateJobID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "job id cannot be empty")
	}

	if !jobIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid job id: %q", id)
	}

	return nil
}

// ValidateDeckSize validates the number of slides in an untrusted deck.
func ValidateDeckSize(slides int) error {
	if slides <= 0 {
		return New(ErrCodeInvalidDeck, "deck has no slides")
	}

	if slides > MaxDeckSlides {
		return New(ErrCodeInvalidDeck, "deck too large: %d slides (max %d)", slides, MaxDeckSlides)
	}

	return nil
}
