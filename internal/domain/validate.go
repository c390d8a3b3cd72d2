package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// MinNameLetters is the fewest letters each of the first and last name must contain
const MinNameLetters = 2

// parseBoundedInt parses text as a base-10 integer within [min, max].
// label is the human name of the field used in messages.
func parseBoundedInt(field Field, label, text string, min, max int64) (int64, *ValidationError) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, &ValidationError{Kind: KindMissingField, Field: field, Message: label + " is required"}
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// A syntactically valid number too large for int64 is a range problem, not a format one
		if errors.Is(err, strconv.ErrRange) {
			return 0, outOfRange(field, label, min, max)
		}
		return 0, &ValidationError{Kind: KindNotANumber, Field: field, Message: label + " must be a whole number"}
	}

	if n < min || n > max {
		return 0, outOfRange(field, label, min, max)
	}
	return n, nil
}

func outOfRange(field Field, label string, min, max int64) *ValidationError {
	msg := fmt.Sprintf("%s must be between %d and %d", label, min, max)
	if max == math.MaxInt64 {
		msg = fmt.Sprintf("%s must be at least %d", label, min)
	}
	return &ValidationError{Kind: KindOutOfRange, Field: field, Message: msg}
}

// parseID validates an employee identifier
func parseID(text string) (int64, *ValidationError) {
	return parseBoundedInt(FieldID, "employee ID", text, 1, math.MaxInt64)
}

// parseUnits validates the number of messages sent
func parseUnits(text string) (int, *ValidationError) {
	n, verr := parseBoundedInt(FieldUnits, "messages sent", text, MinUnits, MaxUnits)
	return int(n), verr
}

// parseName splits a combined name into first and last, reporting every broken rule
func parseName(text string) (first, last string, errs ValidationErrors) {
	if strings.TrimSpace(text) == "" {
		return "", "", ValidationErrors{{Kind: KindMissingField, Field: FieldName, Message: "worker name is required"}}
	}

	tokens := strings.Fields(text)
	if len(tokens) != 2 {
		return "", "", ValidationErrors{{
			Kind:    KindWrongTokenCount,
			Field:   FieldName,
			Message: fmt.Sprintf("name must be a first and last name separated by a space (got %d words)", len(tokens)),
		}}
	}

	if verr := checkLetters("first name", tokens[0]); verr != nil {
		errs = append(errs, verr)
	}
	if verr := checkLetters("last name", tokens[1]); verr != nil {
		errs = append(errs, verr)
	}
	if len(errs) > 0 {
		return "", "", errs
	}
	return tokens[0], tokens[1], nil
}

// validateNamePart checks a separately supplied first or last name
func validateNamePart(label, text string) (string, *ValidationError) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &ValidationError{Kind: KindMissingField, Field: FieldName, Message: label + " is required"}
	}
	if len(strings.Fields(text)) != 1 {
		return "", &ValidationError{Kind: KindWrongTokenCount, Field: FieldName, Message: label + " must be a single word"}
	}
	if verr := checkLetters(label, text); verr != nil {
		return "", verr
	}
	return text, nil
}

func checkLetters(label, token string) *ValidationError {
	if countLetters(token) < MinNameLetters {
		return &ValidationError{
			Kind:    KindTooFewLetters,
			Field:   FieldName,
			Message: fmt.Sprintf("%s %q must contain at least %d letters", label, token, MinNameLetters),
		}
	}
	return nil
}

// countLetters counts alphabetic runes; punctuation and digits are allowed but not counted
func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
