package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies which validation rule a submission broke
type ErrorKind string

const (
	KindMissingField     ErrorKind = "missing_field"
	KindNotANumber       ErrorKind = "not_a_number"
	KindOutOfRange       ErrorKind = "out_of_range"
	KindWrongTokenCount  ErrorKind = "wrong_token_count"
	KindTooFewLetters    ErrorKind = "too_few_letters"
	KindIdentityConflict ErrorKind = "identity_conflict"
)

// Field names the input a validation error belongs to
type Field string

const (
	FieldID    Field = "id"
	FieldName  Field = "name"
	FieldUnits Field = "units"
)

// Sentinels for errors.Is matching against a ValidationError's kind
var (
	ErrMissingField     = errors.New("missing field")
	ErrNotANumber       = errors.New("not a number")
	ErrOutOfRange       = errors.New("out of range")
	ErrWrongTokenCount  = errors.New("wrong token count")
	ErrTooFewLetters    = errors.New("too few letters")
	ErrIdentityConflict = errors.New("identity conflict")
)

// Repository errors
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrStoreUnavailable = errors.New("store unavailable")
)

var kindSentinels = map[ErrorKind]error{
	KindMissingField:     ErrMissingField,
	KindNotANumber:       ErrNotANumber,
	KindOutOfRange:       ErrOutOfRange,
	KindWrongTokenCount:  ErrWrongTokenCount,
	KindTooFewLetters:    ErrTooFewLetters,
	KindIdentityConflict: ErrIdentityConflict,
}

// ValidationError reports one violated rule on one input field
type ValidationError struct {
	Kind    ErrorKind
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// Is lets errors.Is(err, ErrOutOfRange) match by kind
func (e *ValidationError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// ValidationErrors holds every rule a submission broke, in field order
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual errors to errors.Is and errors.As
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, e := range v {
		errs = append(errs, e)
	}
	return errs
}

// ForField returns the errors reported against a single field
func (v ValidationErrors) ForField(f Field) ValidationErrors {
	var out ValidationErrors
	for _, e := range v {
		if e.Field == f {
			out = append(out, e)
		}
	}
	return out
}

// Has returns true if any error of the given kind was reported
func (v ValidationErrors) Has(kind ErrorKind) bool {
	for _, e := range v {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// NewIdentityConflict builds the error for a name that does not match the stored employee
func NewIdentityConflict(id int64, stored, submitted string) *ValidationError {
	return &ValidationError{
		Kind:    KindIdentityConflict,
		Field:   FieldName,
		Message: fmt.Sprintf("name %q does not match employee %d (%q)", submitted, id, stored),
	}
}
