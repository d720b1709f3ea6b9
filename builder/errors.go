// Package builder holds the runtime support shared by generated builders.
//
// A generated Build method reports the first field that was never set with a
// *MissingFieldError. Callers can match it with errors.Is(err, ErrNotSet) or
// recover the field name with FieldName.
package builder

import (
	"errors"
	"fmt"
)

// ErrNotSet is matched by every error returned from a generated Build method.
var ErrNotSet = errors.New("field is not set")

// MissingFieldError names the record field that was absent when Build ran.
type MissingFieldError struct {
	Record string // record type name, e.g. "Command"
	Field  string // Go field name, e.g. "Env"
}

// NotSet returns a *MissingFieldError for the given record and field.
func NotSet(record, field string) error {
	return &MissingFieldError{Record: record, Field: field}
}

// Error implements error.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is not set", e.Field)
}

// Is reports whether target is ErrNotSet.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrNotSet
}

// FieldName returns the unset field named by the first *MissingFieldError in
// err's chain.
func FieldName(err error) (string, bool) {
	var mfe *MissingFieldError
	if !errors.As(err, &mfe) {
		return "", false
	}

	return mfe.Field, true
}
