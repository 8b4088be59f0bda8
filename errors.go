package workload

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNegativeValue is the cause attached to a FieldTypeError when a
	// count or duration field carries a value below zero.
	ErrNegativeValue = errors.New("value must not be negative")
	// ErrDurationTooLarge is the cause attached to a FieldTypeError when
	// a duration field carries a value too large for a duration to hold.
	ErrDurationTooLarge = errors.New("value too large for a duration")
	// ErrNotTable is the cause attached to a FieldTypeError when a
	// measurement section key holds a plain value instead of a table.
	ErrNotTable = errors.New("value must be a table")
)

// SyntaxError reports input that is not a well-formed document in the
// surface being parsed. The underlying decoder error is kept as the cause.
type SyntaxError struct {
	Err error
}

func (self *SyntaxError) Error() string {
	return fmt.Sprintf("malformed workload document: %v", self.Err)
}

func (self *SyntaxError) Unwrap() error {
	return self.Err
}

// FieldTypeError reports a well-formed document that carries a value of
// the wrong type, or outside the domain, for a known field.
type FieldTypeError struct {
	// Key is the document key of the offending field.
	Key string
	Err error
}

func (self *FieldTypeError) Error() string {
	return fmt.Sprintf("invalid value for field %q: %v", self.Key, self.Err)
}

func (self *FieldTypeError) Unwrap() error {
	return self.Err
}

// UnknownVariantError reports a name that is not a member of the
// enumeration it was parsed for.
type UnknownVariantError struct {
	// Kind is the enumeration, e.g. "distribution".
	Kind string
	// Value is the rejected name.
	Value string
	// Key is the document field that carried the value, when known.
	Key string
	// Allowed lists the member names of the enumeration.
	Allowed []string
}

func (self *UnknownVariantError) Error() string {
	allowed := strings.Join(self.Allowed, ", ")
	if self.Key != "" {
		return fmt.Sprintf("unknown %s %q for field %q, must be one of: %s",
			self.Kind, self.Value, self.Key, allowed)
	}
	return fmt.Sprintf("unknown %s %q, must be one of: %s",
		self.Kind, self.Value, allowed)
}
