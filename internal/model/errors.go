package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrAuthFailure  = errors.New("invalid username or password")
	ErrForbidden    = errors.New("forbidden")
	ErrAssetIO      = errors.New("asset i/o failure")

	ErrRequired          = errors.New("field is required")
	ErrInvalidFormat     = errors.New("invalid format")
	ErrOutOfRange        = errors.New("value out of range")
	ErrTrailingDelimiter = errors.New("trailing delimiter")
	ErrEmptyItem         = errors.New("empty item")
	ErrUsernameTaken     = errors.New("username is taken")
)

// FieldError describes a failed rule on a single form field.
// Index is the 0-based position of the offending item for list fields and -1
// otherwise.
type FieldError struct {
	Kind    error
	Field   string
	Index   int
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// ValidationErrors holds at most one FieldError per field, in form order.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, e := range v {
		errs = append(errs, e)
	}
	return errs
}

// Field returns the error recorded for field, or nil.
func (v ValidationErrors) Field(name string) *FieldError {
	for _, e := range v {
		if e.Field == name {
			return e
		}
	}
	return nil
}

// ForbiddenError is returned when the actor's role does not permit an action.
type ForbiddenError struct {
	Action    string
	ActorRole Role
	Reason    string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s %s forbidden: %s", e.ActorRole, e.Action, e.Reason)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// AssetError wraps a failed asset store operation.
type AssetError struct {
	Op  string
	Ref string
	Err error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("asset %s %q: %v", e.Op, e.Ref, e.Err)
}

func (e *AssetError) Unwrap() []error {
	return []error{ErrAssetIO, e.Err}
}
