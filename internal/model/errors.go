package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind categorizes why a merge run failed.
type ErrorKind string

const (
	ErrConfigNotFound   ErrorKind = "config_not_found"
	ErrConfigParse      ErrorKind = "config_parse"
	ErrConfigIncomplete ErrorKind = "config_incomplete"
	ErrInputNotFound    ErrorKind = "input_not_found"
	ErrInputEmpty       ErrorKind = "input_empty"
	ErrInputParse       ErrorKind = "input_parse"
	ErrSchemaViolation  ErrorKind = "schema_violation"
	ErrProcessing       ErrorKind = "processing"
)

// Error is a run failure of a known kind. Subject names the offending file,
// config path, table, or stage. Missing lists absent columns or config keys.
type Error struct {
	Kind    ErrorKind
	Subject string
	Missing []string
	Err     error
}

// NewError builds an Error of the given kind.
func NewError(kind ErrorKind, subject string, cause error) *Error {
	return &Error{Kind: kind, Subject: subject, Err: cause}
}

// MissingError builds an Error listing missing names.
func MissingError(kind ErrorKind, subject string, missing []string) *Error {
	return &Error{Kind: kind, Subject: subject, Missing: missing}
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case ErrConfigNotFound:
		msg = fmt.Sprintf("config file not found: %s", e.Subject)
	case ErrConfigParse:
		msg = fmt.Sprintf("failed to decode config file %s", e.Subject)
	case ErrConfigIncomplete:
		msg = fmt.Sprintf("config is missing required file paths: %s", strings.Join(e.Missing, ", "))
	case ErrInputNotFound:
		msg = fmt.Sprintf("input file not found: %s", e.Subject)
	case ErrInputEmpty:
		msg = fmt.Sprintf("no data in input file: %s", e.Subject)
	case ErrInputParse:
		msg = fmt.Sprintf("failed to parse input file %s", e.Subject)
	case ErrSchemaViolation:
		msg = fmt.Sprintf("missing required columns in %s: [%s]", e.Subject, strings.Join(e.Missing, ", "))
	default:
		msg = fmt.Sprintf("error during processing (%s)", e.Subject)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain, or
// ErrProcessing when the chain carries none. A nil error has no kind.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var me *Error
	if errors.As(err, &me) {
		return me.Kind
	}
	return ErrProcessing
}

// AsError returns the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var me *Error
	ok := errors.As(err, &me)
	return me, ok
}
