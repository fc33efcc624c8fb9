package catalog

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the failures the catalog can report.
type ErrorKind int

const (
	KindDuplicateCharacterName ErrorKind = iota + 1
	KindCharacterNotFound
	KindShowNotFound
	KindIO
	KindParse
	KindSerialize
)

func (k ErrorKind) String() string {
	switch k {
	case KindDuplicateCharacterName:
		return "duplicate character name"
	case KindCharacterNotFound:
		return "character not found"
	case KindShowNotFound:
		return "show not found"
	case KindIO:
		return "io error"
	case KindParse:
		return "parse error"
	case KindSerialize:
		return "serialize error"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is matching. They compare by kind only, so any
// *Error with the same kind matches regardless of its context.
var (
	ErrDuplicateCharacterName = &Error{Kind: KindDuplicateCharacterName}
	ErrCharacterNotFound      = &Error{Kind: KindCharacterNotFound}
	ErrShowNotFound           = &Error{Kind: KindShowNotFound}
	ErrIO                     = &Error{Kind: KindIO}
	ErrParse                  = &Error{Kind: KindParse}
	ErrSerialize              = &Error{Kind: KindSerialize}
)

// Error is the single error type returned by catalog operations.
//
// Subject names what the failed lookup or write was about: a show or
// character name, a character id, or a document path depending on Kind.
type Error struct {
	Kind    ErrorKind
	Subject string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Subject != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Subject)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// ErrorKind returns a coarse classification used by callers that map
// failures onto exit behaviour or user hints.
func (e *Error) ErrorKind() string {
	switch e.Kind {
	case KindDuplicateCharacterName:
		return "conflict"
	case KindCharacterNotFound, KindShowNotFound:
		return "not_found"
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	case KindSerialize:
		return "serialize"
	default:
		return "unknown"
	}
}

func newError(kind ErrorKind, subject string, cause error) *Error {
	return &Error{Kind: kind, Subject: subject, Err: cause}
}
