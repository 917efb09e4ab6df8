package application

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Every error returned by a service wraps exactly one of these.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage error")
	ErrForbidden  = errors.New("forbidden")
)

// OpError carries a kind, a caller-facing message and the underlying cause.
type OpError struct {
	Kind    error
	Message string
	Err     error
}

func (e *OpError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

var (
	ErrPhaseAlreadyStarted = &OpError{Kind: ErrConflict, Message: "phase has already been started for this project"}
	ErrAlreadyMember       = &OpError{Kind: ErrConflict, Message: "user is already a member of this project"}
	ErrAlreadyJoined       = &OpError{Kind: ErrConflict, Message: "student has already joined this workspace"}
	ErrInviteUnchanged     = &OpError{Kind: ErrNotFound, Message: "invitation not found or already in that state"}
	ErrProjectNotFound     = &OpError{Kind: ErrNotFound, Message: "project not found"}
	ErrPhaseNotFound       = &OpError{Kind: ErrNotFound, Message: "phase not found"}
	ErrRevisionNotFound    = &OpError{Kind: ErrNotFound, Message: "revision not found"}
)

func validationf(format string, args ...any) error {
	return &OpError{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func notFound(message string) error {
	return &OpError{Kind: ErrNotFound, Message: message}
}

func storageErr(message string, err error) error {
	return &OpError{Kind: ErrStorage, Message: message, Err: err}
}

func forbidden(message string) error {
	return &OpError{Kind: ErrForbidden, Message: message}
}

func conflictf(format string, args ...any) error {
	return &OpError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// classify maps a repository error onto an error kind. nf is returned for a
// missing row. Errors that already carry a kind pass through unchanged.
func classify(err error, nf error) error {
	if err == nil {
		return nil
	}
	var op *OpError
	if errors.As(err, &op) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if nf != nil {
			return nf
		}
		return notFound("record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &OpError{Kind: ErrConflict, Message: "record already exists", Err: err}
	}
	return storageErr("storage failure", err)
}

// Kind returns the error kind wrapped by err, or ErrStorage for anything unclassified.
func Kind(err error) error {
	for _, k := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrForbidden, ErrStorage} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrStorage
}
