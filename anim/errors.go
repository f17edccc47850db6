package anim

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter  = errors.New("anim: invalid parameter")
	ErrTargetDestroyed   = errors.New("anim: target destroyed")
	ErrStopped           = errors.New("anim: stopped")
	ErrSequenceCancelled = errors.New("anim: sequence cancelled")
	ErrNonFinite         = errors.New("anim: easing produced a non-finite value")
)

// ParamError reports a rejected Spec field. It matches ErrInvalidParameter.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("anim: invalid %s: %s", e.Field, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

// FaultError is raised when updating a single animation fails. The
// animation is cancelled; the scheduler and its other animations go on.
type FaultError struct {
	ID   Handle
	Kind Kind
	Err  error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("anim: animation %d (%s): %v", e.ID, e.Kind, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}

func invalid(field, format string, args ...any) error {
	return &ParamError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
