// Package guarderr defines the error taxonomy for the steal-guard API.
package guarderr

import (
	"errors"
	"fmt"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	// TypeEmpty: a steal was attempted on a slot that holds no value.
	TypeEmpty ErrorType = "EmptyOptionError"
	// TypeUnresolved: a ValueGuard reached the end of its life without the
	// stolen value being restored.
	TypeUnresolved ErrorType = "UnresolvedGuardError"
	// TypeExclusivity: a slot or guard was accessed outside the single
	// live-guard discipline.
	TypeExclusivity ErrorType = "ExclusivityError"
)

// GuardError is the interface for all errors produced by this module.
type GuardError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for guard errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// EmptyError reports a steal from an empty slot. Op names the operation
// that was refused.
type EmptyError struct {
	BaseError
	Op string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.ErrType, e.Op, e.Msg)
}

// UnresolvedError reports a ValueGuard dropped without restore. It is used
// as a panic value, never returned.
type UnresolvedError struct {
	BaseError
}

// ExclusivityError reports access to a slot while a guard holds it, or to a
// guard after it has been resolved. It is used as a panic value.
type ExclusivityError struct {
	BaseError
	Op string
}

func (e *ExclusivityError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.ErrType, e.Op, e.Msg)
}

// NewEmptyError creates an EmptyError for the named operation.
func NewEmptyError(op string) *EmptyError {
	return &EmptyError{
		BaseError: BaseError{
			Msg:     "cannot steal from an empty option",
			ErrType: TypeEmpty,
		},
		Op: op,
	}
}

// NewUnresolvedError creates an UnresolvedError.
func NewUnresolvedError() *UnresolvedError {
	return &UnresolvedError{
		BaseError: BaseError{
			Msg:     "stolen value was never restored to its option",
			ErrType: TypeUnresolved,
		},
	}
}

// NewExclusivityError creates an ExclusivityError for the named operation.
func NewExclusivityError(op string) *ExclusivityError {
	return &ExclusivityError{
		BaseError: BaseError{
			Msg:     "option is exclusively held by a live guard",
			ErrType: TypeExclusivity,
		},
		Op: op,
	}
}

// NewResolvedGuardError creates an ExclusivityError for use of a guard that
// has already been resolved.
func NewResolvedGuardError(op string) *ExclusivityError {
	return &ExclusivityError{
		BaseError: BaseError{
			Msg:     "guard has already been resolved",
			ErrType: TypeExclusivity,
		},
		Op: op,
	}
}

// IsEmpty reports whether err is an EmptyError.
func IsEmpty(err error) bool {
	var e *EmptyError
	return errors.As(err, &e)
}

// IsUnresolved reports whether err is an UnresolvedError.
func IsUnresolved(err error) bool {
	var e *UnresolvedError
	return errors.As(err, &e)
}

// IsExclusivity reports whether err is an ExclusivityError.
func IsExclusivity(err error) bool {
	var e *ExclusivityError
	return errors.As(err, &e)
}
