// Package errors provides the error taxonomy used across slearn.
//
// Every fallible operation in the library returns one of four typed errors:
// InvalidParamsError (bad configuration), InvalidDataError (inconsistent or
// degenerate data), UntrainedModelError (predict before train), or
// UnknownError (unclassified internal failure). No operation panics on
// caller-supplied input.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("slearn warning: %v\n", w)
	}
	// zerolog sink, installed lazily by pkg/log to avoid an import cycle.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the library-wide warning handler.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // drop all warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink. Used by pkg/log.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn raises a warning. The zerolog sink takes precedence when installed.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// UnderdeterminedWarning is raised when an unregularized model is trained on
// fewer observations than variables. The Gram matrix is guaranteed singular
// in that case, so training will fail unless a positive penalty is set.
type UnderdeterminedWarning struct {
	Model string
	Rows  int
	Cols  int
}

func (w *UnderdeterminedWarning) Error() string {
	return fmt.Sprintf("%s trained with %d observations for %d variables; the normal matrix cannot be inverted without a positive penalty", w.Model, w.Rows, w.Cols)
}

// MarshalZerologObject adds structured warning fields to a zerolog event.
func (w *UnderdeterminedWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("model", w.Model).
		Int("rows", w.Rows).
		Int("cols", w.Cols).
		Str("type", "UnderdeterminedWarning")
}

// NewUnderdeterminedWarning creates a new UnderdeterminedWarning.
func NewUnderdeterminedWarning(model string, rows, cols int) *UnderdeterminedWarning {
	return &UnderdeterminedWarning{Model: model, Rows: rows, Cols: cols}
}

// ===========================================================================
//
//	Typed errors
//
// ===========================================================================

// InvalidParamsError reports invalid configuration at construction time,
// such as a negative ridge penalty.
type InvalidParamsError struct {
	Param  string
	Reason string
	Value  interface{}
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("slearn: invalid parameters: '%s' %s (got: %v)", e.Param, e.Reason, e.Value)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *InvalidParamsError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param", e.Param).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "InvalidParamsError")
}

// NewInvalidParamsError creates an InvalidParamsError with a stack trace.
func NewInvalidParamsError(param, reason string, value interface{}) error {
	err := &InvalidParamsError{Param: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// InvalidDataError reports inconsistent or degenerate data: zero training
// observations, row-count mismatches, predict-time column mismatches, or a
// singular normal matrix.
type InvalidDataError struct {
	Op      string
	Message string
	Err     error
}

func (e *InvalidDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("slearn: %s: invalid data: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("slearn: %s: invalid data: %s", e.Op, e.Message)
}

func (e *InvalidDataError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *InvalidDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "InvalidDataError")
}

// NewInvalidDataError creates an InvalidDataError with a stack trace.
func NewInvalidDataError(op, message string) error {
	err := &InvalidDataError{Op: op, Message: message}
	return errors.WithStack(err)
}

// NewInvalidDataErrorf creates an InvalidDataError with a formatted message.
func NewInvalidDataErrorf(op, format string, args ...interface{}) error {
	err := &InvalidDataError{Op: op, Message: fmt.Sprintf(format, args...)}
	return errors.WithStack(err)
}

// WrapInvalidData wraps an underlying cause as an InvalidDataError.
func WrapInvalidData(err error, op, message string) error {
	wrapped := &InvalidDataError{Op: op, Message: message, Err: err}
	return errors.WithStack(wrapped)
}

// UntrainedModelError reports Predict being called before any successful
// Train.
type UntrainedModelError struct {
	Model  string
	Method string
}

func (e *UntrainedModelError) Error() string {
	return fmt.Sprintf("slearn: %s: this model is not trained yet. Call Train() before using %s()", e.Model, e.Method)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *UntrainedModelError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model", e.Model).
		Str("method", e.Method).
		Str("type", "UntrainedModelError")
}

// NewUntrainedModelError creates an UntrainedModelError with a stack trace.
func NewUntrainedModelError(model, method string) error {
	err := &UntrainedModelError{Model: model, Method: method}
	return errors.WithStack(err)
}

// UnknownError is the escape hatch for unclassified internal failures.
type UnknownError struct {
	Op  string
	Err error
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("slearn: %s: unknown error: %v", e.Op, e.Err)
}

func (e *UnknownError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *UnknownError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		AnErr("cause", e.Err).
		Str("type", "UnknownError")
}

// NewUnknownError wraps an unclassified failure with a stack trace.
func NewUnknownError(op string, err error) error {
	unknown := &UnknownError{Op: op, Err: err}
	return errors.WithStack(unknown)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target's type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Sentinel errors
//
// ===========================================================================

var (
	// ErrSingularMatrix marks a normal matrix that could not be inverted.
	ErrSingularMatrix = New("singular matrix")

	// ErrEmptyData marks training data with no observations.
	ErrEmptyData = New("empty data")
)
