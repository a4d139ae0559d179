// Package errors provides the structured error taxonomy used across
// launchlens. Every error type carries enough context to be logged as a
// structured zerolog event and is created with a stack trace attached via
// cockroachdb/errors.
package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NotFittedError is returned when Predict or Transform is called on a model
// that has not been fitted yet.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("launchlens: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when input data dimensions do not match the
// fitted model.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("launchlens: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// DegenerateFeatureError is returned when scaler fitting encounters a
// feature with near-zero variance. Standardizing such a feature would
// divide by zero, so fitting aborts instead of producing NaN downstream.
type DegenerateFeatureError struct {
	Op      string
	Feature int
	StdDev  float64
}

func (e *DegenerateFeatureError) Error() string {
	return fmt.Sprintf("launchlens: %s: feature %d has zero variance (std=%g); cannot standardize", e.Op, e.Feature, e.StdDev)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DegenerateFeatureError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("feature", e.Feature).
		Float64("std_dev", e.StdDev).
		Str("type", "DegenerateFeatureError")
}

// NewDegenerateFeatureError creates a DegenerateFeatureError with a stack
// trace attached.
func NewDegenerateFeatureError(op string, feature int, std float64) error {
	err := &DegenerateFeatureError{Op: op, Feature: feature, StdDev: std}
	return errors.WithStack(err)
}

// ValidationError is returned when user-supplied metrics fall outside the
// accepted ranges. Violations are joined so the whole message can be shown
// to the user verbatim.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Strs("violations", e.Violations).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace attached.
func NewValidationError(violations []string) error {
	err := &ValidationError{Violations: violations}
	return errors.WithStack(err)
}

// ValueError is returned when an argument value is invalid for an operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("launchlens: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValueError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "ValueError")
}

// NewValueError creates a ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}
