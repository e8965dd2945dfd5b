// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

import (
	"errors"
	"fmt"
)

// ErrOverflow is wrapped by every error caused by 64-bit (or 32-bit
// field value) arithmetic overflow.
var ErrOverflow = errors.New("calendar: arithmetic overflow")

// IllegalFieldValueError reports a value outside the legal range of a
// field for the instant it was applied to.
type IllegalFieldValueError struct {
	Field DateTimeFieldType
	Value int64

	// Lower and Upper are the inclusive legal bounds. Only meaningful
	// when HasBounds is set; a value rejected for another reason (a
	// composite whose value did not survive the cutover, or year zero
	// in the Julian calendar) carries no bounds.
	Lower     int64
	Upper     int64
	HasBounds bool

	// Message overrides the default description.
	Message string
}

func (e *IllegalFieldValueError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("value %d for %s is not supported: %s", e.Value, e.Field, e.Message)
	case e.HasBounds:
		return fmt.Sprintf("value %d for %s must be in the range [%d,%d]", e.Value, e.Field, e.Lower, e.Upper)
	default:
		return fmt.Sprintf("value %d for %s is not supported", e.Value, e.Field)
	}
}

// NewIllegalFieldValue builds an IllegalFieldValueError with bounds.
func NewIllegalFieldValue(fieldType DateTimeFieldType, value, lower, upper int64) *IllegalFieldValueError {
	return &IllegalFieldValueError{
		Field:     fieldType,
		Value:     value,
		Lower:     lower,
		Upper:     upper,
		HasBounds: true,
	}
}

// IllegalInstantError reports a local date-time that does not exist:
// a date inside the Julian/Gregorian cutover gap, or a wall time
// skipped by a zone offset transition.
type IllegalInstantError struct {
	Instant int64
	Message string
}

func (e *IllegalInstantError) Error() string {
	return fmt.Sprintf("illegal instant %d: %s", e.Instant, e.Message)
}

// UnsupportedOperationError reports an operation a field or duration
// has no meaning for, such as adding to the era.
type UnsupportedOperationError struct {
	Name      string
	Operation string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s does not support %s", e.Name, e.Operation)
}

func unsupported(name, operation string) error {
	return &UnsupportedOperationError{Name: name, Operation: operation}
}
