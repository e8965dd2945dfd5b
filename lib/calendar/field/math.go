// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

import (
	"fmt"
	"math"
	"math/bits"
)

// SafeAdd returns a+b or an error wrapping ErrOverflow.
func SafeAdd(a, b int64) (int64, error) {
	sum := a + b
	if (a^sum)&(b^sum) < 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return sum, nil
}

// SafeSubtract returns a-b or an error wrapping ErrOverflow.
func SafeSubtract(a, b int64) (int64, error) {
	difference := a - b
	if (a^b)&(a^difference) < 0 {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return difference, nil
}

// SafeMultiply returns a*b or an error wrapping ErrOverflow.
func SafeMultiply(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	hi, lo := bits.Mul64(uint64(absInt64(a)), uint64(absInt64(b)))
	negative := (a < 0) != (b < 0)
	if hi != 0 || (lo > math.MaxInt64 && !(negative && lo == 1<<63)) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	if negative {
		return -int64(lo), nil
	}
	return int64(lo), nil
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// SafeToInt narrows v to int32 range (field values are 32-bit).
func SafeToInt(v int64) (int, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: value %d exceeds field range", ErrOverflow, v)
	}
	return int(v), nil
}

// VerifyValueBounds returns an IllegalFieldValueError when value is
// outside [lower, upper].
func VerifyValueBounds(fieldType DateTimeFieldType, value, lower, upper int) error {
	if value < lower || value > upper {
		return NewIllegalFieldValue(fieldType, int64(value), int64(lower), int64(upper))
	}
	return nil
}

// WrappedValue adds amount to current and wraps the result into
// [minValue, maxValue].
func WrappedValue(current, amount, minValue, maxValue int) (int, error) {
	if minValue >= maxValue {
		return 0, fmt.Errorf("field: invalid wrap range [%d,%d]", minValue, maxValue)
	}
	span := int64(maxValue) - int64(minValue) + 1
	offset := (int64(current) - int64(minValue) + int64(amount)) % span
	if offset < 0 {
		offset += span
	}
	return int(offset + int64(minValue)), nil
}

// FloorDiv is integer division rounding toward negative infinity.
func FloorDiv(a, b int64) int64 {
	quotient := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		quotient--
	}
	return quotient
}

// FloorMod is the remainder matching FloorDiv; its sign follows b.
func FloorMod(a, b int64) int64 {
	return a - FloorDiv(a, b)*b
}
