// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

import (
	"errors"
	"math"
	"testing"
)

func TestSafeArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func(a, b int64) (int64, error)
		a, b     int64
		want     int64
		overflow bool
	}{
		{"add", SafeAdd, 2, 3, 5, false},
		{"add_overflow", SafeAdd, math.MaxInt64, 1, 0, true},
		{"add_underflow", SafeAdd, math.MinInt64, -1, 0, true},
		{"subtract", SafeSubtract, 2, 3, -1, false},
		{"subtract_overflow", SafeSubtract, math.MinInt64, 1, 0, true},
		{"subtract_min_from_zero", SafeSubtract, 0, math.MinInt64, 0, true},
		{"multiply", SafeMultiply, -4, 5, -20, false},
		{"multiply_zero", SafeMultiply, math.MinInt64, 0, 0, false},
		{"multiply_to_min", SafeMultiply, math.MinInt64 / 2, 2, math.MinInt64, false},
		{"multiply_overflow", SafeMultiply, math.MaxInt64/2 + 1, 2, 0, true},
		{"multiply_min_by_minus_one", SafeMultiply, math.MinInt64, -1, 0, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.op(test.a, test.b)
			if test.overflow {
				if !errors.Is(err, ErrOverflow) {
					t.Fatalf("error = %v, want ErrOverflow", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != test.want {
				t.Errorf("got %d, want %d", got, test.want)
			}
		})
	}
}

func TestSafeToInt(t *testing.T) {
	if got, err := SafeToInt(math.MaxInt32); err != nil || got != math.MaxInt32 {
		t.Errorf("SafeToInt(MaxInt32) = %d, %v", got, err)
	}
	if _, err := SafeToInt(math.MaxInt32 + 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("SafeToInt(MaxInt32+1) error = %v, want ErrOverflow", err)
	}
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b     int64
		div, mod int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{-8, 4, -2, 0},
		{0, 5, 0, 0},
	}
	for _, test := range tests {
		if got := FloorDiv(test.a, test.b); got != test.div {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", test.a, test.b, got, test.div)
		}
		if got := FloorMod(test.a, test.b); got != test.mod {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", test.a, test.b, got, test.mod)
		}
	}
}

func TestWrappedValue(t *testing.T) {
	tests := []struct {
		current, amount, min, max int
		want                      int
	}{
		{10, 5, 1, 12, 3},
		{1, -1, 1, 12, 12},
		{0, -25, 0, 23, 23},
		{5, 0, 1, 7, 5},
		{7, 700, 1, 7, 7},
	}
	for _, test := range tests {
		got, err := WrappedValue(test.current, test.amount, test.min, test.max)
		if err != nil {
			t.Fatalf("WrappedValue(%+v): %v", test, err)
		}
		if got != test.want {
			t.Errorf("WrappedValue(%d, %d, %d, %d) = %d, want %d",
				test.current, test.amount, test.min, test.max, got, test.want)
		}
	}
	if _, err := WrappedValue(1, 1, 5, 5); err == nil {
		t.Error("WrappedValue accepted an empty range")
	}
}

func TestVerifyValueBounds(t *testing.T) {
	if err := VerifyValueBounds(DayOfMonth, 31, 1, 31); err != nil {
		t.Errorf("31 in [1,31]: %v", err)
	}
	err := VerifyValueBounds(DayOfMonth, 32, 1, 31)
	var illegal *IllegalFieldValueError
	if !errors.As(err, &illegal) {
		t.Fatalf("error = %v, want *IllegalFieldValueError", err)
	}
	if illegal.Field != DayOfMonth || illegal.Value != 32 || illegal.Lower != 1 || illegal.Upper != 31 {
		t.Errorf("error = %+v", illegal)
	}
	if want := "value 32 for dayOfMonth must be in the range [1,31]"; illegal.Error() != want {
		t.Errorf("message = %q, want %q", illegal.Error(), want)
	}
}
