// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "zone", 4},
		{"zone", "", 4},
		{"fields", "fields", 0},
		{"feilds", "fields", 2},
		{"field", "fields", 1},
		{"instnat", "instant", 2},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("zone", "", "")
	flagSet.String("format", "", "")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--zoen", "UTC"}, "--zone"},
		{[]string{"--zone", "UTC", "--fromat=json"}, "--format"},
		{[]string{"--completely-different"}, ""},
		{[]string{"--", "--zoen"}, ""},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, flagSet); got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
