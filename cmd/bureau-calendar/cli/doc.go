// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for bureau-calendar.
//
// A [Command] tree dispatches on the first positional argument and
// parses flags with spf13/pflag. Unknown commands and flags produce a
// "did you mean" suggestion by edit distance. [Emit] renders a result
// as a lipgloss-styled [Table], indented JSON, or a deterministic CBOR
// item through lib/codec. [NewCommandLogger] picks slog text output on
// a terminal and JSON lines otherwise.
package cli
