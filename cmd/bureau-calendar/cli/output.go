// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/calendar/lib/codec"
)

// Format selects how a command writes its result.
type Format string

const (
	// FormatTable is aligned columns for people, styled on a terminal.
	FormatTable Format = "table"

	// FormatJSON is indented JSON.
	FormatJSON Format = "json"

	// FormatCBOR is one Core Deterministic CBOR item per result, so
	// repeated invocations append to a CBOR sequence.
	FormatCBOR Format = "cbor"
)

// String implements pflag.Value.
func (f *Format) String() string { return string(*f) }

// Set implements pflag.Value.
func (f *Format) Set(value string) error {
	switch Format(value) {
	case FormatTable, FormatJSON, FormatCBOR:
		*f = Format(value)
		return nil
	}
	return fmt.Errorf("unknown format %q (want table, json, or cbor)", value)
}

// Type implements pflag.Value.
func (f *Format) Type() string { return "format" }

// Emit writes value in the selected format. table builds the table
// rendering and is only called for FormatTable.
func Emit(w io.Writer, format Format, value any, table func() *Table) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, value)
	case FormatCBOR:
		return WriteCBOR(w, value)
	default:
		return table().Render(w, IsTerminal(w))
	}
}

// WriteJSON writes value as indented JSON.
func WriteJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// WriteCBOR writes value as one deterministic CBOR item.
func WriteCBOR(w io.Writer, value any) error {
	return codec.NewEncoder(w).Encode(value)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Table is column-aligned text output. The first column is the row
// key; columns after the second are rendered faint when styled.
type Table struct {
	Header []string
	Rows   [][]string
}

// Render writes the table to w. styled applies terminal colors.
func (t *Table) Render(w io.Writer, styled bool) error {
	var widths []int
	measure := func(row []string) {
		for column, cell := range row {
			if column == len(widths) {
				widths = append(widths, 0)
			}
			widths[column] = max(widths[column], lipgloss.Width(cell))
		}
	}
	measure(t.Header)
	for _, row := range t.Rows {
		measure(row)
	}

	var out strings.Builder
	writeRow := func(row []string, style func(column int) lipgloss.Style) {
		for column, cell := range row {
			if column > 0 {
				out.WriteString("  ")
			}
			padded := cell
			if column < len(row)-1 {
				padded += strings.Repeat(" ", widths[column]-lipgloss.Width(cell))
			}
			if styled {
				padded = style(column).Render(padded)
			}
			out.WriteString(padded)
		}
		out.WriteByte('\n')
	}

	if len(t.Header) > 0 {
		writeRow(t.Header, func(int) lipgloss.Style { return headerStyle })
	}
	for _, row := range t.Rows {
		writeRow(row, func(column int) lipgloss.Style {
			switch column {
			case 0:
				return keyStyle
			case 1:
				return lipgloss.NewStyle()
			}
			return faintStyle
		})
	}
	_, err := io.WriteString(w, out.String())
	return err
}
