// Package viewport maps a byte slice and a focus offset onto the rows of a
// fixed-size hex dump.
package viewport

import (
	"fmt"
	"strings"
)

const (
	DefaultBytesPerRow = 16
	DefaultVisibleRows = 24
)

type Layout struct {
	BytesPerRow int
	VisibleRows int
}

func DefaultLayout() Layout {
	return Layout{BytesPerRow: DefaultBytesPerRow, VisibleRows: DefaultVisibleRows}
}

// StartRow returns the first row to draw so that the focus row sits in the
// middle of the window. It is clamped at the top only.
func StartRow(focus, bytesPerRow, visibleRows int) int {
	start := focus/bytesPerRow - visibleRows/2
	if start < 0 {
		start = 0
	}
	return start
}

// Printable reports whether b is shown as itself in the ASCII column.
func Printable(b byte) bool {
	return b >= 0x20 && b < 0x7f
}

func FormatOffset(offset int) string {
	return fmt.Sprintf("%08x", offset)
}

// Rows renders the window around focus. highlight wraps the focused hex pair;
// nil leaves it plain. Rows past the end of data are not emitted.
func Rows(data []byte, focus int, layout Layout, highlight func(string) string) []string {
	if highlight == nil {
		highlight = func(s string) string { return s }
	}

	start := StartRow(focus, layout.BytesPerRow, layout.VisibleRows)
	rows := make([]string, 0, layout.VisibleRows)

	for row := 0; row < layout.VisibleRows; row++ {
		offset := (start + row) * layout.BytesPerRow
		if offset >= len(data) {
			break
		}
		rows = append(rows, renderRow(data, offset, focus, layout.BytesPerRow, highlight))
	}

	return rows
}

func renderRow(data []byte, offset, focus, width int, highlight func(string) string) string {
	var line strings.Builder

	line.WriteString(FormatOffset(offset))
	line.WriteString(" - ")

	for col := 0; col < width; col++ {
		pos := offset + col
		switch {
		case pos >= len(data):
			line.WriteString("  ")
		case pos == focus:
			line.WriteString(highlight(fmt.Sprintf("%02x", data[pos])))
		default:
			line.WriteString(fmt.Sprintf("%02x", data[pos]))
		}
		line.WriteString(" ")
	}

	line.WriteString("- ")
	for col := 0; col < width; col++ {
		pos := offset + col
		switch {
		case pos >= len(data):
			line.WriteByte(' ')
		case Printable(data[pos]):
			line.WriteByte(data[pos])
		default:
			line.WriteByte('.')
		}
	}

	return line.String()
}
