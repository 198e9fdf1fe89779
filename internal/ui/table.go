// Package ui renders hpackdump's CLI output: Vercel-style tables for header
// lists and dynamic table snapshots, plus small status helpers.
package ui

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a simple column-aligned table for CLI output.
type Table struct {
	headers []string
	rows    [][]string
	title   string
}

// NewTable creates a new table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    [][]string{},
	}
}

// WithTitle sets the table's title, rendered above the header row.
func (t *Table) WithTitle(title string) *Table {
	t.title = title
	return t
}

// AddRow appends a row to the table.
func (t *Table) AddRow(row []string) *Table {
	t.rows = append(t.rows, row)
	return t
}

// Render renders the table (Vercel-style).
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, header := range t.headers {
		colWidths[i] = lipgloss.Width(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(colWidths) {
				width := lipgloss.Width(cell)
				if width > colWidths[i] {
					colWidths[i] = width
				}
			}
		}
	}

	var output strings.Builder

	if t.title != "" {
		output.WriteString("\n")
		output.WriteString(titleStyle.Render(t.title))
		output.WriteString("\n\n")
	}

	headerParts := make([]string, len(t.headers))
	for i, header := range t.headers {
		styled := tableHeaderStyle.Render(header)
		headerParts[i] = padRight(styled, colWidths[i])
	}
	output.WriteString(strings.Join(headerParts, "  "))
	output.WriteString("\n")

	separatorChar := "─"
	if runtime.GOOS == "windows" {
		separatorChar = "-"
	}
	separatorParts := make([]string, len(t.headers))
	for i := range t.headers {
		separatorParts[i] = mutedStyle.Render(strings.Repeat(separatorChar, colWidths[i]))
	}
	output.WriteString(strings.Join(separatorParts, "  "))
	output.WriteString("\n")

	for _, row := range t.rows {
		rowParts := make([]string, len(t.headers))
		for i, cell := range row {
			if i < len(colWidths) {
				rowParts[i] = padRight(cell, colWidths[i])
			}
		}
		output.WriteString(strings.Join(rowParts, "  "))
		output.WriteString("\n")
	}

	output.WriteString("\n")
	return output.String()
}

func padRight(text string, targetWidth int) string {
	visibleWidth := lipgloss.Width(text)
	if visibleWidth >= targetWidth {
		return text
	}
	padding := strings.Repeat(" ", targetWidth-visibleWidth)
	return text + padding
}

// Print renders the table straight to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

// Error renders a one-line error status.
func Error(format string, args ...interface{}) string {
	return errorStyle.Render("✗ " + fmt.Sprintf(format, args...))
}

// OK renders a one-line success status.
func OK(format string, args ...interface{}) string {
	return okStyle.Render("✓ " + fmt.Sprintf(format, args...))
}
