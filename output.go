package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// buildTable keeps the successful outcomes in configured order.
func buildTable(outcomes []FileOutcome) ResultTable {
	var t ResultTable
	for _, o := range outcomes {
		if o.Summary != nil {
			t.Rows = append(t.Rows, *o.Summary)
		}
	}
	return t
}

// records returns the table as string cells, header first.
func (t ResultTable) records() [][]string {
	recs := make([][]string, 0, len(t.Rows)+1)
	recs = append(recs, tableHeader)
	for _, row := range t.Rows {
		recs = append(recs, []string{
			strconv.Itoa(row.Index),
			row.Case,
			strconv.Itoa(row.Cells),
			strconv.Itoa(row.Buffers),
		})
	}
	return recs
}

var (
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numericStyle = cellStyle.Align(lipgloss.Right)
)

// printTable renders the table in markdown layout with numeric columns
// right-aligned. The separator row carries ":" markers so markdown renderers keep
// the alignment.
func printTable(t ResultTable) string {
	recs := t.records()
	tbl := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers(recs[0]...).
		Rows(recs[1:]...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 1 || row == table.HeaderRow {
				return cellStyle
			}
			return numericStyle
		})

	lines := strings.Split(tbl.String(), "\n")
	if len(lines) > 1 {
		lines[1] = alignedSeparator(lines[0])
	}
	return strings.Join(lines, "\n")
}

// alignedSeparator builds the markdown separator for a rendered header row:
// ":---" for the Case column, "---:" for the numeric ones.
func alignedSeparator(header string) string {
	cells := strings.Split(header, "|")
	if len(cells) < 3 {
		return header
	}
	var builder strings.Builder
	builder.WriteString("|")
	for col, cell := range cells[1 : len(cells)-1] {
		dashes := strings.Repeat("-", max(lipgloss.Width(cell)-1, 1))
		if col == 1 {
			builder.WriteString(":" + dashes)
		} else {
			builder.WriteString(dashes + ":")
		}
		builder.WriteString("|")
	}
	return builder.String()
}

// renderTable writes the console report.
func renderTable(w io.Writer, t ResultTable) error {
	var builder strings.Builder
	builder.WriteString("\nTest cases and detailed information:\n")
	builder.WriteString(printTable(t))
	builder.WriteString("\n")
	_, err := io.WriteString(w, builder.String())
	return err
}

// writeCSV replaces path with the table as comma-separated values.
func writeCSV(path string, t ResultTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(t.records()); err != nil {
		f.Close()
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", path, err)
	}
	return nil
}
