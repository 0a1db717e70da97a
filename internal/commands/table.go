package commands

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// displayTable prints rows under a header, padding every column to its widest cell
func displayTable(out io.Writer, columns []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(out, "No results found.")
		return
	}

	widths := make([]int, len(columns))
	for i, column := range columns {
		widths[i] = utf8.RuneCountInString(column)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	printRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				fmt.Fprint(out, " | ")
			}
			if i == len(cells)-1 {
				fmt.Fprint(out, cell)
				continue
			}
			fmt.Fprint(out, cell+strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		}
		fmt.Fprintln(out)
	}

	// Print header
	printRow(columns)

	// Print separator
	separator := make([]string, len(columns))
	for i := range columns {
		separator[i] = strings.Repeat("-", widths[i])
	}
	printRow(separator)

	// Print rows
	for _, row := range rows {
		printRow(row)
	}

	fmt.Fprintf(out, "\n(%d rows)\n", len(rows))
}
