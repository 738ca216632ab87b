package cmd

import (
	"io"

	"github.com/pterm/pterm"
)

// printSeparator prints a green separator line.
func printSeparator(w io.Writer) {
	pterm.Fprintln(w, pterm.Green("----------------------------------------"))
}
