package errhandler

import (
	"errors"
	"io"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsInterrupt reports whether err means the user cancelled a prompt.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// HandleError prints err and returns the process exit code to use.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if IsInterrupt(err) {
		pterm.Warning.WithWriter(w).Println("Operation Cancelled")
		return 0
	}

	pterm.Error.WithWriter(w).Println(Capitalize(err.Error()))
	return 1
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
