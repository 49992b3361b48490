package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal. Spinners and
// color output are suppressed when it is not.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
