package pretty

import (
	"os"

	"github.com/joshyorko/clikit/common"
	"golang.org/x/term"
)

// TerminalWidth returns the terminal width in columns, 80 when unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		common.Trace("Failed to get terminal width, using fallback: %v", err)
		return 80
	}
	return width
}

// The cursor helpers return escape sequences, or nothing when not interactive.

func ClearLine() string {
	if !Interactive {
		return ""
	}
	return "\r" + csi("0K")
}

func HideCursor() string {
	if !Interactive {
		return ""
	}
	return csi("?25l")
}

func ShowCursor() string {
	if !Interactive {
		return ""
	}
	return csi("?25h")
}
