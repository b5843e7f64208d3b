package pretty

import (
	"os"

	"github.com/joshyorko/clikit/common"
	"github.com/mattn/go-isatty"
)

var (
	Colorless   bool
	Iconic      bool
	Disabled    bool
	Interactive bool
	White       string
	Grey        string
	Black       string
	Red         string
	Green       string
	Blue        string
	Yellow      string
	Magenta     string
	Cyan        string
	Reset       string
	Bold        string
	Faint       string
)

func csi(code string) string {
	return "\x1b[" + code
}

func isTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Setup detects terminal capabilities and fills the color variables. With
// colorless true, or no color mode (NO_COLOR, dumb or missing TERM), or stdout
// not a terminal, the color variables stay empty so output renders as plain
// text. The color mode is detected again on every call.
func Setup(colorless bool) {
	stdin := isTerminal(os.Stdin)
	stdout := isTerminal(os.Stdout)
	stderr := isTerminal(os.Stderr)

	colorModeDetected = false
	Colorless = colorless || DetectColorMode() == ColorModeNone

	// prompts need all three handles on a terminal, colors only need stdout
	Interactive = stdin && stdout && stderr
	visualOutput := stdout && !Colorless
	Iconic = visualOutput && os.Getenv("TERM") != "dumb"

	clearColors()
	common.Trace("Interactive mode enabled: %v; colors enabled: %v; icons enabled: %v", Interactive, visualOutput && !Disabled, Iconic)
	if visualOutput && !Disabled {
		White = csi("97m")
		Grey = csi("90m")
		Black = csi("30m")
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Blue = csi("94m")
		Magenta = csi("95m")
		Cyan = csi("96m")
		Reset = csi("0m")
		Bold = csi("1m")
		Faint = csi("2m")
	}
}

func clearColors() {
	White, Grey, Black, Red, Green = "", "", "", "", ""
	Blue, Yellow, Magenta, Cyan, Reset = "", "", "", "", ""
	Bold, Faint = "", ""
}
