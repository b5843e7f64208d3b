package pretty

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BoxStyle defines the characters used for drawing boxes with various line styles.
type BoxStyle struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
	LeftT       string // ├
	RightT      string // ┤
	TopT        string // ┬
	BottomT     string // ┴
	Cross       string // ┼
}

var (
	BoxSingle = BoxStyle{
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		Horizontal: "─", Vertical: "│",
		LeftT: "├", RightT: "┤", TopT: "┬", BottomT: "┴", Cross: "┼",
	}

	BoxDouble = BoxStyle{
		TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
		Horizontal: "═", Vertical: "║",
		LeftT: "╠", RightT: "╣", TopT: "╦", BottomT: "╩", Cross: "╬",
	}

	BoxRounded = BoxStyle{
		TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
		Horizontal: "─", Vertical: "│",
		LeftT: "├", RightT: "┤", TopT: "┬", BottomT: "┴", Cross: "┼",
	}

	BoxASCII = BoxStyle{
		TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		Horizontal: "-", Vertical: "|",
		LeftT: "+", RightT: "+", TopT: "+", BottomT: "+", Cross: "+",
	}
)

// ActiveBoxStyle returns BoxRounded when the terminal can show Unicode and
// BoxASCII otherwise (dumb or missing TERM, icons off).
func ActiveBoxStyle() BoxStyle {
	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return BoxASCII
	}
	if Iconic {
		return BoxRounded
	}
	return BoxASCII
}

// Border converts the box characters into a lipgloss border.
func (it BoxStyle) Border() lipgloss.Border {
	return lipgloss.Border{
		Top:          it.Horizontal,
		Bottom:       it.Horizontal,
		Left:         it.Vertical,
		Right:        it.Vertical,
		TopLeft:      it.TopLeft,
		TopRight:     it.TopRight,
		BottomLeft:   it.BottomLeft,
		BottomRight:  it.BottomRight,
		MiddleLeft:   it.LeftT,
		MiddleRight:  it.RightT,
		Middle:       it.Cross,
		MiddleTop:    it.TopT,
		MiddleBottom: it.BottomT,
	}
}

// Frame draws lines inside a box with the title centered in the top border.
// Widths are counted in runes; the box grows to fit the title and the widest line.
func (it BoxStyle) Frame(title string, lines []string) string {
	inner := len([]rune(title)) + 2
	for _, line := range lines {
		if size := len([]rune(line)); size > inner {
			inner = size
		}
	}
	inner += 2

	var out strings.Builder
	out.WriteString(it.TopLeft)
	if title == "" {
		out.WriteString(strings.Repeat(it.Horizontal, inner))
	} else {
		label := " " + title + " "
		left := (inner - len([]rune(label))) / 2
		right := inner - len([]rune(label)) - left
		out.WriteString(strings.Repeat(it.Horizontal, left))
		out.WriteString(label)
		out.WriteString(strings.Repeat(it.Horizontal, right))
	}
	out.WriteString(it.TopRight)
	out.WriteString("\n")

	for _, line := range lines {
		pad := inner - 2 - len([]rune(line))
		out.WriteString(it.Vertical + " " + line + strings.Repeat(" ", pad) + " " + it.Vertical + "\n")
	}

	out.WriteString(it.BottomLeft)
	out.WriteString(strings.Repeat(it.Horizontal, inner))
	out.WriteString(it.BottomRight)
	out.WriteString("\n")
	return out.String()
}
