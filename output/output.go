// Package output renders the lines a command shows to the user.
//
// A Console writes to any io.StringWriter, normally the session Stream, so
// the same code prints to a terminal in production and into a captured log in
// tests. Styling follows the pretty color conventions: green success, yellow
// warnings, red errors, bold headers. When colors are off every helper
// degrades to plain text.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshyorko/clikit/pretty"
)

// Sink is the minimal surface the input reader needs for printing.
type Sink interface {
	Write(text string)
	WriteLine(text string)
}

// Console is the default Sink.
type Console struct {
	out     io.StringWriter
	verbose bool
}

func NewConsole(out io.StringWriter) *Console {
	return &Console{out: out}
}

// SetVerbose enables or disables Verbose lines.
func (it *Console) SetVerbose(state bool) {
	it.verbose = state
}

func (it *Console) IsVerbose() bool {
	return it.verbose
}

// WriteString makes the console usable as an io.StringWriter, for example
// as the target of a pretty.ProgressBar.
func (it *Console) WriteString(text string) (int, error) {
	return it.out.WriteString(text)
}

func (it *Console) Write(text string) {
	it.out.WriteString(text)
}

func (it *Console) WriteLine(text string) {
	it.out.WriteString(text + "\n")
}

func (it *Console) Printf(format string, details ...interface{}) {
	it.Write(fmt.Sprintf(format, details...))
}

func (it *Console) styled(color, text string) {
	if color == "" {
		it.WriteLine(text)
		return
	}
	it.WriteLine(color + text + pretty.Reset)
}

func (it *Console) Success(message string) {
	it.styled(pretty.StatusColor("success"), message)
}

func (it *Console) Warning(message string) {
	it.styled(pretty.SeverityColor("warning"), message)
}

func (it *Console) Error(message string) {
	it.styled(pretty.SeverityColor("error"), message)
}

func (it *Console) Info(message string) {
	it.styled(pretty.Cyan, message)
}

func (it *Console) Comment(message string) {
	it.styled(pretty.Grey, message)
}

func (it *Console) Header(text string) {
	it.styled(pretty.Bold, text)
}

// Step prints an indented sub-item.
func (it *Console) Step(message string) {
	it.styled(pretty.Grey, "   "+message)
}

// Verbose prints only when verbose mode is on.
func (it *Console) Verbose(message string) {
	if it.verbose {
		it.styled(pretty.Faint, message)
	}
}

func (it *Console) Table(table *pretty.Table) {
	it.Write(table.Render())
}

func (it *Console) Frame(title string, lines ...string) {
	it.Write(pretty.ActiveBoxStyle().Frame(title, lines))
}

// Listing prints items as "  - item".
func (it *Console) Listing(items ...string) {
	for _, item := range items {
		it.WriteLine("  - " + strings.TrimSpace(item))
	}
}
