package stream

import (
	"io"
	"strings"
)

// Scripted is a Stream that replays a fixed list of input lines and captures
// every write. It stands in for a terminal in tests.
type Scripted struct {
	inputs        []string
	cursor        int
	writes        []string
	interactive   bool
	echoSupported bool
	echoOff       bool
	simulateEcho  bool
	suppressions  int
}

func NewScripted(lines ...string) *Scripted {
	it := &Scripted{}
	it.Reset()
	it.Feed(lines...)
	return it
}

// Feed queues more input lines after the ones still pending.
func (it *Scripted) Feed(lines ...string) {
	it.inputs = append(it.inputs, lines...)
}

func (it *Scripted) ReadLine() (string, error) {
	if it.cursor >= len(it.inputs) {
		return "", io.EOF
	}
	line := it.inputs[it.cursor]
	it.cursor += 1
	if it.simulateEcho && !it.echoOff {
		it.writes = append(it.writes, line+"\n")
	}
	return line, nil
}

func (it *Scripted) WriteString(text string) (int, error) {
	it.writes = append(it.writes, text)
	return len(text), nil
}

func (it *Scripted) IsInteractive() bool {
	return it.interactive
}

func (it *Scripted) SuppressEcho() (func(), error) {
	if !it.interactive || !it.echoSupported {
		return nil, ErrEchoUnavailable
	}
	it.echoOff = true
	it.suppressions += 1
	return func() {
		it.echoOff = false
	}, nil
}

func (it *Scripted) SetInteractive(state bool) {
	it.interactive = state
}

func (it *Scripted) SetEchoSupported(state bool) {
	it.echoSupported = state
}

// SimulateEcho makes the stream copy every line it hands out into the
// captured output while echo is on, the way a terminal shows typed keys.
func (it *Scripted) SimulateEcho(state bool) {
	it.simulateEcho = state
}

func (it *Scripted) EchoSuppressed() bool {
	return it.echoOff
}

// Suppressions counts how many times echo was turned off.
func (it *Scripted) Suppressions() int {
	return it.suppressions
}

func (it *Scripted) Pending() int {
	return len(it.inputs) - it.cursor
}

func (it *Scripted) Writes() []string {
	result := make([]string, len(it.writes))
	copy(result, it.writes)
	return result
}

func (it *Scripted) Output() string {
	return strings.Join(it.writes, "")
}

// Reset returns the stream to the state of a newly constructed one.
func (it *Scripted) Reset() {
	it.inputs = nil
	it.cursor = 0
	it.writes = nil
	it.interactive = true
	it.echoSupported = true
	it.echoOff = false
	it.simulateEcho = false
	it.suppressions = 0
}
