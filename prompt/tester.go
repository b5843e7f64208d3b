package prompt

import (
	"github.com/joshyorko/clikit/stream"
)

// Tester is an Input for tests: a Reader over a scripted stream that keeps
// the history of every prompt message shown.
type Tester struct {
	*Reader
	script  *stream.Scripted
	history []string
}

func NewTester(responses ...string) *Tester {
	it := &Tester{
		script: stream.NewScripted(responses...),
	}
	it.Reader = New(it.script, OnPrompt(it.remember))
	return it
}

func (it *Tester) remember(message string) {
	it.history = append(it.history, message)
}

// Feed queues more responses.
func (it *Tester) Feed(responses ...string) {
	it.script.Feed(responses...)
}

func (it *Tester) History() []string {
	result := make([]string, len(it.history))
	copy(result, it.history)
	return result
}

func (it *Tester) Output() string {
	return it.script.Output()
}

func (it *Tester) Stream() *stream.Scripted {
	return it.script
}

// Reset clears pending responses, captured output and history.
func (it *Tester) Reset() {
	it.script.Reset()
	it.history = nil
}
