package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshyorko/clikit/common"
	"github.com/joshyorko/clikit/output"
	"github.com/joshyorko/clikit/pretty"
	"github.com/joshyorko/clikit/stream"
)

// Reader is the interactive prompt engine over one Stream.
type Reader struct {
	stream   stream.Stream
	out      output.Sink
	ceiling  int
	observer func(message string)
}

type ReaderOption func(*Reader)

// WithSink prints prompts through sink instead of straight to the stream.
func WithSink(sink output.Sink) ReaderOption {
	return func(it *Reader) {
		it.out = sink
	}
}

// WithRetryCeiling sets how many answers a validated prompt accepts before
// giving up. Values below one mean one.
func WithRetryCeiling(ceiling int) ReaderOption {
	return func(it *Reader) {
		if ceiling < 1 {
			ceiling = 1
		}
		it.ceiling = ceiling
	}
}

// OnPrompt registers a function called with every prompt message shown.
func OnPrompt(observer func(message string)) ReaderOption {
	return func(it *Reader) {
		it.observer = observer
	}
}

func New(source stream.Stream, options ...ReaderOption) *Reader {
	it := &Reader{
		stream:  source,
		out:     output.NewConsole(source),
		ceiling: DefaultRetryCeiling,
	}
	for _, option := range options {
		option(it)
	}
	return it
}

func (it *Reader) RetryCeiling() int {
	return it.ceiling
}

func (it *Reader) record(message string) {
	if it.observer != nil {
		it.observer(message)
	}
}

func (it *Reader) readLine() string {
	reply, err := it.stream.ReadLine()
	if err != nil {
		if err != io.EOF {
			common.Uncritical("read input", err)
		}
		return ""
	}
	return strings.TrimSpace(reply)
}

func (it *Reader) complain(message string) {
	it.out.WriteLine(fmt.Sprintf("%s%s%s", pretty.SeverityColor("error"), message, pretty.Reset))
}

func (it *Reader) warn(message string) {
	it.out.WriteLine(fmt.Sprintf("%s%s%s", pretty.SeverityColor("warning"), message, pretty.Reset))
}

// PromptText shows message, reads one line and returns it trimmed. End of
// input reads as an empty answer.
func (it *Reader) PromptText(message string) string {
	it.record(message)
	it.out.Write(message)
	return it.readLine()
}

// Ask is PromptText with a default used for empty answers.
func (it *Reader) Ask(message, defaultValue string) string {
	question := message + ": "
	if defaultValue != "" {
		question = fmt.Sprintf("%s [%s]: ", message, defaultValue)
	}
	answer := it.PromptText(question)
	if answer == "" {
		return defaultValue
	}
	return answer
}

// AskValid repeats Ask until validator accepts the answer, at most the retry
// ceiling times.
func (it *Reader) AskValid(message, defaultValue string, validator Validator) (string, error) {
	for attempt := 0; attempt < it.ceiling; attempt++ {
		answer := it.Ask(message, defaultValue)
		if validator == nil {
			return answer, nil
		}
		err := validator(answer)
		if err == nil {
			return answer, nil
		}
		it.complain(err.Error())
	}
	return "", fmt.Errorf("%w: %q got no valid answer in %d attempts", ErrExhaustedRetries, message, it.ceiling)
}

// Confirm asks a yes/no question. An empty answer picks defaultYes; y, yes,
// true and 1 (any case) mean yes; anything else means no.
func (it *Reader) Confirm(message string, defaultYes bool) bool {
	hint := " [y/N]: "
	if defaultYes {
		hint = " [Y/n]: "
	}
	answer := strings.ToLower(it.PromptText(message + hint))
	switch answer {
	case "":
		return defaultYes
	case "y", "yes", "true", "1":
		return true
	default:
		return false
	}
}

// PromptSecret reads a line without echoing it when the terminal allows.
// Otherwise the answer is read visibly.
func (it *Reader) PromptSecret(message string) string {
	it.record(message)
	it.out.Write(message)
	if !it.stream.IsInteractive() {
		return it.readLine()
	}
	restore, err := it.stream.SuppressEcho()
	if err != nil {
		common.Trace("Secret input stays visible: %v", err)
		return it.readLine()
	}
	return it.hiddenRead(restore)
}

func (it *Reader) hiddenRead(restore func()) string {
	// the user's Enter was not echoed, so end the prompt line ourselves
	defer it.out.WriteLine("")
	defer restore()
	return it.readLine()
}
