// Package prompt asks the user for typed input over a stream.
//
// The same Reader drives a real terminal, a piped stdin, or a scripted test
// stream. Bad keyboard input never crashes a command: end of input reads as
// an empty answer, unknown choices are re-asked, and only a choice that stays
// invalid for the whole retry budget, with no default to fall back on,
// surfaces as ErrExhaustedRetries.
//
//	reader := prompt.New(stream.Stdio())
//	env, err := reader.PromptChoice("Environment", prompt.Labels("dev", "staging", "prod"), "dev")
//	if reader.Confirm("Deploy "+env+"?", false) {
//	    ...
//	}
package prompt

import (
	"errors"
)

const (
	// DefaultRetryCeiling bounds how many answers a choice prompt accepts
	// before giving up.
	DefaultRetryCeiling = 10
)

var (
	// ErrExhaustedRetries is wrapped by every error a prompt returns.
	ErrExhaustedRetries = errors.New("no valid answer within retry limit")
)

// Input is what commands use to talk to the user. *Reader and *Tester both
// implement it.
type Input interface {
	PromptText(message string) string
	Ask(message, defaultValue string) string
	AskValid(message, defaultValue string, validator Validator) (string, error)
	Confirm(message string, defaultYes bool) bool
	PromptSecret(message string) string
	PromptChoice(message string, options []Option, defaultKey string) (string, error)
	PromptMultiChoice(message string, options []Option, defaults []string) ([]string, error)
}

// Option is one selectable entry. Its position in the list is its 1-based
// index.
type Option struct {
	Key   string
	Label string
}

func (it Option) matches(value string) bool {
	return it.Key == value || it.Label == value
}

// Labels builds options whose keys are their labels.
func Labels(labels ...string) []Option {
	result := make([]Option, 0, len(labels))
	for _, label := range labels {
		result = append(result, Option{Key: label, Label: label})
	}
	return result
}

// Pairs builds keyed options from alternating key, label arguments. A
// trailing key without a label is its own label.
func Pairs(keysAndLabels ...string) []Option {
	result := make([]Option, 0, (len(keysAndLabels)+1)/2)
	for at := 0; at < len(keysAndLabels); at += 2 {
		key := keysAndLabels[at]
		label := key
		if at+1 < len(keysAndLabels) {
			label = keysAndLabels[at+1]
		}
		result = append(result, Option{Key: key, Label: label})
	}
	return result
}
