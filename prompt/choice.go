package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

func (it *Reader) listOptions(options []Option, selected func(Option) bool) {
	for at, option := range options {
		marker := " "
		if selected(option) {
			marker = "*"
		}
		it.out.WriteLine(fmt.Sprintf("  [%s] %d. %s", marker, at+1, option.Label))
	}
}

// PromptChoice lists options and returns the key of the one picked. An
// empty defaultKey means there is no default.
//
// An answer is tried as a 1-based index, then as an exact key, then as a
// label ignoring case. Invalid answers are re-asked up to the retry ceiling;
// after that the default is returned, or ErrExhaustedRetries without one.
func (it *Reader) PromptChoice(message string, options []Option, defaultKey string) (string, error) {
	hasDefault := defaultKey != ""
	fallback := normalize(options, defaultKey)

	it.out.WriteLine(message)
	it.listOptions(options, func(option Option) bool {
		return hasDefault && option.matches(defaultKey)
	})

	question := "Choice: "
	if hasDefault {
		question = fmt.Sprintf("Choice [%s]: ", defaultKey)
	}

	for attempt := 0; attempt < it.ceiling; attempt++ {
		answer := it.PromptText(question)
		if answer == "" && hasDefault {
			return fallback, nil
		}
		if key, ok := resolve(options, answer); ok {
			return key, nil
		}
		it.complain(fmt.Sprintf("Invalid choice %q.", answer))
	}

	if hasDefault {
		it.warn(fmt.Sprintf("No valid choice after %d attempts, using default %q.", it.ceiling, fallback))
		return fallback, nil
	}
	return "", fmt.Errorf("%w: %q got no valid choice in %d attempts", ErrExhaustedRetries, message, it.ceiling)
}

// PromptMultiChoice is PromptChoice for comma separated answers. Every token
// must resolve; the keys come back in answer order without duplicates.
func (it *Reader) PromptMultiChoice(message string, options []Option, defaults []string) ([]string, error) {
	fallback := make([]string, 0, len(defaults))
	for _, value := range defaults {
		fallback = appendUnique(fallback, normalize(options, value))
	}
	hasDefault := len(fallback) > 0

	it.out.WriteLine(message)
	it.listOptions(options, func(option Option) bool {
		for _, value := range defaults {
			if option.matches(value) {
				return true
			}
		}
		return false
	})

	question := "Choices (comma separated): "
	if hasDefault {
		question = fmt.Sprintf("Choices (comma separated) [%s]: ", strings.Join(defaults, ","))
	}

	for attempt := 0; attempt < it.ceiling; attempt++ {
		answer := it.PromptText(question)
		if answer == "" && hasDefault {
			return fallback, nil
		}
		keys, rejected := resolveAll(options, answer)
		if keys != nil {
			return keys, nil
		}
		it.complain(fmt.Sprintf("Invalid choice %q.", rejected))
	}

	if hasDefault {
		it.warn(fmt.Sprintf("No valid choice after %d attempts, using defaults %q.", it.ceiling, strings.Join(fallback, ",")))
		return fallback, nil
	}
	return nil, fmt.Errorf("%w: %q got no valid choices in %d attempts", ErrExhaustedRetries, message, it.ceiling)
}

// resolve applies index, exact key, then case-insensitive label matching.
// The first option wins when keys repeat.
func resolve(options []Option, answer string) (string, bool) {
	if answer == "" {
		return "", false
	}
	if index, err := strconv.Atoi(answer); err == nil && index >= 1 && index <= len(options) {
		return options[index-1].Key, true
	}
	for _, option := range options {
		if option.Key == answer {
			return option.Key, true
		}
	}
	for _, option := range options {
		if strings.EqualFold(option.Label, answer) {
			return option.Key, true
		}
	}
	return "", false
}

// resolveAll returns the resolved keys, or nil and the offending token.
func resolveAll(options []Option, answer string) ([]string, string) {
	var keys []string
	for _, token := range strings.Split(answer, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		key, ok := resolve(options, token)
		if !ok {
			return nil, token
		}
		keys = appendUnique(keys, key)
	}
	if len(keys) == 0 {
		return nil, answer
	}
	return keys, ""
}

// normalize maps a default naming a key or label to that option's key.
// Unknown defaults are kept as given.
func normalize(options []Option, value string) string {
	for _, option := range options {
		if option.Key == value {
			return option.Key
		}
	}
	for _, option := range options {
		if option.Label == value {
			return option.Key
		}
	}
	return value
}

func appendUnique(keys []string, key string) []string {
	for _, existing := range keys {
		if existing == key {
			return keys
		}
	}
	return append(keys, key)
}
