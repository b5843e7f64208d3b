package prompt

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	namePattern = regexp.MustCompile(`^[\w-]+$`)
)

// Validator rejects an answer by returning an error whose text is shown to
// the user before asking again.
type Validator func(answer string) error

func NotEmpty() Validator {
	return func(answer string) error {
		if answer == "" {
			return errors.New("A value is required.")
		}
		return nil
	}
}

func Matches(pattern *regexp.Regexp, message string) Validator {
	return func(answer string) error {
		if !pattern.MatchString(answer) {
			return errors.New(message)
		}
		return nil
	}
}

func OneOf(members ...string) Validator {
	return func(answer string) error {
		for _, member := range members {
			if answer == member {
				return nil
			}
		}
		return fmt.Errorf("Please answer one of: %s.", strings.Join(members, ", "))
	}
}

// Identifier accepts letters, digits, underscores and hyphens.
func Identifier() Validator {
	return Matches(namePattern, "Only alphanumeric characters, underscores, and hyphens are allowed.")
}

// All runs validators in order and reports the first rejection.
func All(validators ...Validator) Validator {
	return func(answer string) error {
		for _, validator := range validators {
			if err := validator(answer); err != nil {
				return err
			}
		}
		return nil
	}
}
