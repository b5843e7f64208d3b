// Package app is the application shell: it turns registered commands into a
// cobra command tree, loads configuration, hands every command a Context
// with an Input for prompting and an output Console, and maps the outcome to
// a process exit code.
package app

import (
	"fmt"
	"strings"
)

// Argument is a named positional argument.
type Argument struct {
	Name        string
	Description string
	Required    bool
	Default     string
}

// Flag is a named option, "--name value" or "--name" when Boolean.
type Flag struct {
	Name        string
	Shortcut    string
	Description string
	Default     string
	Boolean     bool
}

// Definition describes a command to the shell.
type Definition struct {
	Name      string
	Aliases   []string
	Short     string
	Long      string
	Arguments []Argument
	Options   []Flag
	Hidden    bool
}

// Command is the unit applications implement.
type Command interface {
	Definition() Definition
	Execute(cx *Context) error
}

type handler struct {
	definition Definition
	run        func(cx *Context) error
}

// Handle builds a Command from a definition and a function.
func Handle(definition Definition, run func(cx *Context) error) Command {
	return &handler{definition: definition, run: run}
}

func (it *handler) Definition() Definition {
	return it.definition
}

func (it *handler) Execute(cx *Context) error {
	return it.run(cx)
}

func (it Definition) validate() error {
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("command name must not be empty")
	}
	optional := ""
	seen := make(map[string]bool)
	for _, argument := range it.Arguments {
		if seen[argument.Name] {
			return fmt.Errorf("command %q declares argument %q twice", it.Name, argument.Name)
		}
		seen[argument.Name] = true
		if !argument.Required {
			optional = argument.Name
			continue
		}
		if optional != "" {
			return fmt.Errorf("command %q: required argument %q follows optional %q", it.Name, argument.Name, optional)
		}
	}
	return nil
}

func (it Definition) use() string {
	parts := []string{it.Name}
	for _, argument := range it.Arguments {
		if argument.Required {
			parts = append(parts, "<"+argument.Name+">")
		} else {
			parts = append(parts, "["+argument.Name+"]")
		}
	}
	return strings.Join(parts, " ")
}

func (it Definition) required() int {
	count := 0
	for _, argument := range it.Arguments {
		if argument.Required {
			count += 1
		}
	}
	return count
}

// bind maps positional values onto argument names, filling defaults.
func (it Definition) bind(values []string) map[string]string {
	result := make(map[string]string, len(it.Arguments))
	for at, argument := range it.Arguments {
		value := argument.Default
		if at < len(values) {
			value = values[at]
		}
		result[argument.Name] = value
	}
	return result
}
