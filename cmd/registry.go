// Package cmd holds the commands of the clikit demo binary. Every command
// registers itself from init; NewShell wires them into an app.Shell.
package cmd

import (
	"github.com/joshyorko/clikit/app"
	"github.com/joshyorko/clikit/common"
)

const (
	productName = `clikit`
)

var (
	registered []app.Command
)

func register(commands ...app.Command) {
	registered = append(registered, commands...)
}

// Commands returns the demo commands in registration order.
func Commands() []app.Command {
	result := make([]app.Command, len(registered))
	copy(result, registered)
	return result
}

// NewShell builds the demo shell with every demo command registered.
func NewShell(options ...app.Option) (*app.Shell, error) {
	shell := app.New(productName, common.Version, options...)
	if err := shell.Register(Commands()...); err != nil {
		return nil, err
	}
	return shell, nil
}
