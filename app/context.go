package app

import (
	"github.com/joshyorko/clikit/output"
	"github.com/joshyorko/clikit/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Context is what a command sees while it runs.
type Context struct {
	Name   string
	Input  prompt.Input
	Out    *output.Console
	Config *viper.Viper

	shell     *Shell
	command   *cobra.Command
	arguments map[string]string
}

// Argument returns a positional argument by name; absent optional
// arguments give their declared default.
func (it *Context) Argument(name string) string {
	return it.arguments[name]
}

// Option returns the value of a flag in its textual form, "" if undeclared.
func (it *Context) Option(name string) string {
	flag := it.command.Flags().Lookup(name)
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

func (it *Context) BoolOption(name string) bool {
	value, err := it.command.Flags().GetBool(name)
	return err == nil && value
}

// Changed reports whether the user set the flag explicitly.
func (it *Context) Changed(name string) bool {
	return it.command.Flags().Changed(name)
}

func (it *Context) Shell() *Shell {
	return it.shell
}
