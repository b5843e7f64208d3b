package app_test

import (
	"fmt"
	"testing"

	"github.com/joshyorko/clikit/app"
	"github.com/joshyorko/clikit/pretty"
	"github.com/joshyorko/clikit/prompt"
	"github.com/joshyorko/clikit/stream"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	shell  *app.Shell
	script *stream.Scripted
	tester *prompt.Tester
	home   string
}

func newFixture(t *testing.T, responses ...string) *fixture {
	t.Helper()
	pretty.Setup(true)
	home := t.TempDir()
	t.Setenv("TESTKIT_HOME", home)
	script := stream.NewScripted()
	tester := prompt.NewTester(responses...)
	shell := app.New("testkit", "v1.0.0", app.WithStream(script), app.WithInput(tester))
	return &fixture{shell: shell, script: script, tester: tester, home: home}
}

type greeting struct {
	name     string
	greeting string
	loud     bool
	times    string
	calls    int
}

func (it *greeting) command() app.Command {
	return app.Handle(app.Definition{
		Name:    "greet",
		Aliases: []string{"hello"},
		Short:   "Say hello.",
		Arguments: []app.Argument{
			{Name: "name", Required: true},
			{Name: "greeting", Default: "Hello"},
		},
		Options: []app.Flag{
			{Name: "loud", Shortcut: "l", Boolean: true},
			{Name: "times", Shortcut: "t", Default: "1"},
		},
	}, func(cx *app.Context) error {
		it.calls += 1
		it.name = cx.Argument("name")
		it.greeting = cx.Argument("greeting")
		it.loud = cx.BoolOption("loud")
		it.times = cx.Option("times")
		cx.Out.WriteLine(fmt.Sprintf("%s %s", it.greeting, it.name))
		return nil
	})
}

func (it *fixture) register(t *testing.T, commands ...app.Command) {
	t.Helper()
	require.NoError(t, it.shell.Register(commands...))
}
