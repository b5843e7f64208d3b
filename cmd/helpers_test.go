package cmd_test

import (
	"testing"

	"github.com/joshyorko/clikit/app"
	"github.com/joshyorko/clikit/cmd"
	"github.com/joshyorko/clikit/pretty"
	"github.com/joshyorko/clikit/prompt"
	"github.com/joshyorko/clikit/stream"
	"github.com/stretchr/testify/require"
)

type session struct {
	shell  *app.Shell
	script *stream.Scripted
	tester *prompt.Tester
}

func newSession(t *testing.T, responses ...string) *session {
	t.Helper()
	pretty.Setup(true)
	pretty.Interactive = false
	pretty.Iconic = false
	t.Setenv("CLIKIT_HOME", t.TempDir())
	script := stream.NewScripted()
	tester := prompt.NewTester(responses...)
	shell, err := cmd.NewShell(app.WithStream(script), app.WithInput(tester))
	require.NoError(t, err)
	return &session{shell: shell, script: script, tester: tester}
}

func (it *session) run(argv ...string) int {
	return it.shell.Run(argv)
}
