package prompt_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/joshyorko/clikit/prompt"
	"github.com/joshyorko/clikit/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptTextTrimsAndRecordsOnce(t *testing.T) {
	tests := []struct {
		message  string
		response string
		expected string
	}{
		{"Name: ", "  Ada  ", "Ada"},
		{"Path: ", "\t/tmp/x\t", "/tmp/x"},
		{"Empty: ", "", ""},
		{"Spaces: ", "   ", ""},
		{"Inner: ", " a b ", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			sut := prompt.NewTester(tt.response)

			answer := sut.PromptText(tt.message)

			assert.Equal(t, tt.expected, answer)
			assert.Equal(t, []string{tt.message}, sut.History())
			assert.Equal(t, tt.message, sut.Output())
		})
	}
}

func TestPromptTextAtEndOfInputIsEmpty(t *testing.T) {
	sut := prompt.NewTester()

	assert.Equal(t, "", sut.PromptText("Anything? "))
	assert.Equal(t, "", sut.PromptText("Still? "))
	assert.Equal(t, []string{"Anything? ", "Still? "}, sut.History())
}

type brokenStream struct {
	*stream.Scripted
}

func (it brokenStream) ReadLine() (string, error) {
	return "partial", errors.New("device gone")
}

func TestPromptTextOnReadErrorIsEmpty(t *testing.T) {
	sut := prompt.New(brokenStream{stream.NewScripted()})

	assert.Equal(t, "", sut.PromptText("Name: "))
}

func TestConfirmEmptyAnswerUsesDefault(t *testing.T) {
	for _, fallback := range []bool{true, false} {
		sut := prompt.NewTester("")
		assert.Equal(t, fallback, sut.Confirm("Continue?", fallback))
	}
}

func TestConfirmEndOfInputUsesDefault(t *testing.T) {
	sut := prompt.NewTester()
	assert.True(t, sut.Confirm("Continue?", true))
}

func TestConfirmPositiveAnswers(t *testing.T) {
	for _, answer := range []string{"y", "Y", "yes", "YES", "Yes", "true", "TRUE", "1", " y "} {
		t.Run(answer, func(t *testing.T) {
			sut := prompt.NewTester(answer)
			assert.True(t, sut.Confirm("Continue?", false))
		})
	}
}

func TestConfirmAnythingElseIsNo(t *testing.T) {
	for _, answer := range []string{"n", "no", "false", "0", "nope", "anything", "yess"} {
		t.Run(answer, func(t *testing.T) {
			sut := prompt.NewTester(answer)
			assert.False(t, sut.Confirm("Continue?", true))
		})
	}
}

func TestConfirmHints(t *testing.T) {
	sut := prompt.NewTester("", "")

	sut.Confirm("Deploy?", true)
	sut.Confirm("Delete?", false)

	assert.Equal(t, []string{"Deploy? [Y/n]: ", "Delete? [y/N]: "}, sut.History())
}

func TestAskUsesDefaultForEmptyAnswer(t *testing.T) {
	sut := prompt.NewTester("", "carol", "")

	assert.Equal(t, "bob", sut.Ask("Name", "bob"))
	assert.Equal(t, "carol", sut.Ask("Name", "bob"))
	assert.Equal(t, "", sut.Ask("Nickname", ""))
	assert.Equal(t, []string{"Name [bob]: ", "Name [bob]: ", "Nickname: "}, sut.History())
}

func TestAskValidRetriesUntilValid(t *testing.T) {
	sut := prompt.NewTester("bad name!", "good-name")

	answer, err := sut.AskValid("Project", "", prompt.Identifier())

	require.NoError(t, err)
	assert.Equal(t, "good-name", answer)
	assert.Equal(t, 1, strings.Count(sut.Output(), "Only alphanumeric characters"))
	assert.Len(t, sut.History(), 2)
}

func TestAskValidAcceptsDefault(t *testing.T) {
	sut := prompt.NewTester("")

	answer, err := sut.AskValid("Project", "demo", prompt.Identifier())

	require.NoError(t, err)
	assert.Equal(t, "demo", answer)
}

func TestAskValidWithoutValidatorAcceptsAnything(t *testing.T) {
	sut := prompt.NewTester("!!")

	answer, err := sut.AskValid("Anything", "", nil)

	require.NoError(t, err)
	assert.Equal(t, "!!", answer)
}

func TestAskValidExhausts(t *testing.T) {
	script := stream.NewScripted("", "", "", "")
	sut := prompt.New(script, prompt.WithRetryCeiling(3))

	_, err := sut.AskValid("Name", "", prompt.NotEmpty())

	assert.ErrorIs(t, err, prompt.ErrExhaustedRetries)
	assert.Equal(t, 3, strings.Count(script.Output(), "A value is required."))
	assert.Equal(t, 1, script.Pending())
}

func TestRetryCeilingFloor(t *testing.T) {
	assert.Equal(t, prompt.DefaultRetryCeiling, prompt.New(stream.NewScripted()).RetryCeiling())
	assert.Equal(t, 1, prompt.New(stream.NewScripted(), prompt.WithRetryCeiling(0)).RetryCeiling())
}

func TestPromptSecretHidesInput(t *testing.T) {
	sut := prompt.NewTester("hunter2")
	sut.Stream().SimulateEcho(true)

	secret := sut.PromptSecret("Password: ")

	assert.Equal(t, "hunter2", secret)
	assert.Equal(t, "Password: \n", sut.Output())
	assert.NotContains(t, sut.Output(), "hunter2")
	assert.False(t, sut.Stream().EchoSuppressed())
	assert.Equal(t, 1, sut.Stream().Suppressions())
	assert.Equal(t, []string{"Password: "}, sut.History())
}

func TestPromptSecretTrims(t *testing.T) {
	sut := prompt.NewTester("  token  ")
	assert.Equal(t, "token", sut.PromptSecret("Token: "))
}

func TestPromptSecretFallsBackToVisibleRead(t *testing.T) {
	tests := []struct {
		name        string
		interactive bool
		supported   bool
	}{
		{name: "piped input", interactive: false, supported: true},
		{name: "no echo control", interactive: true, supported: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sut := prompt.NewTester("hunter2")
			sut.Stream().SimulateEcho(true)
			sut.Stream().SetInteractive(tt.interactive)
			sut.Stream().SetEchoSupported(tt.supported)

			secret := sut.PromptSecret("Password: ")

			assert.Equal(t, "hunter2", secret)
			assert.Equal(t, "Password: hunter2\n", sut.Output())
			assert.Zero(t, sut.Stream().Suppressions())
		})
	}
}

type panickyStream struct {
	*stream.Scripted
}

func (it panickyStream) ReadLine() (string, error) {
	panic("keyboard on fire")
}

func TestPromptSecretRestoresEchoOnPanic(t *testing.T) {
	script := stream.NewScripted()
	sut := prompt.New(panickyStream{script})

	require.Panics(t, func() {
		sut.PromptSecret("Password: ")
	})

	assert.Equal(t, 1, script.Suppressions())
	assert.False(t, script.EchoSuppressed())
}
