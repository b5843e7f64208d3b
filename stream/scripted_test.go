package stream_test

import (
	"io"
	"testing"

	"github.com/joshyorko/clikit/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedReadsInOrderThenEOF(t *testing.T) {
	sut := stream.NewScripted("first", "second")

	line, err := sut.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "first", line)
	assert.Equal(t, 1, sut.Pending())

	line, err = sut.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	for i := 0; i < 3; i++ {
		line, err = sut.ReadLine()
		assert.ErrorIs(t, err, io.EOF)
		assert.Empty(t, line)
	}
	assert.Zero(t, sut.Pending())
}

func TestScriptedFeedAppendsAfterPending(t *testing.T) {
	sut := stream.NewScripted("a")
	sut.Feed("b", "c")

	var got []string
	for {
		line, err := sut.ReadLine()
		if err != nil {
			break
		}
		got = append(got, line)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestScriptedCapturesWrites(t *testing.T) {
	sut := stream.NewScripted()

	sut.WriteString("Name: ")
	sut.WriteString("Hello\n")

	assert.Equal(t, []string{"Name: ", "Hello\n"}, sut.Writes())
	assert.Equal(t, "Name: Hello\n", sut.Output())
}

func TestScriptedEchoSuppression(t *testing.T) {
	sut := stream.NewScripted("secret")
	sut.SimulateEcho(true)

	restore, err := sut.SuppressEcho()
	require.NoError(t, err)
	assert.True(t, sut.EchoSuppressed())

	_, err = sut.ReadLine()
	require.NoError(t, err)
	restore()

	assert.False(t, sut.EchoSuppressed())
	assert.NotContains(t, sut.Output(), "secret")
	assert.Equal(t, 1, sut.Suppressions())
}

func TestScriptedSimulatedEchoShowsVisibleReads(t *testing.T) {
	sut := stream.NewScripted("visible")
	sut.SimulateEcho(true)

	_, err := sut.ReadLine()
	require.NoError(t, err)

	assert.Equal(t, "visible\n", sut.Output())
}

func TestScriptedEchoUnavailable(t *testing.T) {
	tests := []struct {
		name          string
		interactive   bool
		echoSupported bool
	}{
		{name: "piped input", interactive: false, echoSupported: true},
		{name: "unsupported host", interactive: true, echoSupported: false},
		{name: "both", interactive: false, echoSupported: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sut := stream.NewScripted()
			sut.SetInteractive(tt.interactive)
			sut.SetEchoSupported(tt.echoSupported)

			restore, err := sut.SuppressEcho()
			assert.ErrorIs(t, err, stream.ErrEchoUnavailable)
			assert.Nil(t, restore)
			assert.False(t, sut.EchoSuppressed())
		})
	}
}

func TestScriptedResetMatchesFreshInstance(t *testing.T) {
	sut := stream.NewScripted("one", "two")
	sut.ReadLine()
	sut.WriteString("noise")
	sut.SetInteractive(false)
	sut.SetEchoSupported(false)
	sut.SimulateEcho(true)

	sut.Reset()

	fresh := stream.NewScripted()
	assert.Equal(t, fresh, sut)
	assert.Zero(t, sut.Pending())
	assert.Empty(t, sut.Output())
	assert.True(t, sut.IsInteractive())

	_, err := sut.ReadLine()
	assert.ErrorIs(t, err, io.EOF)

	sut.Feed("again")
	line, err := sut.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "again", line)
}
