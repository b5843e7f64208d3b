package cmd_test

import (
	"testing"

	"github.com/joshyorko/clikit/app"
	"github.com/stretchr/testify/assert"
)

func TestProgressCommand(t *testing.T) {
	tests := []struct {
		label    string
		argv     []string
		expected int
		line     string
	}{
		{"default steps", []string{"progress"}, app.ExitOK, "[OK] Working: step 5 of 5"},
		{"given steps", []string{"progress", "3"}, app.ExitOK, "[OK] Working: step 3 of 3"},
		{"failure", []string{"progress", "--fail", "2"}, app.ExitOK, "[FAIL] Working: step 2 of 2"},
		{"bad steps", []string{"progress", "many"}, app.ExitUsage, `steps must be a positive number, got "many"`},
		{"zero steps", []string{"progress", "0"}, app.ExitUsage, `got "0"`},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			sut := newSession(t)

			assert.Equal(t, tt.expected, sut.run(tt.argv...))
			assert.Contains(t, sut.script.Output(), tt.line)
		})
	}
}
