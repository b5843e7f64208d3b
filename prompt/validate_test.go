package prompt

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotEmpty(t *testing.T) {
	assert.Error(t, NotEmpty()(""))
	assert.NoError(t, NotEmpty()("x"))
}

func TestMatches(t *testing.T) {
	sut := Matches(regexp.MustCompile(`^\d+$`), "Digits only.")

	assert.NoError(t, sut("123"))
	assert.EqualError(t, sut("12a"), "Digits only.")
}

func TestOneOf(t *testing.T) {
	sut := OneOf("y", "n")

	assert.NoError(t, sut("y"))
	assert.EqualError(t, sut("Y"), "Please answer one of: y, n.")
}

func TestIdentifier(t *testing.T) {
	sut := Identifier()

	for _, good := range []string{"app", "my-app", "my_app2"} {
		assert.NoError(t, sut(good), good)
	}
	for _, bad := range []string{"", "my app", "app!", "a/b"} {
		assert.Error(t, sut(bad), bad)
	}
}

func TestAllStopsAtFirstRejection(t *testing.T) {
	sut := All(NotEmpty(), Identifier())

	assert.EqualError(t, sut(""), "A value is required.")
	assert.EqualError(t, sut("a b"), "Only alphanumeric characters, underscores, and hyphens are allowed.")
	assert.NoError(t, sut("ab"))
}
